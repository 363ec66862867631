package dto

// BitacoraEntrada is the audit payload enqueued by handlers and persisted by
// the worker pool.
type BitacoraEntrada struct {
	UsuarioID *string `json:"usuario_id,omitempty"`
	Metodo    string  `json:"metodo"`
	Ruta      string  `json:"ruta"`
	Mensaje   string  `json:"mensaje"`
}

type BitacoraResponse struct {
	ID        string  `json:"id"`
	UsuarioID *string `json:"usuario_id,omitempty"`
	Metodo    string  `json:"metodo"`
	Ruta      string  `json:"ruta"`
	Mensaje   string  `json:"mensaje"`
	CreatedAt string  `json:"created_at"`
}
