package dto

type CrearRecetaRequest struct {
	ProductoID  string                `json:"producto_id" validate:"required,uuid"`
	Nombre      string                `json:"nombre"      validate:"required"`
	Rendimiento int                   `json:"rendimiento" validate:"required,gt=0"`
	Insumos     []RecetaInsumoRequest `json:"insumos"     validate:"required,min=1,dive"`
}

type RecetaInsumoRequest struct {
	InsumoID string `json:"insumo_id" validate:"required,uuid"`
	Cantidad int    `json:"cantidad"  validate:"required,gt=0"`
}

type RecetaInsumoResponse struct {
	InsumoID string `json:"insumo_id"`
	Insumo   string `json:"insumo,omitempty"`
	Cantidad int    `json:"cantidad"`
}

type RecetaResponse struct {
	ID          string                 `json:"id"`
	ProductoID  string                 `json:"producto_id"`
	Producto    string                 `json:"producto,omitempty"`
	Nombre      string                 `json:"nombre"`
	Rendimiento int                    `json:"rendimiento"`
	Insumos     []RecetaInsumoResponse `json:"insumos"`
}

// RegistrarProduccionRequest records Lotes batches of a receta.
type RegistrarProduccionRequest struct {
	RecetaID      string   `json:"receta_id"     validate:"required,uuid"`
	Fecha         string   `json:"fecha"         validate:"required,datetime=2006-01-02"`
	Lotes         int      `json:"lotes"         validate:"required,gt=0"`
	Participantes []string `json:"participantes" validate:"omitempty,dive,uuid"`
}

type ProduccionResponse struct {
	ID                string   `json:"id"`
	RecetaID          string   `json:"receta_id"`
	Receta            string   `json:"receta,omitempty"`
	Fecha             string   `json:"fecha"`
	Lotes             int      `json:"lotes"`
	CantidadProducida int      `json:"cantidad_producida"`
	ResponsableID     string   `json:"responsable_id"`
	Participantes     []string `json:"participantes,omitempty"`
}
