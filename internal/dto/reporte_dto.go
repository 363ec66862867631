package dto

// ReporteFilter is bound from the query string of GET /api/reporte/:tema.
type ReporteFilter struct {
	Formato string `form:"formato,default=pdf" validate:"oneof=pdf excel txt"`
	Desde   string `form:"desde" validate:"omitempty,datetime=2006-01-02"`
	Hasta   string `form:"hasta" validate:"omitempty,datetime=2006-01-02"`
}

// Tabla is the collaborator contract the format writers consume: a titled,
// columned tabular result.
type Tabla struct {
	Titulo   string
	Columnas []string
	Filas    [][]string
}

// ReporteArchivo is a rendered report ready to stream to the client.
type ReporteArchivo struct {
	Nombre      string
	ContentType string
	Contenido   []byte
}
