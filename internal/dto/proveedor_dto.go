package dto

type CrearProveedorRequest struct {
	Codigo      string  `json:"codigo"       validate:"required,min=2,max=20"`
	RazonSocial string  `json:"razon_social" validate:"required"`
	Telefono    *string `json:"telefono"`
	Email       *string `json:"email"        validate:"omitempty,email"`
	Direccion   *string `json:"direccion"`
}

type ActualizarProveedorRequest struct {
	RazonSocial string  `json:"razon_social" validate:"required"`
	Telefono    *string `json:"telefono"`
	Email       *string `json:"email"        validate:"omitempty,email"`
	Direccion   *string `json:"direccion"`
}

type ProveedorResponse struct {
	Codigo      string  `json:"codigo"`
	RazonSocial string  `json:"razon_social"`
	Telefono    *string `json:"telefono,omitempty"`
	Email       *string `json:"email,omitempty"`
	Direccion   *string `json:"direccion,omitempty"`
	Activo      bool    `json:"activo"`
}
