package dto

type CrearClienteRequest struct {
	CI       string  `json:"ci"       validate:"required,min=5,max=20"`
	Nombre   string  `json:"nombre"   validate:"required"`
	Sexo     string  `json:"sexo"     validate:"required,oneof=M F"`
	Telefono *string `json:"telefono"`
}

type ActualizarClienteRequest struct {
	Nombre   string  `json:"nombre"   validate:"required"`
	Sexo     string  `json:"sexo"     validate:"required,oneof=M F"`
	Telefono *string `json:"telefono"`
}

type ClienteResponse struct {
	CI       string  `json:"ci"`
	Nombre   string  `json:"nombre"`
	Sexo     string  `json:"sexo"`
	Telefono *string `json:"telefono,omitempty"`
}
