package model

import "time"

// Company is a registered company, identified by its 11-digit RUC.
type Company struct {
	ID           int64     `json:"id"`
	RUC          string    `json:"ruc"`
	RazonSocial  string    `json:"razon_social"`
	Departamento string    `json:"departamento"`
	Provincia    string    `json:"provincia"`
	Distrito     string    `json:"distrito"`
	Direccion    string    `json:"direccion"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
