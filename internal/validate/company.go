package validate

import "github.com/dukerupert/reclamos/internal/model"

// CompanyInput is the create/update payload for a company. Every field is
// required on both paths; updates always carry the full record.
type CompanyInput struct {
	RUC          *string `json:"ruc"`
	RazonSocial  *string `json:"razon_social"`
	Departamento *string `json:"departamento"`
	Provincia    *string `json:"provincia"`
	Distrito     *string `json:"distrito"`
	Direccion    *string `json:"direccion"`
}

// Company validates the payload. RUC must be exactly 11 digits; uniqueness
// is enforced by the store, not here.
func Company(in *CompanyInput) FieldErrors {
	errs := FieldErrors{}

	if in.RUC == nil || *in.RUC == "" {
		errs.add("ruc", requiredMsg())
	} else if len(*in.RUC) != 11 || !isDigits(*in.RUC) {
		errs.add("ruc", "must be exactly 11 digits")
	}

	requireString(errs, "razon_social", in.RazonSocial)
	requireString(errs, "departamento", in.Departamento)
	requireString(errs, "provincia", in.Provincia)
	requireString(errs, "distrito", in.Distrito)
	requireString(errs, "direccion", in.Direccion)

	return errs
}

func requireString(errs FieldErrors, field string, v *string) {
	if v == nil || *v == "" {
		errs.add(field, requiredMsg())
	}
}

// Model builds the company record from a validated payload.
func (in *CompanyInput) Model() *model.Company {
	return &model.Company{
		RUC:          *in.RUC,
		RazonSocial:  *in.RazonSocial,
		Departamento: *in.Departamento,
		Provincia:    *in.Provincia,
		Distrito:     *in.Distrito,
		Direccion:    *in.Direccion,
	}
}
