package validate

import "github.com/dukerupert/reclamos/internal/model"

// ClaimInput is the create/update payload for a claim. All fields are
// pointers so a partial update can tell "absent" from "zero".
type ClaimInput struct {
	PersonType             *string  `json:"person_type"`
	DocumentType           *string  `json:"document_type"`
	DocumentNumber         *string  `json:"document_number"`
	FirstName              *string  `json:"first_name"`
	LastName               *string  `json:"last_name"`
	IsMinor                *bool    `json:"is_minor"`
	Email                  *string  `json:"email"`
	Phone                  *string  `json:"phone"`
	Country                *string  `json:"country"`
	ItemType               *string  `json:"item_type"`
	ItemDescription        *string  `json:"item_description"`
	HasPaymentProof        *bool    `json:"has_payment_proof"`
	AttachedFiles          []string `json:"attached_files"`
	ClaimsAmount           *bool    `json:"claims_amount"`
	ClaimedAmount          *float64 `json:"claimed_amount"`
	ClaimType              *string  `json:"claim_type"`
	ClaimDescription       *string  `json:"claim_description"`
	Request                *string  `json:"request"`
	ClaimDate              *string  `json:"claim_date"`
	PreferredContactMethod *string  `json:"preferred_contact_method"`
	DataProcessingConsent  *bool    `json:"data_processing_consent"`
	Signature              *string  `json:"signature"`
	FormID                 *string  `json:"form_id"`
}

var personTypes = map[string]bool{"individual": true, "legal_entity": true}
var itemTypes = map[string]bool{"product": true, "service": true}
var claimTypes = map[string]bool{"complaint": true, "grievance": true}

// Claim validates the payload. With partial set, absent fields pass; present
// fields are always held to the same rules as on create.
func Claim(in *ClaimInput, partial bool) FieldErrors {
	errs := FieldErrors{}

	checkEnum(errs, "person_type", in.PersonType, personTypes, partial)
	checkRequiredMax(errs, "document_type", in.DocumentType, 20, partial)
	checkRequiredMax(errs, "document_number", in.DocumentNumber, 20, partial)
	checkRequiredMax(errs, "first_name", in.FirstName, 255, partial)
	checkRequiredMax(errs, "last_name", in.LastName, 255, partial)

	switch {
	case in.Email == nil || *in.Email == "":
		if !partial {
			errs.add("email", requiredMsg())
		}
	case len(*in.Email) > 255:
		errs.add("email", maxLenMsg(255))
	case !validEmail(*in.Email):
		errs.add("email", "must be a valid email address")
	}

	if in.Phone != nil && len(*in.Phone) > 50 {
		errs.add("phone", maxLenMsg(50))
	}

	if in.Country == nil || *in.Country == "" {
		if !partial {
			errs.add("country", requiredMsg())
		}
	} else if len(*in.Country) != 3 {
		errs.add("country", "must be exactly 3 characters")
	}

	checkEnum(errs, "item_type", in.ItemType, itemTypes, partial)
	checkRequired(errs, "item_description", in.ItemDescription, partial)

	for _, f := range in.AttachedFiles {
		if !validURL(f) {
			errs.add("attached_files", "must contain valid URLs")
			break
		}
	}

	if in.ClaimedAmount != nil && *in.ClaimedAmount < 0 {
		errs.add("claimed_amount", "must not be negative")
	}

	checkEnum(errs, "claim_type", in.ClaimType, claimTypes, partial)
	checkRequired(errs, "claim_description", in.ClaimDescription, partial)
	checkRequired(errs, "request", in.Request, partial)

	if in.ClaimDate != nil && !validDate(*in.ClaimDate) {
		errs.add("claim_date", "must be a valid date (YYYY-MM-DD)")
	}

	checkRequiredMax(errs, "preferred_contact_method", in.PreferredContactMethod, 50, partial)

	return errs
}

func checkRequired(errs FieldErrors, field string, v *string, partial bool) {
	if v == nil || *v == "" {
		if !partial {
			errs.add(field, requiredMsg())
		}
	}
}

func checkRequiredMax(errs FieldErrors, field string, v *string, max int, partial bool) {
	if v == nil || *v == "" {
		if !partial {
			errs.add(field, requiredMsg())
		}
		return
	}
	if len(*v) > max {
		errs.add(field, maxLenMsg(max))
	}
}

func checkEnum(errs FieldErrors, field string, v *string, allowed map[string]bool, partial bool) {
	if v == nil || *v == "" {
		if !partial {
			errs.add(field, requiredMsg())
		}
		return
	}
	if !allowed[*v] {
		options := make([]string, 0, len(allowed))
		for _, o := range enumOrder(field) {
			if allowed[o] {
				options = append(options, o)
			}
		}
		errs.add(field, oneOfMsg(options...))
	}
}

// enumOrder keeps error messages stable; map iteration order is not.
func enumOrder(field string) []string {
	switch field {
	case "person_type":
		return []string{"individual", "legal_entity"}
	case "item_type":
		return []string{"product", "service"}
	case "claim_type":
		return []string{"complaint", "grievance"}
	}
	return nil
}

// Apply copies every present field onto the claim. On create the target is a
// zero record; on update it is the stored record, so absent fields keep
// their current values.
func (in *ClaimInput) Apply(c *model.Claim) {
	setStr := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	setBool := func(dst *bool, src *bool) {
		if src != nil {
			*dst = *src
		}
	}

	setStr(&c.PersonType, in.PersonType)
	setStr(&c.DocumentType, in.DocumentType)
	setStr(&c.DocumentNumber, in.DocumentNumber)
	setStr(&c.FirstName, in.FirstName)
	setStr(&c.LastName, in.LastName)
	setBool(&c.IsMinor, in.IsMinor)
	setStr(&c.Email, in.Email)
	if in.Phone != nil {
		c.Phone = in.Phone
	}
	setStr(&c.Country, in.Country)
	setStr(&c.ItemType, in.ItemType)
	setStr(&c.ItemDescription, in.ItemDescription)
	setBool(&c.HasPaymentProof, in.HasPaymentProof)
	if in.AttachedFiles != nil {
		c.AttachedFiles = in.AttachedFiles
	}
	setBool(&c.ClaimsAmount, in.ClaimsAmount)
	if in.ClaimedAmount != nil {
		c.ClaimedAmount = in.ClaimedAmount
	}
	setStr(&c.ClaimType, in.ClaimType)
	setStr(&c.ClaimDescription, in.ClaimDescription)
	setStr(&c.Request, in.Request)
	if in.ClaimDate != nil {
		c.ClaimDate = in.ClaimDate
	}
	setStr(&c.PreferredContactMethod, in.PreferredContactMethod)
	setBool(&c.DataProcessingConsent, in.DataProcessingConsent)
	if in.Signature != nil {
		c.Signature = in.Signature
	}
	if in.FormID != nil {
		c.FormID = in.FormID
	}
}
