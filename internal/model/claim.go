package model

import "time"

// Claim is a complaints-book entry. ClaimDate is a plain YYYY-MM-DD string;
// the field is date-only and parsing it into a time.Time invites timezone
// drift on round trips.
type Claim struct {
	ID int64 `json:"id"`

	PersonType     string `json:"person_type"`
	DocumentType   string `json:"document_type"`
	DocumentNumber string `json:"document_number"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	IsMinor        bool   `json:"is_minor"`

	Email   string  `json:"email"`
	Phone   *string `json:"phone"`
	Country string  `json:"country"`

	ItemType        string   `json:"item_type"`
	ItemDescription string   `json:"item_description"`
	HasPaymentProof bool     `json:"has_payment_proof"`
	AttachedFiles   []string `json:"attached_files"`

	ClaimsAmount  bool     `json:"claims_amount"`
	ClaimedAmount *float64 `json:"claimed_amount"`

	ClaimType        string `json:"claim_type"`
	ClaimDescription string `json:"claim_description"`
	Request          string `json:"request"`

	ClaimDate              *string `json:"claim_date"`
	PreferredContactMethod string  `json:"preferred_contact_method"`
	DataProcessingConsent  bool    `json:"data_processing_consent"`
	Signature              *string `json:"signature"`
	FormID                 *string `json:"form_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
