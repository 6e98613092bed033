package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/dukerupert/reclamos/internal/model"
)

type ClaimStore struct {
	db *sql.DB
}

func NewClaimStore(db *sql.DB) *ClaimStore {
	return &ClaimStore{db: db}
}

func scanClaim(scanner interface{ Scan(...any) error }) (*model.Claim, error) {
	var c model.Claim
	var isMinor, hasProof, claimsAmount, consent int
	var phone, attachedFiles, claimDate, signature, formID sql.NullString
	var claimedAmount sql.NullFloat64

	err := scanner.Scan(
		&c.ID, &c.PersonType, &c.DocumentType, &c.DocumentNumber,
		&c.FirstName, &c.LastName, &isMinor,
		&c.Email, &phone, &c.Country,
		&c.ItemType, &c.ItemDescription, &hasProof, &attachedFiles,
		&claimsAmount, &claimedAmount,
		&c.ClaimType, &c.ClaimDescription, &c.Request,
		&claimDate, &c.PreferredContactMethod, &consent, &signature, &formID,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	c.IsMinor = isMinor != 0
	c.HasPaymentProof = hasProof != 0
	c.ClaimsAmount = claimsAmount != 0
	c.DataProcessingConsent = consent != 0
	if phone.Valid {
		c.Phone = &phone.String
	}
	if claimedAmount.Valid {
		c.ClaimedAmount = &claimedAmount.Float64
	}
	if claimDate.Valid {
		c.ClaimDate = &claimDate.String
	}
	if signature.Valid {
		c.Signature = &signature.String
	}
	if formID.Valid {
		c.FormID = &formID.String
	}
	if attachedFiles.Valid && attachedFiles.String != "" {
		if err := json.Unmarshal([]byte(attachedFiles.String), &c.AttachedFiles); err != nil {
			return nil, fmt.Errorf("decode attached_files: %w", err)
		}
	}
	return &c, nil
}

const claimCols = `id, person_type, document_type, document_number, first_name, last_name, is_minor,
	email, phone, country, item_type, item_description, has_payment_proof, attached_files,
	claims_amount, claimed_amount, claim_type, claim_description, request,
	claim_date, preferred_contact_method, data_processing_consent, signature, form_id,
	created_at, updated_at`

func claimArgs(c *model.Claim) ([]any, error) {
	var attachedFiles sql.NullString
	if c.AttachedFiles != nil {
		data, err := json.Marshal(c.AttachedFiles)
		if err != nil {
			return nil, fmt.Errorf("encode attached_files: %w", err)
		}
		attachedFiles = sql.NullString{String: string(data), Valid: true}
	}
	return []any{
		c.PersonType, c.DocumentType, c.DocumentNumber, c.FirstName, c.LastName, boolInt(c.IsMinor),
		c.Email, nullStr(c.Phone), c.Country,
		c.ItemType, c.ItemDescription, boolInt(c.HasPaymentProof), attachedFiles,
		boolInt(c.ClaimsAmount), nullFloat(c.ClaimedAmount),
		c.ClaimType, c.ClaimDescription, c.Request,
		nullStr(c.ClaimDate), c.PreferredContactMethod, boolInt(c.DataProcessingConsent),
		nullStr(c.Signature), nullStr(c.FormID),
	}, nil
}

func (s *ClaimStore) Create(c *model.Claim) (*model.Claim, error) {
	args, err := claimArgs(c)
	if err != nil {
		return nil, err
	}
	result, err := s.db.Exec(
		`INSERT INTO claims (person_type, document_type, document_number, first_name, last_name, is_minor,
		 email, phone, country, item_type, item_description, has_payment_proof, attached_files,
		 claims_amount, claimed_amount, claim_type, claim_description, request,
		 claim_date, preferred_contact_method, data_processing_consent, signature, form_id)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("insert claim: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}
	return s.GetByID(id)
}

// GetByID returns the claim, or nil if it does not exist or is soft-deleted.
func (s *ClaimStore) GetByID(id int64) (*model.Claim, error) {
	row := s.db.QueryRow(
		`SELECT `+claimCols+` FROM claims WHERE id = ? AND deleted_at IS NULL`, id,
	)
	c, err := scanClaim(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get claim: %w", err)
	}
	return c, nil
}

// List returns all live claims, newest first.
func (s *ClaimStore) List() ([]model.Claim, error) {
	rows, err := s.db.Query(
		`SELECT ` + claimCols + ` FROM claims WHERE deleted_at IS NULL ORDER BY created_at DESC, id DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list claims: %w", err)
	}
	defer rows.Close()

	claims := []model.Claim{}
	for rows.Next() {
		c, err := scanClaim(rows)
		if err != nil {
			return nil, fmt.Errorf("scan claim: %w", err)
		}
		claims = append(claims, *c)
	}
	return claims, rows.Err()
}

// Update overwrites all mutable fields. Partial-update merging happens in the
// handler; the store always writes the full record.
func (s *ClaimStore) Update(id int64, c *model.Claim) (*model.Claim, error) {
	args, err := claimArgs(c)
	if err != nil {
		return nil, err
	}
	args = append(args, id)
	_, err = s.db.Exec(
		`UPDATE claims SET person_type = ?, document_type = ?, document_number = ?, first_name = ?,
		 last_name = ?, is_minor = ?, email = ?, phone = ?, country = ?, item_type = ?,
		 item_description = ?, has_payment_proof = ?, attached_files = ?, claims_amount = ?,
		 claimed_amount = ?, claim_type = ?, claim_description = ?, request = ?, claim_date = ?,
		 preferred_contact_method = ?, data_processing_consent = ?, signature = ?, form_id = ?,
		 updated_at = datetime('now')
		 WHERE id = ? AND deleted_at IS NULL`,
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("update claim: %w", err)
	}
	return s.GetByID(id)
}

// SoftDelete marks the claim deleted; the row is retained.
func (s *ClaimStore) SoftDelete(id int64) error {
	_, err := s.db.Exec(
		`UPDATE claims SET deleted_at = datetime('now') WHERE id = ? AND deleted_at IS NULL`, id,
	)
	if err != nil {
		return fmt.Errorf("delete claim: %w", err)
	}
	return nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func nullStr(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func nullFloat(f *float64) sql.NullFloat64 {
	if f == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *f, Valid: true}
}
