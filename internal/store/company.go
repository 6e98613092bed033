package store

import (
	"database/sql"
	"fmt"

	"github.com/dukerupert/reclamos/internal/model"
)

type CompanyStore struct {
	db *sql.DB
}

func NewCompanyStore(db *sql.DB) *CompanyStore {
	return &CompanyStore{db: db}
}

func scanCompany(scanner interface{ Scan(...any) error }) (*model.Company, error) {
	var c model.Company
	err := scanner.Scan(
		&c.ID, &c.RUC, &c.RazonSocial, &c.Departamento,
		&c.Provincia, &c.Distrito, &c.Direccion, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

const companyCols = `id, ruc, razon_social, departamento, provincia, distrito, direccion, created_at, updated_at`

// Create inserts a company. A duplicate RUC returns ErrConflict.
func (s *CompanyStore) Create(c *model.Company) (*model.Company, error) {
	result, err := s.db.Exec(
		`INSERT INTO companies (ruc, razon_social, departamento, provincia, distrito, direccion)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		c.RUC, c.RazonSocial, c.Departamento, c.Provincia, c.Distrito, c.Direccion,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrConflict
		}
		return nil, fmt.Errorf("insert company: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}
	return s.GetByID(id)
}

// GetByID returns the company, or nil if it does not exist or is soft-deleted.
func (s *CompanyStore) GetByID(id int64) (*model.Company, error) {
	row := s.db.QueryRow(
		`SELECT `+companyCols+` FROM companies WHERE id = ? AND deleted_at IS NULL`, id,
	)
	c, err := scanCompany(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get company: %w", err)
	}
	return c, nil
}

// List returns one page of companies ordered by id.
func (s *CompanyStore) List(page, perPage int) (*model.Page[model.Company], error) {
	var total int64
	if err := s.db.QueryRow(
		`SELECT COUNT(*) FROM companies WHERE deleted_at IS NULL`,
	).Scan(&total); err != nil {
		return nil, fmt.Errorf("count companies: %w", err)
	}

	rows, err := s.db.Query(
		`SELECT `+companyCols+` FROM companies WHERE deleted_at IS NULL
		 ORDER BY id LIMIT ? OFFSET ?`,
		perPage, (page-1)*perPage,
	)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()

	companies := []model.Company{}
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		companies = append(companies, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	totalPages := int((total + int64(perPage) - 1) / int64(perPage))
	return &model.Page[model.Company]{
		Items:      companies,
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: totalPages,
	}, nil
}

// Update overwrites all mutable fields. A RUC belonging to another company
// returns ErrConflict.
func (s *CompanyStore) Update(id int64, c *model.Company) (*model.Company, error) {
	_, err := s.db.Exec(
		`UPDATE companies SET ruc = ?, razon_social = ?, departamento = ?, provincia = ?,
		 distrito = ?, direccion = ?, updated_at = datetime('now')
		 WHERE id = ? AND deleted_at IS NULL`,
		c.RUC, c.RazonSocial, c.Departamento, c.Provincia, c.Distrito, c.Direccion, id,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrConflict
		}
		return nil, fmt.Errorf("update company: %w", err)
	}
	return s.GetByID(id)
}

// SoftDelete marks the company deleted; the row is retained.
func (s *CompanyStore) SoftDelete(id int64) error {
	_, err := s.db.Exec(
		`UPDATE companies SET deleted_at = datetime('now') WHERE id = ? AND deleted_at IS NULL`, id,
	)
	if err != nil {
		return fmt.Errorf("delete company: %w", err)
	}
	return nil
}
