package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dukerupert/reclamos/internal/database"
	"github.com/dukerupert/reclamos/internal/model"
	"github.com/dukerupert/reclamos/internal/realtime"
	"github.com/dukerupert/reclamos/internal/store"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func setupClaimHandler(t *testing.T) (*ClaimHandler, *store.ClaimStore) {
	t.Helper()
	db, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	cs := store.NewClaimStore(db)
	hub := realtime.NewHub(discardLogger())
	return NewClaimHandler(cs, hub, discardLogger()), cs
}

const validClaimJSON = `{
	"person_type": "individual",
	"document_type": "DNI",
	"document_number": "12345678",
	"first_name": "Juan",
	"last_name": "Sánchez",
	"email": "juan@example.com",
	"country": "PER",
	"item_type": "product",
	"item_description": "Producto de prueba",
	"claim_type": "complaint",
	"claim_description": "Descripción del reclamo",
	"request": "Solicito respuesta",
	"preferred_contact_method": "email"
}`

func createTestClaim(t *testing.T, h *ClaimHandler) model.Claim {
	t.Helper()
	req := httptest.NewRequest("POST", "/api/claims", strings.NewReader(validClaimJSON))
	rec := httptest.NewRecorder()
	h.Create(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create claim: status = %d, body = %s", rec.Code, rec.Body)
	}
	var resp struct {
		Data model.Claim `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode create response: %v", err)
	}
	return resp.Data
}

func TestClaimCreateReturnsRecord(t *testing.T) {
	h, _ := setupClaimHandler(t)

	claim := createTestClaim(t, h)
	if claim.ID == 0 {
		t.Error("expected non-zero claim id")
	}
	if claim.FirstName != "Juan" {
		t.Errorf("first_name = %q, want Juan", claim.FirstName)
	}
}

func TestClaimCreateValidationFailure(t *testing.T) {
	h, _ := setupClaimHandler(t)

	req := httptest.NewRequest("POST", "/api/claims", strings.NewReader(`{"person_type":"robot"}`))
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
	var resp struct {
		Message string            `json:"message"`
		Errors  map[string]string `json:"errors"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if _, ok := resp.Errors["person_type"]; !ok {
		t.Error("expected per-field error for person_type")
	}
	if _, ok := resp.Errors["email"]; !ok {
		t.Error("expected per-field error for missing email")
	}
}

// A partial payload must leave every unmentioned field unchanged.
func TestClaimPartialUpdate(t *testing.T) {
	h, _ := setupClaimHandler(t)
	created := createTestClaim(t, h)

	req := httptest.NewRequest("PUT", "/api/claims/1", strings.NewReader(`{"phone":"987654321"}`))
	req.SetPathValue("id", "1")
	rec := httptest.NewRecorder()
	h.Update(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body)
	}
	var resp struct {
		Data model.Claim `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Data.Phone == nil || *resp.Data.Phone != "987654321" {
		t.Errorf("phone = %v, want 987654321", resp.Data.Phone)
	}
	if resp.Data.FirstName != created.FirstName ||
		resp.Data.Email != created.Email ||
		resp.Data.ClaimType != created.ClaimType {
		t.Errorf("partial update changed unrelated fields: %+v", resp.Data)
	}
}

func TestClaimUpdateNotFound(t *testing.T) {
	h, _ := setupClaimHandler(t)

	req := httptest.NewRequest("PUT", "/api/claims/99", strings.NewReader(`{"phone":"1"}`))
	req.SetPathValue("id", "99")
	rec := httptest.NewRecorder()
	h.Update(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestClaimDeleteThenGet(t *testing.T) {
	h, cs := setupClaimHandler(t)
	created := createTestClaim(t, h)

	req := httptest.NewRequest("DELETE", "/api/claims/1", nil)
	req.SetPathValue("id", "1")
	rec := httptest.NewRecorder()
	h.Delete(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete: status = %d", rec.Code)
	}

	req = httptest.NewRequest("GET", "/api/claims/1", nil)
	req.SetPathValue("id", "1")
	rec = httptest.NewRecorder()
	h.Get(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("get after delete: status = %d, want 404", rec.Code)
	}

	// Soft delete keeps the row.
	got, err := cs.GetByID(created.ID)
	if err != nil || got != nil {
		t.Errorf("store get = (%v, %v), want (nil, nil)", got, err)
	}
}

func TestClaimList(t *testing.T) {
	h, _ := setupClaimHandler(t)
	createTestClaim(t, h)
	createTestClaim(t, h)

	req := httptest.NewRequest("GET", "/api/claims", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp struct {
		Success bool          `json:"success"`
		Data    []model.Claim `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success {
		t.Error("expected success = true")
	}
	if len(resp.Data) != 2 {
		t.Errorf("claims = %d, want 2", len(resp.Data))
	}
}
