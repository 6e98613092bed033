package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/dukerupert/reclamos/internal/realtime"
	"github.com/dukerupert/reclamos/internal/store"
	"github.com/dukerupert/reclamos/internal/validate"
)

const (
	defaultPerPage = 15
	maxPerPage     = 100
)

type CompanyHandler struct {
	companies *store.CompanyStore
	hub       *realtime.Hub
	logger    *slog.Logger
}

func NewCompanyHandler(cs *store.CompanyStore, hub *realtime.Hub, logger *slog.Logger) *CompanyHandler {
	return &CompanyHandler{companies: cs, hub: hub, logger: logger}
}

func (h *CompanyHandler) List(w http.ResponseWriter, r *http.Request) {
	perPage := queryInt(r, "per_page", defaultPerPage)
	if perPage < 1 {
		perPage = 1
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}
	page := queryInt(r, "page", 1)
	if page < 1 {
		page = 1
	}

	result, err := h.companies.List(page, perPage)
	if err != nil {
		h.logger.Error("list companies", "error", err)
		writeMessage(w, http.StatusInternalServerError, "failed to list companies")
		return
	}
	writeData(w, http.StatusOK, result)
}

func (h *CompanyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in validate.CompanyInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	if errs := validate.Company(&in); len(errs) > 0 {
		writeValidationErrors(w, errs)
		return
	}

	created, err := h.companies.Create(in.Model())
	if errors.Is(err, store.ErrConflict) {
		writeMessage(w, http.StatusConflict, "a company with this ruc already exists")
		return
	}
	if err != nil {
		h.logger.Error("create company", "error", err)
		writeMessage(w, http.StatusInternalServerError, "failed to create company")
		return
	}

	h.hub.Broadcast(realtime.Event{Entity: "company", Action: "created", ID: created.ID})
	writeData(w, http.StatusCreated, created)
}

func (h *CompanyHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid id")
		return
	}

	company, err := h.companies.GetByID(id)
	if err != nil {
		h.logger.Error("get company", "error", err)
		writeMessage(w, http.StatusInternalServerError, "failed to get company")
		return
	}
	if company == nil {
		writeMessage(w, http.StatusNotFound, "company not found")
		return
	}
	writeData(w, http.StatusOK, company)
}

// Update requires the full field set; company updates always carry the
// complete record.
func (h *CompanyHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid id")
		return
	}

	existing, err := h.companies.GetByID(id)
	if err != nil {
		h.logger.Error("get company", "error", err)
		writeMessage(w, http.StatusInternalServerError, "failed to get company")
		return
	}
	if existing == nil {
		writeMessage(w, http.StatusNotFound, "company not found")
		return
	}

	var in validate.CompanyInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	if errs := validate.Company(&in); len(errs) > 0 {
		writeValidationErrors(w, errs)
		return
	}

	updated, err := h.companies.Update(id, in.Model())
	if errors.Is(err, store.ErrConflict) {
		writeMessage(w, http.StatusConflict, "a company with this ruc already exists")
		return
	}
	if err != nil {
		h.logger.Error("update company", "error", err)
		writeMessage(w, http.StatusInternalServerError, "failed to update company")
		return
	}

	h.hub.Broadcast(realtime.Event{Entity: "company", Action: "updated", ID: id})
	writeData(w, http.StatusOK, updated)
}

func (h *CompanyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid id")
		return
	}

	existing, err := h.companies.GetByID(id)
	if err != nil {
		h.logger.Error("get company", "error", err)
		writeMessage(w, http.StatusInternalServerError, "failed to get company")
		return
	}
	if existing == nil {
		writeMessage(w, http.StatusNotFound, "company not found")
		return
	}

	if err := h.companies.SoftDelete(id); err != nil {
		h.logger.Error("delete company", "error", err)
		writeMessage(w, http.StatusInternalServerError, "failed to delete company")
		return
	}

	h.hub.Broadcast(realtime.Event{Entity: "company", Action: "deleted", ID: id})
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "company deleted",
	})
}

func queryInt(r *http.Request, name string, fallback int) int {
	v := r.URL.Query().Get(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
