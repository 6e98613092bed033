package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/dukerupert/reclamos/internal/model"
	"github.com/dukerupert/reclamos/internal/realtime"
	"github.com/dukerupert/reclamos/internal/store"
	"github.com/dukerupert/reclamos/internal/validate"
)

type ClaimHandler struct {
	claims *store.ClaimStore
	hub    *realtime.Hub
	logger *slog.Logger
}

func NewClaimHandler(cs *store.ClaimStore, hub *realtime.Hub, logger *slog.Logger) *ClaimHandler {
	return &ClaimHandler{claims: cs, hub: hub, logger: logger}
}

func (h *ClaimHandler) List(w http.ResponseWriter, r *http.Request) {
	claims, err := h.claims.List()
	if err != nil {
		h.logger.Error("list claims", "error", err)
		writeMessage(w, http.StatusInternalServerError, "failed to list claims")
		return
	}
	writeData(w, http.StatusOK, claims)
}

func (h *ClaimHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in validate.ClaimInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	if errs := validate.Claim(&in, false); len(errs) > 0 {
		writeValidationErrors(w, errs)
		return
	}

	var claim model.Claim
	in.Apply(&claim)

	created, err := h.claims.Create(&claim)
	if err != nil {
		h.logger.Error("create claim", "error", err)
		writeMessage(w, http.StatusInternalServerError, "failed to create claim")
		return
	}

	h.hub.Broadcast(realtime.Event{Entity: "claim", Action: "created", ID: created.ID})
	writeData(w, http.StatusCreated, created)
}

func (h *ClaimHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid id")
		return
	}

	claim, err := h.claims.GetByID(id)
	if err != nil {
		h.logger.Error("get claim", "error", err)
		writeMessage(w, http.StatusInternalServerError, "failed to get claim")
		return
	}
	if claim == nil {
		writeMessage(w, http.StatusNotFound, "claim not found")
		return
	}
	writeData(w, http.StatusOK, claim)
}

// Update accepts any subset of the claim fields; absent fields keep their
// stored values.
func (h *ClaimHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid id")
		return
	}

	existing, err := h.claims.GetByID(id)
	if err != nil {
		h.logger.Error("get claim", "error", err)
		writeMessage(w, http.StatusInternalServerError, "failed to get claim")
		return
	}
	if existing == nil {
		writeMessage(w, http.StatusNotFound, "claim not found")
		return
	}

	var in validate.ClaimInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	if errs := validate.Claim(&in, true); len(errs) > 0 {
		writeValidationErrors(w, errs)
		return
	}

	in.Apply(existing)

	updated, err := h.claims.Update(id, existing)
	if err != nil {
		h.logger.Error("update claim", "error", err)
		writeMessage(w, http.StatusInternalServerError, "failed to update claim")
		return
	}

	h.hub.Broadcast(realtime.Event{Entity: "claim", Action: "updated", ID: id})
	writeData(w, http.StatusOK, updated)
}

func (h *ClaimHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid id")
		return
	}

	existing, err := h.claims.GetByID(id)
	if err != nil {
		h.logger.Error("get claim", "error", err)
		writeMessage(w, http.StatusInternalServerError, "failed to get claim")
		return
	}
	if existing == nil {
		writeMessage(w, http.StatusNotFound, "claim not found")
		return
	}

	if err := h.claims.SoftDelete(id); err != nil {
		h.logger.Error("delete claim", "error", err)
		writeMessage(w, http.StatusInternalServerError, "failed to delete claim")
		return
	}

	h.hub.Broadcast(realtime.Event{Entity: "claim", Action: "deleted", ID: id})
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "claim deleted",
	})
}
