package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/dukerupert/reclamos/internal/validate"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"message": msg})
}

func writeValidationErrors(w http.ResponseWriter, errs validate.FieldErrors) {
	writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
		"message": "validation failed",
		"errors":  errs,
	})
}

func writeData(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, map[string]any{
		"success": true,
		"data":    data,
	})
}

func parseIDParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("id"), 10, 64)
}
