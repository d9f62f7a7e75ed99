package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"usermgmt-backend/internal/models"
)

func writeJSON(w http.ResponseWriter, status int, resp models.Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

func respondOK(w http.ResponseWriter, status int, message string, data interface{}) {
	writeJSON(w, status, models.Response{Success: true, Message: message, Data: data})
}

func respondError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, models.Response{Success: false, Message: message})
}

func respondValidation(w http.ResponseWriter, errs []models.FieldError) {
	writeJSON(w, http.StatusBadRequest, models.Response{
		Success: false,
		Message: "Validation failed",
		Errors:  errs,
	})
}

// respondInternal logs the real error and returns a generic message.
func respondInternal(w http.ResponseWriter, context string, err error) {
	log.Printf("%s: %v", context, err)
	respondError(w, http.StatusInternalServerError, "Internal server error")
}
