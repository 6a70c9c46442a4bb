package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"api/monitoring"
	"api/services"
)

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		json.NewEncoder(w).Encode(payload)
	}
}

// respondError translates the domain error kinds into status codes.
// Anything unrecognized is an unexpected failure and stays opaque.
func respondError(w http.ResponseWriter, err error) {
	var (
		validation *services.ValidationError
		notFound   *services.NotFoundError
		conflict   *services.ConflictError
	)
	switch {
	case errors.As(err, &validation):
		monitoring.RuleViolations.WithLabelValues("validation").Inc()
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
	case errors.As(err, &notFound):
		monitoring.RuleViolations.WithLabelValues("not_found").Inc()
		respondJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
	case errors.As(err, &conflict):
		monitoring.RuleViolations.WithLabelValues("conflict").Inc()
		respondJSON(w, http.StatusConflict, map[string]string{"error": err.Error()})
	default:
		logrus.WithError(err).Error("unexpected failure")
		respondJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}
}

func respondInvalidJSON(w http.ResponseWriter) {
	respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
}

// pathID reads the {id} route variable. Routes constrain it to digits,
// so a parse failure can only mean overflow.
func pathID(r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
