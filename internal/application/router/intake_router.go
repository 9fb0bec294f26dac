package router

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"gorm.io/gorm"

	"github.com/OpenRICA/permit-intake/internal/application/model"
	"github.com/OpenRICA/permit-intake/internal/application/service"
	"github.com/OpenRICA/permit-intake/internal/database"
)

const welcomeMessage = "Welcome to the RICA Import Permit Application API!"

type IntakeRouter struct {
	svc *service.IntakeService
	db  *gorm.DB
}

func NewIntakeRouter(svc *service.IntakeService, db *gorm.DB) *IntakeRouter {
	return &IntakeRouter{svc: svc, db: db}
}

// HandleIndex handles GET / requests
func (ir *IntakeRouter) HandleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, welcomeMessage)
}

// HandleHealth handles GET /healthz requests
func (ir *IntakeRouter) HandleHealth(w http.ResponseWriter, r *http.Request) {
	if err := database.HealthCheck(ir.db); err != nil {
		slog.ErrorContext(r.Context(), "health check failed", "error", err)
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "database unavailable"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// HandleSubmit handles POST /submit requests.
// Responses follow the submission wire contract: 200 {"message": ...} on
// success, 400 {"error": ...} for malformed or incomplete payloads, and a
// generic 500 {"error": ...} for anything that fails past validation.
func (ir *IntakeRouter) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	var payload model.SubmitApplicationDTO
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			writeJSON(w, http.StatusBadRequest, map[string]string{
				"error": fmt.Sprintf("%s has an invalid type", typeErr.Field),
			})
			return
		}
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	defer r.Body.Close()

	if _, err := ir.svc.SubmitApplication(r.Context(), &payload); err != nil {
		var valErr *service.ValidationError
		if errors.As(err, &valErr) {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": valErr.Error()})
			return
		}
		// Storage detail stays in the log; the client gets a generic message.
		slog.ErrorContext(r.Context(), "failed to submit application", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to submit application"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Form submitted successfully!"})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
