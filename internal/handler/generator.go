package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/passforge/passforge-go/internal/command"
	"github.com/passforge/passforge-go/internal/config"
	"github.com/passforge/passforge-go/internal/model"
	"github.com/passforge/passforge-go/internal/password"
	"github.com/passforge/passforge-go/internal/service"
)

// GeneratorHandler handles HTTP requests for password generation.
type GeneratorHandler struct {
	service *service.GeneratorService
	policy  model.PolicyResponse
}

// NewGeneratorHandler creates a new GeneratorHandler.
func NewGeneratorHandler(svc *service.GeneratorService, cfg config.Config) *GeneratorHandler {
	return &GeneratorHandler{
		service: svc,
		policy: model.PolicyResponse{
			DefaultLength:      cfg.DefaultLength,
			MinLength:          cfg.MinLength,
			MaxLength:          cfg.MaxLength,
			RateLimitPerMinute: cfg.RateLimitPerMinute,
		},
	}
}

// HandleGenerate handles POST /api/v1/generate requests.
func (h *GeneratorHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	var req model.GenerateRequest
	if r.Body != nil {
		r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB
		defer r.Body.Close()
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			if err.Error() == "http: request body too large" {
				writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse("request body too large"))
				return
			}
			writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
			return
		}
	}

	resp, err := h.service.Generate(req)
	if err != nil {
		h.writeGenerateError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleCommand handles POST /api/v1/command requests carrying the text
// command syntax ("/pass 20 --symbols --no-ambiguous").
func (h *GeneratorHandler) HandleCommand(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB
	defer r.Body.Close()

	var req model.CommandRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if err.Error() == "http: request body too large" {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse("request body too large"))
			return
		}
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
		return
	}

	resp, err := h.service.GenerateFromCommand(req)
	if err != nil {
		h.writeGenerateError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandlePolicy handles GET /api/v1/policy requests.
func (h *GeneratorHandler) HandlePolicy(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.policy)
}

func (h *GeneratorHandler) writeGenerateError(w http.ResponseWriter, err error) {
	if isValidationError(err) {
		writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		return
	}
	writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
}

func isValidationError(err error) bool {
	return errors.Is(err, service.ErrLengthTooShort) ||
		errors.Is(err, service.ErrLengthTooLong) ||
		errors.Is(err, password.ErrEmptyPool) ||
		errors.Is(err, password.ErrTooFewPositions) ||
		errors.Is(err, command.ErrUnknownCommand) ||
		errors.Is(err, command.ErrUnknownOption) ||
		errors.Is(err, command.ErrInvalidLength)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func errorResponse(msg string) map[string]string {
	return map[string]string{"error": msg}
}
