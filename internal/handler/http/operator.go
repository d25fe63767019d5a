package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	domainoperator "github.com/turnario/turnario-backend-go/internal/domain/operator"
	"github.com/turnario/turnario-backend-go/internal/handler/http/response"
	"github.com/turnario/turnario-backend-go/internal/service/operator"
)

type OperatorHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type operatorHandlerImpl struct {
	operatorService operator.OperatorService
}

func NewOperatorHandler(operatorService operator.OperatorService) OperatorHandler {
	return &operatorHandlerImpl{operatorService: operatorService}
}

// Create implements OperatorHandler.
func (h *operatorHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req domainoperator.CreateOperatorRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create operator decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.operatorService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Operator created", result)
}

// Get implements OperatorHandler.
func (h *operatorHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Operator ID is required", nil)
		return
	}

	result, err := h.operatorService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements OperatorHandler. An optional `role` query narrows the
// result to one role.
func (h *operatorHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var role *domainoperator.Role
	if roleStr := r.URL.Query().Get("role"); roleStr != "" {
		parsed := domainoperator.Role(roleStr)
		role = &parsed
	}

	result, err := h.operatorService.List(r.Context(), role)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Update implements OperatorHandler.
func (h *operatorHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Operator ID is required", nil)
		return
	}

	var req domainoperator.UpdateOperatorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update operator decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	result, err := h.operatorService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Operator updated", result)
}

// Delete implements OperatorHandler. Deletion deactivates the account.
func (h *operatorHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Operator ID is required", nil)
		return
	}

	if err := h.operatorService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Operator deactivated", nil)
}
