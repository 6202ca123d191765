package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rollcall-hq/rollcall-backend-go/internal/domain/option"
	"github.com/rollcall-hq/rollcall-backend-go/internal/handler/http/response"
)

type OptionHandler struct {
	optionService option.OptionService
}

func NewOptionHandler(optionService option.OptionService) *OptionHandler {
	return &OptionHandler{optionService: optionService}
}

func (h *OptionHandler) List(w http.ResponseWriter, r *http.Request) {
	options, err := h.optionService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, options)
}

func (h *OptionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req option.CreateOptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	created, err := h.optionService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Option created", created)
}

func (h *OptionHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req option.UpdateOptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	updated, err := h.optionService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Option updated", updated)
}

func (h *OptionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.optionService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Option deleted", nil)
}
