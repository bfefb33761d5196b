package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/mcallister/ro-casework/internal/auth"
	"github.com/mcallister/ro-casework/internal/domain"
)

func (h *Handler) ListCases(w http.ResponseWriter, r *http.Request) {
	cases, err := h.caseService.List(r.Context(), auth.OwnerID(r.Context()))
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(ListCasesResponse{
		Cases: domainCasesToHTTP(cases, time.Now()),
	})
}

func (h *Handler) CreateCase(w http.ResponseWriter, r *http.Request) {
	var req CreateCaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, domain.NewValidationError("invalid request body"))
		return
	}

	c, err := h.caseService.Create(r.Context(), auth.OwnerID(r.Context()), httpCaseToDraft(req))
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(CreateCaseResponse{
		Case: domainCaseToHTTP(c, time.Now()),
	})
}

func (h *Handler) ParseCase(w http.ResponseWriter, r *http.Request) {
	var req ParseCaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, domain.NewValidationError("invalid request body"))
		return
	}
	if req.Text == "" {
		h.handleError(w, domain.NewValidationError("text is required"))
		return
	}

	c, err := h.caseService.CreateFromText(r.Context(), auth.OwnerID(r.Context()), req.Text)
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(CreateCaseResponse{
		Case: domainCaseToHTTP(c, time.Now()),
	})
}

func (h *Handler) GetCase(w http.ResponseWriter, r *http.Request) {
	c, err := h.caseService.Get(r.Context(), auth.OwnerID(r.Context()), r.PathValue("id"))
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(CreateCaseResponse{
		Case: domainCaseToHTTP(c, time.Now()),
	})
}

func (h *Handler) UpdateCase(w http.ResponseWriter, r *http.Request) {
	var req UpdateCaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, domain.NewValidationError("invalid request body"))
		return
	}

	patch, err := httpPatchToDomain(req)
	if err != nil {
		h.handleError(w, err)
		return
	}

	c, err := h.caseService.Update(r.Context(), auth.OwnerID(r.Context()), r.PathValue("id"), patch)
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(CreateCaseResponse{
		Case: domainCaseToHTTP(c, time.Now()),
	})
}

func (h *Handler) DeleteCase(w http.ResponseWriter, r *http.Request) {
	if err := h.caseService.Delete(r.Context(), auth.OwnerID(r.Context()), r.PathValue("id")); err != nil {
		h.handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) LegalRunForm(w http.ResponseWriter, r *http.Request) {
	export, err := h.caseService.GenerateLegalRunForm(r.Context(), auth.OwnerID(r.Context()), r.PathValue("id"))
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeExport(w, export.Filename, export.ContentType, export.Data)
}

func (h *Handler) AdviceLetter(w http.ResponseWriter, r *http.Request) {
	export, err := h.caseService.GenerateAdviceLetter(r.Context(), auth.OwnerID(r.Context()), r.PathValue("id"))
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeExport(w, export.Filename, export.ContentType, export.Data)
}

func (h *Handler) writeExport(w http.ResponseWriter, filename, contentType string, data []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
