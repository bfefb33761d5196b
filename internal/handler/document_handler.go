package handler

import (
	"encoding/json"
	"net/http"

	"github.com/mcallister/ro-casework/internal/auth"
	"github.com/mcallister/ro-casework/internal/domain"
)

func (h *Handler) ListDocuments(w http.ResponseWriter, r *http.Request) {
	documents, err := h.documentService.List(r.Context(), auth.OwnerID(r.Context()))
	if err != nil {
		h.handleError(w, err)
		return
	}

	result := make([]DocumentResponse, 0, len(documents))
	for _, doc := range documents {
		result = append(result, domainDocumentToHTTP(doc))
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(ListDocumentsResponse{Documents: result})
}

func (h *Handler) CreateDocument(w http.ResponseWriter, r *http.Request) {
	var req DocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, domain.NewValidationError("invalid request body"))
		return
	}

	doc, err := h.documentService.Create(r.Context(), &domain.DocumentRecord{
		OwnerID: auth.OwnerID(r.Context()),
		CaseID:  req.CaseID,
		Name:    req.Name,
		Type:    req.Type,
	})
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(domainDocumentToHTTP(doc))
}

func (h *Handler) DeleteDocument(w http.ResponseWriter, r *http.Request) {
	if err := h.documentService.Delete(r.Context(), auth.OwnerID(r.Context()), r.PathValue("id")); err != nil {
		h.handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
