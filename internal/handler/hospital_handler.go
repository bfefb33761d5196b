package handler

import (
	"encoding/json"
	"net/http"

	"github.com/mcallister/ro-casework/internal/auth"
	"github.com/mcallister/ro-casework/internal/domain"
)

func (h *Handler) ListHospitals(w http.ResponseWriter, r *http.Request) {
	hospitals, err := h.hospitalService.List(r.Context(), auth.OwnerID(r.Context()))
	if err != nil {
		h.handleError(w, err)
		return
	}

	result := make([]HospitalResponse, 0, len(hospitals))
	for _, hospital := range hospitals {
		result = append(result, domainHospitalToHTTP(hospital))
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(ListHospitalsResponse{Hospitals: result})
}

func (h *Handler) CreateHospital(w http.ResponseWriter, r *http.Request) {
	var req HospitalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, domain.NewValidationError("invalid request body"))
		return
	}

	hospital, err := h.hospitalService.Create(r.Context(), &domain.Hospital{
		OwnerID:  auth.OwnerID(r.Context()),
		Name:     req.Name,
		Address:  req.Address,
		Postcode: req.Postcode,
		Phone:    req.Phone,
		Email:    req.Email,
	})
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(domainHospitalToHTTP(hospital))
}

func (h *Handler) DeleteHospital(w http.ResponseWriter, r *http.Request) {
	if err := h.hospitalService.Delete(r.Context(), auth.OwnerID(r.Context()), r.PathValue("id")); err != nil {
		h.handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
