package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/mcallister/ro-casework/internal/auth"
	"github.com/mcallister/ro-casework/internal/domain"
)

func (h *Handler) ListMeetings(w http.ResponseWriter, r *http.Request) {
	meetings, err := h.meetingService.List(r.Context(), auth.OwnerID(r.Context()))
	if err != nil {
		h.handleError(w, err)
		return
	}

	result := make([]MeetingResponse, 0, len(meetings))
	for _, meeting := range meetings {
		result = append(result, domainMeetingToHTTP(meeting))
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(ListMeetingsResponse{Meetings: result})
}

func (h *Handler) CreateMeeting(w http.ResponseWriter, r *http.Request) {
	var req MeetingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, domain.NewValidationError("invalid request body"))
		return
	}

	var date time.Time
	if req.Date != "" {
		parsed, err := time.Parse(time.RFC3339, req.Date)
		if err != nil {
			h.handleError(w, domain.NewValidationError("date must be an RFC 3339 timestamp"))
			return
		}
		date = parsed
	}

	meeting, err := h.meetingService.Create(r.Context(), &domain.Meeting{
		OwnerID:   auth.OwnerID(r.Context()),
		Title:     req.Title,
		Date:      date,
		Location:  req.Location,
		Attendees: req.Attendees,
		Notes:     req.Notes,
	})
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(domainMeetingToHTTP(meeting))
}

func (h *Handler) DeleteMeeting(w http.ResponseWriter, r *http.Request) {
	if err := h.meetingService.Delete(r.Context(), auth.OwnerID(r.Context()), r.PathValue("id")); err != nil {
		h.handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
