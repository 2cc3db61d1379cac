package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"mentorhub-backend/internal/domain"
	"mentorhub-backend/internal/service"
)

type MentorshipHandler struct {
	mentorshipSvc service.MentorshipService
}

func NewMentorshipHandler(mentorshipSvc service.MentorshipService) *MentorshipHandler {
	return &MentorshipHandler{mentorshipSvc: mentorshipSvc}
}

func requestIDFromPath(r *http.Request) (int32, error) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		return 0, domain.NewValidationError("invalid request id")
	}
	return int32(id), nil
}

type createRequestBody struct {
	AlumniID    int32  `json:"alumni_id"`
	RequestType string `json:"request_type"`
	Message     string `json:"message"`
}

func (h *MentorshipHandler) CreateRequest(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthenticated"})
		return
	}

	var body createRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, domain.NewValidationError("invalid request body"))
		return
	}

	req, err := h.mentorshipSvc.CreateRequest(r.Context(), actor, body.AlumniID, body.RequestType, body.Message)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, req)
}

type acceptRequestBody struct {
	ResponseMessage string `json:"response_message"`
	MeetingLink     string `json:"meeting_link"`
	MeetingDate     string `json:"meeting_date"`
	MeetingTime     string `json:"meeting_time"`
}

func (h *MentorshipHandler) AcceptRequest(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthenticated"})
		return
	}

	id, err := requestIDFromPath(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var body acceptRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, domain.NewValidationError("invalid request body"))
		return
	}

	req, err := h.mentorshipSvc.AcceptRequest(r.Context(), actor, id,
		body.ResponseMessage, body.MeetingLink, body.MeetingDate, body.MeetingTime)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, req)
}

type rejectRequestBody struct {
	RejectionReason string `json:"rejection_reason"`
}

func (h *MentorshipHandler) RejectRequest(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthenticated"})
		return
	}

	id, err := requestIDFromPath(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var body rejectRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, domain.NewValidationError("invalid request body"))
		return
	}

	req, err := h.mentorshipSvc.RejectRequest(r.Context(), actor, id, body.RejectionReason)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, req)
}

func (h *MentorshipHandler) ArchiveRequest(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthenticated"})
		return
	}

	id, err := requestIDFromPath(r)
	if err != nil {
		writeError(w, err)
		return
	}

	req, err := h.mentorshipSvc.ArchiveRequest(r.Context(), actor, id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, req)
}

func (h *MentorshipHandler) GetRequest(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthenticated"})
		return
	}

	id, err := requestIDFromPath(r)
	if err != nil {
		writeError(w, err)
		return
	}

	req, err := h.mentorshipSvc.GetRequest(r.Context(), actor, id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, req)
}

type listResponse struct {
	Requests []domain.MentorshipRequest `json:"requests"`
	Total    int32                      `json:"total"`
}

// ListRequests serves both inbox views: ?role=alumni lists requests
// addressed to the actor, ?role=student (the default for students) lists
// requests the actor sent. Optional ?status= filters by lifecycle state.
func (h *MentorshipHandler) ListRequests(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthenticated"})
		return
	}

	status := r.URL.Query().Get("status")
	page := parseQueryInt(r, "page", 1)
	pageSize := parseQueryInt(r, "page_size", 20)

	role := r.URL.Query().Get("role")
	if role == "" {
		if actor.IsAlumni() {
			role = "alumni"
		} else {
			role = "student"
		}
	}

	var (
		reqs  []domain.MentorshipRequest
		total int32
		err   error
	)
	if role == "alumni" {
		reqs, total, err = h.mentorshipSvc.ListByAlumni(r.Context(), actor, status, page, pageSize)
	} else {
		reqs, total, err = h.mentorshipSvc.ListByStudent(r.Context(), actor, status, page, pageSize)
	}
	if err != nil {
		writeError(w, err)
		return
	}
	if reqs == nil {
		reqs = []domain.MentorshipRequest{}
	}
	writeJSON(w, http.StatusOK, listResponse{Requests: reqs, Total: total})
}

func (h *MentorshipHandler) Stats(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthenticated"})
		return
	}

	stats, err := h.mentorshipSvc.AlumniStats(r.Context(), actor)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func parseQueryInt(r *http.Request, key string, fallback int32) int32 {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	val, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || val < 1 {
		return fallback
	}
	return int32(val)
}
