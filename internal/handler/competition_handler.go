package handler

import (
	"net/http"
)

func (h *Handler) AddCompetition(w http.ResponseWriter, r *http.Request) {
	var req CompetitionRequest
	if err := decodeRequest(r, &req); err != nil {
		h.handleError(w, err)
		return
	}
	dateTime, err := httpDateTimeToDomain(req.DateTime)
	if err != nil {
		h.handleError(w, err)
		return
	}

	competition, err := h.editor.AddCompetition(req.LeagueName, req.Teams, req.Location, dateTime)
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, domainCompetitionToHTTP(competition))
}

func (h *Handler) RemoveCompetition(w http.ResponseWriter, r *http.Request) {
	var req CompetitionRefRequest
	if err := decodeRequest(r, &req); err != nil {
		h.handleError(w, err)
		return
	}

	if err := h.editor.RemoveCompetition(req.LeagueName, req.CompetitionOID); err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, StatusResponse{Status: "removed"})
}

func (h *Handler) EmailCompetition(w http.ResponseWriter, r *http.Request) {
	var req CompetitionEmailRequest
	if err := decodeRequest(r, &req); err != nil {
		h.handleError(w, err)
		return
	}

	if err := h.editor.EmailCompetition(req.LeagueName, req.CompetitionOID, req.Subject, req.Message); err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, StatusResponse{Status: "sent"})
}
