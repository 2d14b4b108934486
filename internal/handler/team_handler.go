package handler

import (
	"net/http"
)

func (h *Handler) AddTeam(w http.ResponseWriter, r *http.Request) {
	var req TeamRequest
	if err := decodeRequest(r, &req); err != nil {
		h.handleError(w, err)
		return
	}

	team, err := h.editor.AddTeam(req.LeagueName, req.TeamName)
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, domainTeamToHTTP(team))
}

func (h *Handler) RemoveTeam(w http.ResponseWriter, r *http.Request) {
	var req TeamRequest
	if err := decodeRequest(r, &req); err != nil {
		h.handleError(w, err)
		return
	}

	if err := h.editor.RemoveTeam(req.LeagueName, req.TeamName); err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, StatusResponse{Status: "removed"})
}

func (h *Handler) EmailTeam(w http.ResponseWriter, r *http.Request) {
	var req TeamEmailRequest
	if err := decodeRequest(r, &req); err != nil {
		h.handleError(w, err)
		return
	}

	if err := h.editor.EmailTeam(req.LeagueName, req.TeamName, req.Subject, req.Message); err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, StatusResponse{Status: "sent"})
}

func (h *Handler) AddMember(w http.ResponseWriter, r *http.Request) {
	var req MemberRequest
	if err := decodeRequest(r, &req); err != nil {
		h.handleError(w, err)
		return
	}

	member, err := h.editor.AddMember(req.LeagueName, req.TeamName, req.MemberName, req.Email)
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, domainMemberToHTTP(member))
}

func (h *Handler) UpdateMember(w http.ResponseWriter, r *http.Request) {
	var req UpdateMemberRequest
	if err := decodeRequest(r, &req); err != nil {
		h.handleError(w, err)
		return
	}

	member, err := h.editor.UpdateMember(req.LeagueName, req.TeamName, req.MemberOID, req.MemberName, req.Email)
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, domainMemberToHTTP(member))
}

func (h *Handler) RemoveMember(w http.ResponseWriter, r *http.Request) {
	var req MemberRequest
	if err := decodeRequest(r, &req); err != nil {
		h.handleError(w, err)
		return
	}

	if err := h.editor.RemoveMember(req.LeagueName, req.TeamName, req.MemberName); err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, StatusResponse{Status: "removed"})
}
