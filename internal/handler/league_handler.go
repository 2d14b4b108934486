package handler

import (
	"net/http"

	"github.com/bagdasarian/league-manager/internal/domain"
)

func (h *Handler) ListLeagues(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, domainLeaguesToHTTP(h.editor.ListLeagues()))
}

func (h *Handler) AddLeague(w http.ResponseWriter, r *http.Request) {
	var req LeagueRequest
	if err := decodeRequest(r, &req); err != nil {
		h.handleError(w, err)
		return
	}

	league, err := h.editor.AddLeague(req.LeagueName)
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, domainLeagueToHTTP(league))
}

func (h *Handler) RemoveLeague(w http.ResponseWriter, r *http.Request) {
	var req LeagueRequest
	if err := decodeRequest(r, &req); err != nil {
		h.handleError(w, err)
		return
	}

	if err := h.editor.RemoveLeague(req.LeagueName); err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, StatusResponse{Status: "removed"})
}

func (h *Handler) GetLeague(w http.ResponseWriter, r *http.Request) {
	leagueName := r.URL.Query().Get("league_name")
	if leagueName == "" {
		h.handleError(w, domain.NewBadRequestError("league_name parameter is required"))
		return
	}

	league, err := h.editor.GetLeague(leagueName)
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, domainLeagueToHTTP(league))
}

func (h *Handler) ImportTeams(w http.ResponseWriter, r *http.Request) {
	var req ImportRequest
	if err := decodeRequest(r, &req); err != nil {
		h.handleError(w, err)
		return
	}
	if req.Path == "" {
		h.handleError(w, domain.NewBadRequestError("path is required"))
		return
	}

	if err := h.editor.ImportTeams(req.LeagueName, req.Path, req.KnownTeamsOnly); err != nil {
		h.handleError(w, err)
		return
	}

	league, err := h.editor.GetLeague(req.LeagueName)
	if err != nil {
		h.handleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, domainLeagueToHTTP(league))
}

// ExportTeams пишет CSV одной команды, если указан team_name, иначе всей лиги
func (h *Handler) ExportTeams(w http.ResponseWriter, r *http.Request) {
	var req ExportRequest
	if err := decodeRequest(r, &req); err != nil {
		h.handleError(w, err)
		return
	}
	if req.Path == "" {
		h.handleError(w, domain.NewBadRequestError("path is required"))
		return
	}

	var err error
	if req.TeamName != "" {
		err = h.editor.ExportTeam(req.LeagueName, req.TeamName, req.Path)
	} else {
		err = h.editor.ExportLeague(req.LeagueName, req.Path)
	}
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, StatusResponse{Status: "exported"})
}
