package server

import (
	"net/http"

	"github.com/bagdasarian/league-manager/internal/handler"
)

func SetupRoutes(mux *http.ServeMux, h *handler.Handler) {
	routes := map[string]http.HandlerFunc{
		"GET /league/list":         h.ListLeagues,
		"POST /league/add":         h.AddLeague,
		"POST /league/remove":      h.RemoveLeague,
		"GET /league/get":          h.GetLeague,
		"POST /league/import":      h.ImportTeams,
		"POST /league/export":      h.ExportTeams,
		"POST /team/add":           h.AddTeam,
		"POST /team/remove":        h.RemoveTeam,
		"POST /team/email":         h.EmailTeam,
		"POST /member/add":         h.AddMember,
		"POST /member/update":      h.UpdateMember,
		"POST /member/remove":      h.RemoveMember,
		"POST /competition/add":    h.AddCompetition,
		"POST /competition/remove": h.RemoveCompetition,
		"POST /competition/email":  h.EmailCompetition,
		"POST /db/save":            h.SaveDatabase,
		"POST /db/load":            h.LoadDatabase,
	}
	for pattern, fn := range routes {
		mux.HandleFunc(pattern, h.Serialized(fn))
	}
}
