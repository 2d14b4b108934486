package handler

import "net/http"

func (h *Handler) SaveDatabase(w http.ResponseWriter, r *http.Request) {
	if err := h.editor.Save(r.Context()); err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, StatusResponse{Status: "saved"})
}

func (h *Handler) LoadDatabase(w http.ResponseWriter, r *http.Request) {
	if err := h.editor.Load(r.Context()); err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, domainLeaguesToHTTP(h.editor.ListLeagues()))
}
