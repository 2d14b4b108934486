package handler

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/bagdasarian/league-manager/internal/domain"
	"github.com/bagdasarian/league-manager/internal/service"
	"github.com/rs/zerolog/log"
)

// Handler обслуживает редактор лиг. Все запросы выполняются по одному:
// реестр лиг не синхронизирован.
type Handler struct {
	mu     sync.Mutex
	editor service.EditorService
}

func NewHandler(editor service.EditorService) *Handler {
	return &Handler{
		editor: editor,
	}
}

// Serialized оборачивает обработчик общим мьютексом
func (h *Handler) Serialized(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.mu.Lock()
		defer h.mu.Unlock()
		next(w, r)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

func decodeRequest(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return domain.NewBadRequestError("invalid request body: " + err.Error())
	}
	return nil
}
