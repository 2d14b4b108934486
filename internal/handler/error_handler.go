package handler

import (
	"errors"
	"net/http"

	"github.com/bagdasarian/league-manager/internal/domain"
	"github.com/rs/zerolog/log"
)

func (h *Handler) handleError(w http.ResponseWriter, err error) {
	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		writeJSON(w, getStatusCode(domainErr.Code), ErrorResponse{
			Error: ErrorDetail{
				Code:    domainErr.Code,
				Message: domainErr.Message,
			},
		})
		return
	}

	log.Error().Err(err).Msg("unhandled error")
	writeJSON(w, http.StatusInternalServerError, ErrorResponse{
		Error: ErrorDetail{
			Code:    "INTERNAL_ERROR",
			Message: "internal server error",
		},
	})
}

func getStatusCode(errorCode string) int {
	switch errorCode {
	case domain.CodeBadRequest, domain.CodeLeagueExists, domain.CodeTeamExists, domain.CodeMemberExists:
		return http.StatusBadRequest
	case domain.CodeDuplicateOID, domain.CodeDuplicateEmail,
		domain.CodeReferentialIntegrity, domain.CodeIntegrityViolation:
		return http.StatusConflict
	case domain.CodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
