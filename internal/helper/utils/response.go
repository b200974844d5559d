package utils

import (
	"errors"

	"github.com/SundayYogurt/social_user_service/internal/domain"
	"github.com/SundayYogurt/social_user_service/internal/dto"
)

// Envelope status codes.
const (
	StatusOK         = "200"
	StatusBadRequest = "400"
	StatusNotFound   = "404"
	StatusConflict   = "409"
)

// StatusOf maps a business-rule failure to its envelope code. ok is false
// for any other error, which callers surface as a transport failure.
func StatusOf(err error) (code string, ok bool) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return StatusNotFound, true
	case errors.Is(err, domain.ErrConflict):
		return StatusConflict, true
	case errors.Is(err, domain.ErrValidation):
		return StatusBadRequest, true
	}
	return "", false
}

func ManageOK(id, message string) dto.ManageResponse {
	return dto.ManageResponse{ID: id, Message: message, Code: StatusOK}
}

func ManageFailed(err error) dto.ManageResponse {
	m := MetaFailed(err)
	return dto.ManageResponse{Message: m.Message, Code: m.Code, ErrMessage: m.ErrMessage}
}

func MetaOK(message string) dto.Metadata {
	return dto.Metadata{Code: StatusOK, Message: message}
}

// MetaFailed fills errMessage with the dictionary code so clients can
// branch on it.
func MetaFailed(err error) dto.Metadata {
	code, _ := StatusOf(err)
	return dto.Metadata{Code: code, Message: err.Error(), ErrMessage: domain.CodeOf(err)}
}
