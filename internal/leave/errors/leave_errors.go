package leaveerrors

import (
	"net/http"

	"github.com/priyanshu-101/cb-app-user/internal/shared/apperror"
)

var (
	ErrReasonAndNameRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Reason and employee name cannot be empty.",
		http.StatusBadRequest,
	)
	ErrInvalidAttachment = apperror.New(
		apperror.CodeInvalidInput,
		"invalid attachment",
		http.StatusBadRequest,
	)
)

// SaveFailed keeps the historical "Failed to save application: <cause>" text.
func SaveFailed(err error) *apperror.AppError {
	return apperror.Wrap(err, apperror.CodeStorage, "Failed to save application: "+err.Error(), http.StatusInternalServerError)
}
