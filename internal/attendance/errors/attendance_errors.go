package attendanceerrors

import (
	"net/http"

	"github.com/priyanshu-101/cb-app-user/internal/shared/apperror"
)

var ErrInvalidStatus = apperror.New(
	apperror.CodeInvalidInput,
	"Invalid status",
	http.StatusBadRequest,
)

// MarkFailed keeps the driver message in the error details.
func MarkFailed(err error) error {
	return apperror.Wrap(err, apperror.CodeStorage, "Failed to mark attendance", http.StatusInternalServerError)
}
