package autherrors

import (
	"net/http"

	"github.com/priyanshu-101/cb-app-user/internal/shared/apperror"
)

var ErrInvalidCredentials = apperror.New(
	apperror.CodeUnauthorized,
	"Invalid credentials",
	http.StatusUnauthorized,
)
