package salaryerrors

import (
	"net/http"

	"github.com/priyanshu-101/cb-app-user/internal/shared/apperror"
)

var ErrSalaryNotFound = apperror.New(
	apperror.CodeNotFound,
	"salary details not found",
	http.StatusNotFound,
)
