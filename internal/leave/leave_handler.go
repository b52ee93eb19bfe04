package leave

import (
	"errors"
	"net/http"

	leaveerrors "github.com/priyanshu-101/cb-app-user/internal/leave/errors"
	"github.com/priyanshu-101/cb-app-user/internal/shared/apperror"
	"github.com/priyanshu-101/cb-app-user/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("leave.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("leave request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// Apply accepts multipart/form-data with an optional "attachment" file part.
func (h *Handler) Apply(c *gin.Context) {
	employeeID := c.Param("id")
	h.logger.Debug("http apply leave", zap.String("employee_id", employeeID))

	var req ApplyLeaveRequest
	if err := c.ShouldBind(&req); err != nil {
		h.logger.Warn("http apply leave bind failed", zap.Error(err))
		h.writeServiceError(c, leaveerrors.ErrReasonAndNameRequired)
		return
	}

	var attachment *Attachment
	if c.ContentType() == gin.MIMEMultipartPOSTForm {
		fh, err := c.FormFile("attachment")
		switch {
		case errors.Is(err, http.ErrMissingFile):
			// attachment is optional
		case err != nil:
			h.writeServiceError(c, apperror.Wrap(err, apperror.CodeInvalidInput, leaveerrors.ErrInvalidAttachment.Message, http.StatusBadRequest))
			return
		default:
			f, err := fh.Open()
			if err != nil {
				h.writeServiceError(c, apperror.Wrap(err, apperror.CodeInvalidInput, leaveerrors.ErrInvalidAttachment.Message, http.StatusBadRequest))
				return
			}
			defer f.Close()
			attachment = &Attachment{Filename: fh.Filename, Body: f}
		}
	}

	resp, err := h.service.Apply(c.Request.Context(), employeeID, req, attachment)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}
