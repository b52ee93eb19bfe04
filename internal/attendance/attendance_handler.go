package attendance

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/priyanshu-101/cb-app-user/internal/shared/apperror"
	"github.com/priyanshu-101/cb-app-user/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("attendance.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("attendance request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Mark(c *gin.Context) {
	var req MarkAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Mark(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

// employeeName prefers the employeeName query param over the path.
func employeeName(c *gin.Context) string {
	if q := c.Query("employeeName"); q != "" {
		return q
	}
	return c.Param("name")
}

func (h *Handler) View(c *gin.Context) {
	res, err := h.service.View(c.Request.Context(), employeeName(c), c.Query("status"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res.Rows(), response.NewListMeta(res.Len()))
}

func (h *Handler) Export(c *gin.Context) {
	name := employeeName(c)
	res, err := h.service.View(c.Request.Context(), name, c.Query("status"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	data, err := buildWorkbook(res)
	if err != nil {
		h.writeServiceError(c, apperror.Wrap(err, apperror.CodeInternalError, "Failed to build export", http.StatusInternalServerError))
		return
	}

	slug := strings.ToLower(strings.ReplaceAll(res.Status, " ", "_"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="attendance_%s.xlsx"`, slug))
	c.Data(http.StatusOK, xlsxContentType, data)
}
