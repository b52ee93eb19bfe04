package site

import "github.com/gin-gonic/gin"

// GET /Camera/:id lists sites for the check-in picker; the POST on the same
// path belongs to the attendance module.
func RegisterRoutes(r gin.IRouter, h *Handler) {
	r.GET("/Camera/:id", h.GetAll)
}
