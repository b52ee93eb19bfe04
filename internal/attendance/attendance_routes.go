package attendance

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the attendance routes. mw guards the write route.
func RegisterRoutes(r gin.IRouter, h *Handler, mw ...gin.HandlerFunc) {
	r.POST("/Camera/:id", append(mw, h.Mark)...)
	r.GET("/ViewAtt/:name", h.View)
	r.GET("/ViewAtt/:name/export", h.Export)
}
