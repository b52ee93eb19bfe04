package leave

import "github.com/gin-gonic/gin"

func RegisterRoutes(r gin.IRouter, h *Handler, mw ...gin.HandlerFunc) {
	r.POST("/Application/:id", append(mw, h.Apply)...)
}
