package holiday

import "github.com/gin-gonic/gin"

func RegisterRoutes(r gin.IRouter, h *Handler) {
	r.GET("/HolidayList/:id", h.GetAll)
}
