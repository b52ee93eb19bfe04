package salary

import "github.com/gin-gonic/gin"

func RegisterRoutes(r gin.IRouter, h *Handler) {
	r.GET("/Salary/:id", h.GetByEmployee)
	r.GET("/Salary/:id/receipt", h.Receipt)
}
