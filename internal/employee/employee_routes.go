package employee

import "github.com/gin-gonic/gin"

func RegisterRoutes(r gin.IRouter, handler *Handler) {
	r.GET("/Profile/:id", handler.GetProfile)
	r.GET("/Employee/:id", handler.GetById)
	// the check-in screen requests the lowercase path
	r.GET("/employee/:id", handler.GetById)
}
