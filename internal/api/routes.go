package api

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the API under /api.
func RegisterRoutes(r *gin.Engine, h *Handler) {
	api := r.Group("/api")
	{
		api.GET("/health", h.health)
		api.POST("/filter", h.filter)
		api.POST("/reload", h.reload)
		api.GET("/params", h.params)
		api.POST("/render", h.renderCard)
		api.POST("/sheets", h.sheets)
		api.POST("/deck/print", h.deckPrint)
		api.POST("/deck/image", h.deckImage)
		api.POST("/deck/qr", h.deckQR)
		api.GET("/qr", h.qr)
	}
}
