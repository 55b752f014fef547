package api

import (
	"github.com/gin-gonic/gin"
)

// NewRouter wires the API routes onto a gin engine
func NewRouter(handler *Handler, allowedOrigin string) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(corsMiddleware(allowedOrigin))

	router.GET("/ws", handler.HandleWebSocket)

	players := router.Group("/api/players")
	{
		players.POST("", handler.RegisterPlayer)
		players.GET("/:id", handler.GetPlayer)
		players.POST("/:id/slots", handler.PlaySlots)
		players.POST("/:id/roulette", handler.PlayRoulette)
		players.GET("/:id/history", handler.GetHistory)
	}

	return router
}

func corsMiddleware(allowedOrigin string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", allowedOrigin)
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
