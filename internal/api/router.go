package api

import "github.com/gin-gonic/gin"

// NewRouter wires the HTTP surface. CORS is wide open: the service is
// meant for ad-hoc exploratory use from arbitrary frontends.
func NewRouter(handler *Handler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), corsMiddleware())

	router.GET("/", handler.Root)

	apiGroup := router.Group("/api")
	{
		apiGroup.GET("/analyze", handler.Analyze)
		apiGroup.GET("/health", handler.Health)
	}

	return router
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
