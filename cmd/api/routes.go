package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

func (app *application) routes() http.Handler {
	r := gin.New()
	r.Use(gin.Recovery())

	// simple logger middleware that uses zap
	r.Use(func(c *gin.Context) {
		start := time.Now()
		c.Next()
		app.Logger.Sugar().Infow("http", "method", c.Request.Method, "path", c.Request.URL.Path, "status", c.Writer.Status(), "duration", time.Since(start))
	})

	// CORS Middleware
	trusted := make(map[string]bool, len(app.Config.CORS.TrustedOrigins))
	for _, origin := range app.Config.CORS.TrustedOrigins {
		trusted[origin] = true
	}
	r.Use(func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if trusted[origin] {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
			c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
			c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")
		}

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	v1 := r.Group("/api/v1")
	{
		v1.POST("/login", app.Handler.Login)

		// question routes (public read)
		v1.GET("/questions", app.Handler.ListQuestions)
		v1.GET("/questions/:question_id", app.Handler.GetQuestion)
	}

	admin := v1.Group("/admin")
	admin.Use(app.AdminAuthMiddleware())
	{
		// ai generation routes
		admin.POST("/ai/generate", app.Handler.GenerateQuestions)
		admin.POST("/ai/test", app.Handler.TestProvider)
		admin.GET("/ai/settings", app.Handler.GetAISetting)
		admin.PUT("/ai/settings", app.Handler.UpdateAISetting)
		admin.GET("/ai/logs", app.Handler.ListGenerationLogs)

		// question curation routes
		admin.POST("/questions/approve", app.Handler.ApproveQuestions)
		admin.DELETE("/questions/:question_id", app.Handler.DeleteQuestion)
	}

	return r
}
