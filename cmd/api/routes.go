package main

import (
	"net/http"
	"strings"
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
	trusted := app.Config.GetCORSOrigins()
	r.Use(func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		for _, t := range trusted {
			if strings.EqualFold(origin, t) {
				c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
				c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
				break
			}
		}
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PATCH, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	v1 := r.Group("/api/v1")
	{
		v1.POST("/signup", app.Handler.SignUp)
		v1.POST("/login", app.Handler.Login)

		// candidate routes, gated by interview status rather than auth
		v1.GET("/interview/:id", app.Handler.GetInterview)
		v1.POST("/interview/:id/join", app.Handler.JoinInterview)
		v1.POST("/session/:token/start", app.Handler.StartSession)
		v1.POST("/session/:token/submit", app.Handler.SubmitSession)
	}

	protected := v1.Group("/")
	protected.Use(app.AuthMiddleware())
	{
		protected.GET("/me", app.Handler.Me)

		// recruiter routes
		protected.POST("/interviews/generate", app.Handler.GenerateQuestions)
		protected.POST("/interviews", app.Handler.CreateInterview)
		protected.GET("/interviews/recent", app.Handler.RecentInterviews)
		protected.PATCH("/interviews/:id/status", app.Handler.UpdateInterviewStatus)
		protected.POST("/interviews/import-job", app.Handler.ImportJobPost)
	}

	return r
}
