package router

import (
	"net/http"

	"buggyapi/internal/config"
	"buggyapi/internal/controllers"
	"buggyapi/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// New builds the Gin engine with the full route table. The recovery
// handler is the fault boundary: panics raised inside the catalog handlers
// surface here and are written as bare 500 responses, never converted to
// structured errors.
func New(cfg *config.Config, log *logrus.Logger, users *controllers.UserController, catalog *controllers.CatalogController) *gin.Engine {
	r := gin.New()

	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(log))
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.WithFields(logrus.Fields{
			"request_id": middleware.GetRequestID(c),
			"fault":      recovered,
		}).Error("unhandled fault")
		c.AbortWithStatus(http.StatusInternalServerError)
	}))

	if cfg.RateLimitRPS > 0 {
		limiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)
		r.Use(limiter.LimitMiddleware())
	}

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	// User directory
	r.GET("/users", users.ListUsers)
	r.POST("/users", users.CreateUser)
	r.GET("/users/:id", users.GetUser)
	r.PUT("/users/:id", users.UpdateUser)
	r.DELETE("/users/:id", users.DeleteUser)
	r.GET("/admin/stats", users.AdminStats)

	// Fault-injection catalog
	r.POST("/orders", catalog.CreateOrder)
	r.GET("/search", catalog.Search)
	r.POST("/webhook", catalog.Webhook)
	r.GET("/compute/:value", catalog.Compute)
	r.POST("/payments", catalog.CreatePayment)
	r.GET("/products/:id/reviews", catalog.GetReviews)
	r.PUT("/config", catalog.UpdateConfig)
	r.POST("/transform", catalog.Transform)
	r.GET("/report", catalog.Report)

	return r
}
