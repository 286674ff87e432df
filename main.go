package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/rafaslide/carddz/cart"
	"github.com/rafaslide/carddz/config"
	"github.com/rafaslide/carddz/handlers"
	"github.com/rafaslide/carddz/routes"
)

func main() {
	log := logrus.New()

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("failed to load configuration")
	}
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}

	gin.SetMode(cfg.GinMode)

	if err := config.InitDB(cfg, log); err != nil {
		log.WithError(err).Fatal("failed to initialize database")
	}

	carts := cart.NewManager(cart.NewGormSnapshotStore(config.DB), log)
	cartAPI := handlers.NewCartAPI(carts)

	r := gin.Default()

	// CORS middleware for frontend integration
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "Carddz Ordering API",
			"version": "1.0.0",
		})
	})

	routes.SetupRoutes(r, cartAPI)

	log.WithField("port", cfg.Port).Info("server starting")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.WithError(err).Fatal("failed to start server")
	}
}
