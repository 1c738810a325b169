package server

import (
	"time"

	"github.com/daccred/stellarops.attest.so/controllers"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter(operationsController *controllers.OperationsController, allowedOrigins []string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(gin.Logger())

	if len(allowedOrigins) > 0 {
		cfg := cors.DefaultConfig()
		cfg.AllowOrigins = allowedOrigins
		cfg.AllowMethods = []string{"GET", "POST", "OPTIONS"}
		cfg.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
		cfg.MaxAge = 12 * time.Hour
		r.Use(cors.New(cfg))
	}

	operationsController.RegisterRoutes(r)

	return r
}
