package main

import (
	"fmt"

	"github.com/sumtl/restaurant-reviews-app/configs"
	"github.com/sumtl/restaurant-reviews-app/middlewares"
	"github.com/sumtl/restaurant-reviews-app/pkg/logger"
	"github.com/sumtl/restaurant-reviews-app/routes"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg := configs.LoadConfig()

	log, cleanup := logger.New(cfg.LogLevel, cfg.LogJSON)
	defer cleanup()

	// DB
	if err := configs.ConnectionDB(cfg); err != nil {
		log.Fatal("db open failed", zap.Error(err))
	}
	db := configs.DB()

	// migrate
	if err := configs.SetupDatabase(); err != nil {
		log.Fatal("migrate failed", zap.Error(err))
	}

	// seed du menu (le catalogue est en lecture seule côté API)
	if err := configs.SeedMenuItems(); err != nil {
		log.Fatal("seed menu items failed", zap.Error(err))
	}

	// HTTP
	gin.SetMode(cfg.GinMode)
	r := gin.New()
	r.Use(logger.Middleware(log))
	r.Use(gin.Recovery())
	r.Use(middlewares.CORSMiddleware())

	routes.RegisterRoutes(r, db, log)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Info("server running", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
