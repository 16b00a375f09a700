package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/rehacentro/clinica-api/internal/cache"
	"github.com/rehacentro/clinica-api/internal/config"
	dbpkg "github.com/rehacentro/clinica-api/internal/db"
	"github.com/rehacentro/clinica-api/internal/logger"
	"github.com/rehacentro/clinica-api/internal/middleware"
	"github.com/rehacentro/clinica-api/internal/routes"
)

func main() {

	cfg := config.Load()

	log := logger.New(cfg.Env)
	defer log.Sync()

	db := dbpkg.NewDB(cfg)

	var store cache.Cache = cache.NewNoop()
	if cfg.RedisAddr != "" {
		store = cache.NewRedis(cfg.RedisAddr, cfg.RedisPass)
		log.Info("cache redis habilitado", zap.String("addr", cfg.RedisAddr))
	}

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(log))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, store, log)

	log.Info("servidor iniciado", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal("no se pudo iniciar el servidor", zap.Error(err))
	}
}
