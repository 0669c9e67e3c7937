package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbershop-site/internal/config"
	"github.com/BruksfildServices01/barbershop-site/internal/middleware"
	"github.com/BruksfildServices01/barbershop-site/internal/routes"
	"github.com/BruksfildServices01/barbershop-site/internal/sheetstore"
)

func main() {

	cfg := config.Load()

	store, err := sheetstore.New(context.Background(), cfg)
	if err != nil {
		log.Fatalf("failed to init record store: %v", err)
	}

	if cfg.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	r.Use(middleware.CORSMiddleware(cfg.ClientURL))

	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, store, cfg)

	// Locally stored portfolio images.
	r.Static("/uploads", cfg.UploadsDir)

	// Serve the built client when it is present, with an SPA fallback
	// so deep links resolve to index.html.
	if dist, statErr := filepath.Abs(filepath.Join("client", "dist")); statErr == nil {
		if _, statErr := os.Stat(filepath.Join(dist, "index.html")); statErr == nil {
			r.Static("/assets", filepath.Join(dist, "assets"))
			r.StaticFile("/", filepath.Join(dist, "index.html"))
			r.NoRoute(func(c *gin.Context) {
				c.File(filepath.Join(dist, "index.html"))
			})
		}
	}

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
