package main

import (
	"log"
	"path/filepath"

	"github.com/mateusfonseca/dorsetMusicCollection/internal/config"
	"github.com/mateusfonseca/dorsetMusicCollection/internal/db"
	"github.com/mateusfonseca/dorsetMusicCollection/internal/handlers"
	"github.com/mateusfonseca/dorsetMusicCollection/internal/middleware"
	"github.com/mateusfonseca/dorsetMusicCollection/internal/router"
	"github.com/mateusfonseca/dorsetMusicCollection/internal/services"

	"github.com/gin-contrib/multitemplate"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Database
	db.Init(cfg.DatabaseURL)

	// Initialize Gin
	r := gin.Default()

	// Setup Sessions
	store := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("dorsetmusic_session", store))

	// Load Templates
	r.HTMLRender = loadTemplates(cfg.TemplatesDir)

	// Static Assets
	r.Static("/static", "./web/static")

	// Middleware
	r.Use(middleware.SSLRedirect(cfg.SSLRedirect))
	r.Use(middleware.LoadUser())

	// Handlers
	catalog := services.NewDiscogsClient(cfg.DiscogsToken)
	pollParams := handlers.NewPollParams()
	pollHandler := handlers.NewPollHandler(catalog, pollParams)
	accountHandler := handlers.NewAccountHandler()
	authHandler := handlers.NewAuthHandler()

	router.RegisterRoutes(r, pollHandler, accountHandler, authHandler)

	log.Printf("dorsetMusicCollection server starting on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}

func loadTemplates(templatesDir string) multitemplate.Renderer {
	r := multitemplate.NewRenderer()

	layouts, err := filepath.Glob(templatesDir + "/layouts/*.html")
	if err != nil {
		panic(err)
	}

	assemble := func(view string) []string {
		files := make([]string, 0, len(layouts)+1)
		files = append(files, layouts...)
		files = append(files, view)
		return files
	}

	views := []string{
		"polls/index.html",
		"polls/detail.html",
		"polls/results.html",
		"polls/create.html",
		"polls/no_matches.html",
		"accounts/signup.html",
		"accounts/detail.html",
		"accounts/delete.html",
		"accounts/delete_confirmation.html",
		"accounts/change_email.html",
		"auth/login.html",
		"error.html",
	}
	for _, view := range views {
		r.AddFromFiles(view, assemble(templatesDir+"/views/"+view)...)
	}

	return r
}
