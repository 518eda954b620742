package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hashriddles/internal/riddle"

	ginGzip "github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/samber/lo"
	"golang.org/x/time/rate"
)

func main() {
	_ = godotenv.Load()

	app, err := newApp()
	if err != nil {
		logFatal("Failed to initialize: %v", err)
	}
	logInfo("Starting hashriddles in %s mode", map[bool]string{true: "production", false: "development"}[app.IsProduction])
	logInfo("Loaded %d riddles", app.Riddles.Len())

	if app.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}
	startServer(app.setupRouter())
}

// newApp builds the App from the environment.
func newApp() (*App, error) {
	isProduction := os.Getenv("GIN_MODE") == "release" || os.Getenv("ENV") == "production"

	table, err := loadRiddles(getEnvString("RIDDLES_FILE", ""))
	if err != nil {
		return nil, err
	}

	tmpl, err := loadTemplates(isProduction)
	if err != nil {
		return nil, err
	}

	return &App{
		Riddles:        table,
		Templates:      tmpl,
		BaseURL:        normalizeBaseURL(getEnvString("BASE_URL", "")),
		IsProduction:   isProduction,
		StaticCacheAge: getEnvDuration("STATIC_CACHE_AGE", 5*time.Minute),
		RateLimitRPS:   getEnvInt("RATE_LIMIT_RPS", 5),
		RateLimitBurst: getEnvInt("RATE_LIMIT_BURST", 10),
		LimiterMap:     make(map[string]*rate.Limiter),
		StartTime:      time.Now(),
	}, nil
}

// loadRiddles returns the table from path, or the built-in table when path is empty.
func loadRiddles(path string) (riddle.Table, error) {
	if path == "" {
		logInfo("Loading built-in riddles")
		return riddle.Default()
	}
	logInfo("Loading riddles from %s", path)
	return riddle.LoadFile(path)
}

// setupRouter registers middleware and one route per riddle.
func (app *App) setupRouter() *gin.Engine {
	router := gin.Default()

	router.Use(ginGzip.Gzip(ginGzip.DefaultCompression,
		ginGzip.WithExcludedExtensions([]string{".svg", ".ico", ".png", ".jpg", ".jpeg", ".gif"})))

	if err := router.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logWarn("Failed to set trusted proxies: %v", err)
	}

	router.Use(requestIDMiddleware())
	router.Use(app.cacheHeadersMiddleware())
	router.SetHTMLTemplate(app.Templates)

	router.GET(RouteHome, app.homeHandler)
	lo.ForEach(app.Riddles.All(), func(r riddle.Riddle, _ int) {
		router.GET(riddlePath(r.Number), app.rateLimitMiddleware(), app.riddleHandler(r))
	})
	router.GET(riddlePath(app.Riddles.FinalNumber()), app.completionHandler)
	router.GET(RouteHealthz, app.healthzHandler)

	return router
}

func startServer(router *gin.Engine) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	idleConnsClosed := make(chan struct{})
	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, syscall.SIGINT, syscall.SIGTERM)
		<-sigint
		logInfo("Shutdown signal received, shutting down server gracefully...")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logWarn("HTTP server Shutdown: %v", err)
		}
		close(idleConnsClosed)
	}()

	logInfo("Server starting on http://localhost:%s", port)
	if err := srv.ListenAndServe(); err != http.ErrServerClosed {
		logFatal("Server failed to start: %v", err)
	}
	<-idleConnsClosed
	logInfo("Server shutdown complete")
}
