package main

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	cachecontrol "go.eigsys.de/gin-cachecontrol/v2"
	"golang.org/x/time/rate"
)

// getLimiter returns a rate limiter for the given key (usually client IP).
func (app *App) getLimiter(key string) *rate.Limiter {
	app.LimiterMutex.Lock()
	defer app.LimiterMutex.Unlock()
	if lim, ok := app.LimiterMap[key]; ok {
		return lim
	}

	if key == "" || key == "::1" {
		logWarn("Rate limiter key is empty or loopback: %q", key)
	}
	rps := app.RateLimitRPS
	if rps <= 0 {
		rps = 1
	}
	lim := rate.NewLimiter(rate.Every(time.Second/time.Duration(rps)), app.RateLimitBurst)
	app.LimiterMap[key] = lim
	return lim
}

// rateLimitMiddleware returns a Gin middleware that enforces per-client rate limiting.
func (app *App) rateLimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP()
		if !app.getLimiter(key).Allow() {
			reqID, _ := c.Request.Context().Value(requestIDKey).(string)
			logWarn("[request_id=%v] Rate limit exceeded for %s on %s", reqID, key, c.Request.URL.Path)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": ErrorTooManyRequests})
			return
		}
		c.Next()
	}
}

// requestIDMiddleware injects a request ID into the context for each request.
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		reqID := c.Request.Header.Get("X-Request-Id")
		if reqID == "" {
			reqID = uuid.NewString()
		}
		ctx := context.WithValue(c.Request.Context(), requestIDKey, reqID)
		c.Request = c.Request.WithContext(ctx)
		c.Header("X-Request-Id", reqID)
		c.Next()
	}
}

var noStore = cachecontrol.Config{
	NoStore:        true,
	NoCache:        true,
	MustRevalidate: true,
}

// cacheHeadersMiddleware marks riddle pages as uncacheable since their body
// depends on the guess. Other pages may be cached publicly in production.
func (app *App) cacheHeadersMiddleware() gin.HandlerFunc {
	static := cachecontrol.New(cachecontrol.Config{
		Public: true,
		MaxAge: cachecontrol.Duration(app.StaticCacheAge),
	})
	dynamic := cachecontrol.New(noStore)
	return func(c *gin.Context) {
		if app.IsProduction && !app.isRiddlePath(c.Request.URL.Path) {
			c.Header("Vary", "Accept-Encoding")
			static(c)
			return
		}
		dynamic(c)
	}
}

// isRiddlePath reports whether path serves a riddle with a guess form.
func (app *App) isRiddlePath(path string) bool {
	n, err := strconv.Atoi(strings.TrimPrefix(path, RouteRiddlePrefix))
	if err != nil || riddlePath(n) != path {
		return false
	}
	_, ok := app.Riddles.Get(n)
	return ok
}
