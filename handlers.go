package main

import (
	"net/http"
	"time"

	"hashriddles/internal/riddle"

	"github.com/gin-gonic/gin"
)

// homeHandler renders the landing page.
func (app *App) homeHandler(c *gin.Context) {
	c.HTML(http.StatusOK, TemplateIndex, newIndexView(app.Riddles, app.BaseURL))
}

// riddleHandler returns the handler for one riddle. A missing guess is the
// empty string and renders the unsolved state.
func (app *App) riddleHandler(r riddle.Riddle) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		guess := c.Query(GuessQueryParam)
		view := newRiddleView(r, guess, app.BaseURL)

		reqID, _ := ctx.Value(requestIDKey).(string)
		if view.Solved {
			logInfo("[request_id=%v] Riddle %d solved", reqID, r.Number)
		} else if guess != "" {
			logInfo("[request_id=%v] Riddle %d wrong guess (hash %s)", reqID, r.Number, view.GuessHash)
		}

		c.HTML(http.StatusOK, TemplateRiddle, view)
	}
}

// completionHandler renders the page that follows the last riddle.
func (app *App) completionHandler(c *gin.Context) {
	c.HTML(http.StatusOK, TemplateCompletion, newCompletionView(app.Riddles, app.BaseURL))
}

// healthzHandler returns a JSON health check with server stats.
func (app *App) healthzHandler(c *gin.Context) {
	uptime := time.Since(app.StartTime)
	c.JSON(http.StatusOK, gin.H{
		"status":         "ok",
		"env":            map[bool]string{true: "production", false: "development"}[app.IsProduction],
		"riddles_loaded": app.Riddles.Len(),
		"uptime":         formatUptime(uptime),
		"timestamp":      time.Now().UTC().Format(time.RFC3339),
	})
}
