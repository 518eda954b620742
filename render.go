package main

import (
	"embed"
	"fmt"
	"html/template"
	"path/filepath"
	"strconv"

	"hashriddles/internal/riddle"

	"github.com/samber/lo"
)

//go:embed templates/*.html
var templateFS embed.FS

const distTemplateDir = "dist/templates"

// loadTemplates parses the page templates. In production the minified copies
// under dist/templates are preferred when the build step produced them.
func loadTemplates(production bool) (*template.Template, error) {
	if production && dirExists(distTemplateDir) {
		logInfo("Serving minified templates from %s", distTemplateDir)
		tmpl, err := template.ParseGlob(filepath.Join(distTemplateDir, "*.html"))
		if err != nil {
			return nil, fmt.Errorf("parse minified templates: %w", err)
		}
		return tmpl, nil
	}
	logInfo("Serving embedded templates")
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse embedded templates: %w", err)
	}
	return tmpl, nil
}

// riddlePath returns the route of the riddle (or completion page) with the given number.
func riddlePath(number int) string {
	return RouteRiddlePrefix + strconv.Itoa(number)
}

func link(baseURL, path string) string {
	return baseURL + path
}

func newIndexView(table riddle.Table, baseURL string) IndexView {
	return IndexView{
		Title:     PageTitle,
		Count:     table.Len(),
		FirstLink: link(baseURL, riddlePath(1)),
	}
}

// newRiddleView checks guess against r and builds everything the riddle page shows.
func newRiddleView(r riddle.Riddle, guess, baseURL string) RiddleView {
	verdict := r.Check(guess)
	return RiddleView{
		Title:             fmt.Sprintf("%s - Riddle %d", PageTitle, r.Number),
		Number:            r.Number,
		Prompt:            r.Prompt,
		AnswerHash:        verdict.AnswerHash,
		GuessHash:         verdict.GuessHash,
		Solved:            verdict.Solved,
		HashColor:         lo.Ternary(verdict.Solved, HashColorSolved, HashColorUnsolved),
		SuccessVisibility: lo.Ternary(verdict.Solved, SuccessVisible, SuccessHidden),
		SuccessMessage:    r.SuccessMessage,
		FormAction:        riddlePath(r.Number),
		NextLink:          link(baseURL, riddlePath(r.Number+1)),
	}
}

func newCompletionView(table riddle.Table, baseURL string) CompletionView {
	return CompletionView{
		Title:     PageTitle + " - Complete",
		Count:     table.Len(),
		StartLink: link(baseURL, RouteHome),
	}
}
