package main

import (
	"html/template"
	"sync"
	"time"

	"hashriddles/internal/riddle"

	"golang.org/x/time/rate"
)

type contextKey string

// App holds the riddle table, parsed templates and server configuration.
type App struct {
	Riddles        riddle.Table
	Templates      *template.Template
	BaseURL        string
	IsProduction   bool
	StaticCacheAge time.Duration
	RateLimitRPS   int
	RateLimitBurst int
	LimiterMap     map[string]*rate.Limiter
	LimiterMutex   sync.Mutex
	StartTime      time.Time
}

// IndexView is the data for the landing page.
type IndexView struct {
	Title     string
	Count     int
	FirstLink string
}

// RiddleView is the data for a single riddle page.
type RiddleView struct {
	Title             string
	Number            int
	Prompt            string
	AnswerHash        string
	GuessHash         string
	Solved            bool
	HashColor         string
	SuccessVisibility string
	SuccessMessage    string
	FormAction        string
	NextLink          string
}

// CompletionView is the data for the page shown after the last riddle.
type CompletionView struct {
	Title     string
	Count     int
	StartLink string
}
