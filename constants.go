package main

// Route constants
const (
	RouteHome          = "/"
	RouteHealthz       = "/healthz"
	RouteRiddlePrefix  = "/riddle"
	GuessQueryParam    = "guess"
	PageTitle          = "Riddles with Hashing"
	TemplateIndex      = "index.html"
	TemplateRiddle     = "riddle.html"
	TemplateCompletion = "end.html"
)

// Styling for the guess hash and the success block
const (
	HashColorSolved   = "green"
	HashColorUnsolved = "red"
	SuccessVisible    = "visible"
	SuccessHidden     = "hidden"
)

// Error message constants
const (
	ErrorTooManyRequests = "Too many requests. Please slow down."
)

// Context key constants
const (
	requestIDKey contextKey = "request_id"
)
