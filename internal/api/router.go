package api

import (
	"mission-energy-service/internal/api/handlers"
	"mission-energy-service/internal/platform/metrics"
	"mission-energy-service/internal/ports"
	"net/http"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(repo ports.ScenarioRepository, provider ports.DistanceProvider) http.Handler {
	mux := http.NewServeMux()

	scenarioHandler := &handlers.ScenarioHandler{Repo: repo}
	evalHandler := &handlers.EvaluationHandler{
		Repo:     repo,
		Provider: provider,
	}

	routes := map[string]http.Handler{
		"/health":      http.HandlerFunc(handlers.Health),
		"/scenarios":   http.HandlerFunc(scenarioHandler.List),
		"/evaluations": http.HandlerFunc(evalHandler.List),
		"/evaluation":  http.HandlerFunc(evalHandler.Get),
		"/status":      http.HandlerFunc(evalHandler.Status),
		"/path":        http.HandlerFunc(evalHandler.Path),
		"/metrics":     metrics.Handler(),
	}

	paths := make([]string, 0, len(routes))
	for path, h := range routes {
		mux.Handle(path, h)
		paths = append(paths, path)
	}

	return requestIDMiddleware(loggingMiddleware(metrics.Middleware(paths, mux)))
}
