package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"server/internal/auth"
	"server/internal/domain"
	"server/internal/i18n"
)

// App bundles the dependencies shared by the HTTP handlers.
type App struct {
	Log      zerolog.Logger
	Guard    *auth.Guard
	Stats    domain.StatsRepository
	Currency i18n.Formatter
}

func NewApp(log zerolog.Logger, guard *auth.Guard, stats domain.StatsRepository, currency i18n.Formatter) *App {
	return &App{Log: log, Guard: guard, Stats: stats, Currency: currency}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// error writes the API error shape. Denial messages are part of the API
// contract, so callers pass them verbatim.
func (a *App) error(w http.ResponseWriter, code int, msg string) {
	a.json(w, code, map[string]string{"error": msg})
}
