package cmd

import (
	"fmt"
	"net/http"

	"github.com/wordle-tools/solver/config"
	"github.com/wordle-tools/solver/data"
	"github.com/wordle-tools/solver/handlers"
	"github.com/wordle-tools/solver/logger"
	"github.com/wordle-tools/solver/strategies"
)

// Main initializes and starts the HTTP server with all routes
// and configurations.
func Main() {
	cfg := config.Load()
	log := logger.New()

	wb, err := data.DefaultWordBank()
	if err != nil {
		log.Error("Failed to load word bank", "error", err)
		return
	}
	log.Info("Word bank loaded",
		"guesses", wb.GuessCount(),
		"answers", wb.AnswerCount(),
	)

	strategy := strategies.NewInformationGainStrategy()

	// Register handlers
	http.HandleFunc(
		"/api/v1/suggest/stream",
		func(w http.ResponseWriter, r *http.Request) {
			handlers.SuggestStream(w, r, strategy)
		},
	)
	http.HandleFunc(
		"/api/v1/suggest/close",
		handlers.CloseStream,
	)
	http.HandleFunc(
		"/api/v1/solve",
		handlers.Solve(cfg, wb),
	)

	// Health check endpoint
	http.HandleFunc("/health", func(w http.ResponseWriter,
		r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Info("Starting server", "addr", addr)
	if err := http.ListenAndServe(addr, nil); err != nil {
		log.Error("Server error", "error", err)
	}
}
