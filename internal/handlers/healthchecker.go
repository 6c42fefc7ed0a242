package handlers

//go:generate mockgen -source=healthchecker.go -destination=mock_healthchecker.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-contacts/internal/logger"
)

// Pinger checks that the database answers queries.
type Pinger interface {
	Ping(ctx context.Context) error
}

// NewHealthcheckerHandler returns an HTTP handler probing the database.
// @Summary Health check
// @Tags ops
// @Produce json
// @Success 200 {object} handlers.MessageResponse "Welcome to healthchecker!"
// @Failure 500 {object} handlers.ErrorResponse "Error connecting to the database"
// @Router /healthchecker [get]
func NewHealthcheckerHandler(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := db.Ping(r.Context()); err != nil {
			logger.FromContext(r.Context()).Errorw("database healthcheck failed", "err", err)
			writeError(w, http.StatusInternalServerError, "Error connecting to the database")
			return
		}
		writeJSON(w, http.StatusOK, MessageResponse{Message: "Welcome to healthchecker!"})
	}
}
