package queue

import (
	"context"
	"encoding/json"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"

	"github.com/nyinyi2714/hotel-del-luna-api/internal/application/ports"
	"github.com/nyinyi2714/hotel-del-luna-api/internal/infrastructure/email"
)

// Worker runs Asynq task handlers (booking confirmation email).
type Worker struct {
	srv *asynq.Server
	mux *asynq.ServeMux
	log zerolog.Logger
}

// NewWorker creates an Asynq server and registers handlers. Call Run() to
// start.
func NewWorker(redisOpt asynq.RedisClientOpt, log zerolog.Logger) *Worker {
	srv := asynq.NewServer(redisOpt, asynq.Config{
		Concurrency: 2,
		LogLevel:    asynq.InfoLevel,
	})
	mux := asynq.NewServeMux()
	w := &Worker{srv: srv, mux: mux, log: log}
	mux.HandleFunc(TypeBookingConfirmation, w.handleBookingConfirmation)
	return w
}

func (w *Worker) handleBookingConfirmation(ctx context.Context, t *asynq.Task) error {
	var c ports.BookingConfirmation
	if err := json.Unmarshal(t.Payload(), &c); err != nil {
		w.log.Error().Err(err).Msg("booking confirmation task payload invalid")
		return err
	}
	body, err := email.RenderConfirmation(c)
	if err != nil {
		w.log.Error().Err(err).
			Str("reservation_id", c.ReservationID).
			Msg("render booking confirmation failed")
		return err
	}
	// Dev: log the rendered email; production would send via SMTP/sendgrid etc.
	w.log.Info().
		Str("to", c.Email).
		Str("subject", email.ConfirmationSubject).
		Str("reservation_id", c.ReservationID).
		Int("body_bytes", len(body)).
		Msg("booking confirmation email (log only; configure SMTP for real email)")
	return nil
}

// Run blocks until shutdown. Use Shutdown for graceful stop.
func (w *Worker) Run() error {
	return w.srv.Run(w.mux)
}

// Shutdown stops the worker.
func (w *Worker) Shutdown() {
	w.srv.Shutdown()
}
