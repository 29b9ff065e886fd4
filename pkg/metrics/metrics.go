package metrics

import (
	"context"
	"errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"log/slog"
	"net/http"
	"time"
)

var (
	ResultsRecorded = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "puzzleboard_results_recorded_total",
		Help: "Puzzle results decoded and stored",
	}, []string{"game"})

	ResultsSkipped = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "puzzleboard_results_skipped_total",
		Help: "Messages that looked like a result but could not be scored",
	}, []string{"game"})

	SaveFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "puzzleboard_save_failures_total",
		Help: "Failed writes of the scores file",
	})

	LeaderboardPosts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "puzzleboard_leaderboard_posts_total",
		Help: "Scheduled leaderboard posts by outcome",
	}, []string{"outcome"})
)

// Serve exposes /metrics on addr until ctx is cancelled.
func Serve(ctx context.Context, logger *slog.Logger, addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.Info("serving metrics", slog.String("addr", addr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("metrics server failed", slog.String("err", err.Error()))
	}
}
