package classifier

import (
	"github.com/warmans/puzzleboard/pkg/decoder"
	"github.com/warmans/puzzleboard/pkg/game"
	"github.com/warmans/puzzleboard/pkg/metrics"
	"github.com/warmans/puzzleboard/pkg/scores"
	"log/slog"
	"strings"
	"time"
)

// Saver persists the store after it changes.
type Saver interface {
	Save(s *scores.Store) error
}

func New(logger *slog.Logger, store *scores.Store, saver Saver, loc *time.Location) *Classifier {
	if loc == nil {
		loc = time.Local
	}
	return &Classifier{
		logger:   logger,
		store:    store,
		saver:    saver,
		loc:      loc,
		decoders: decoder.All(),
	}
}

// Classifier records any puzzle result found in a chat message.
type Classifier struct {
	logger   *slog.Logger
	store    *scores.Store
	saver    Saver
	loc      *time.Location
	decoders []decoder.Func
}

// Classify decodes the message and stores the result against the day the
// message was received. Messages that are not results, or that cannot be
// scored, leave the store untouched.
func (c *Classifier) Classify(player string, text string, receivedAt time.Time) decoder.Outcome {
	text = strings.TrimSpace(text)

	outcome := decoder.Outcome{Status: decoder.NotApplicable}
	for _, dec := range c.decoders {
		if outcome = dec(text); outcome.Status != decoder.NotApplicable {
			break
		}
	}

	switch outcome.Status {
	case decoder.NotApplicable:
		return outcome
	case decoder.Malformed:
		metrics.ResultsSkipped.WithLabelValues(string(outcome.Kind)).Inc()
		c.logger.Debug(
			"ignored unreadable result",
			slog.String("game", string(outcome.Kind)),
			slog.String("player", player),
			slog.String("reason", outcome.Reason),
		)
		return outcome
	}

	date := receivedAt.In(c.loc).Format(game.DateFormat)
	c.store.Put(outcome.Kind, date, player, outcome.Record)
	metrics.ResultsRecorded.WithLabelValues(string(outcome.Kind)).Inc()

	c.logger.Info(
		"recorded result",
		slog.String("game", string(outcome.Kind)),
		slog.String("player", player),
		slog.String("date", date),
	)

	if err := c.saver.Save(c.store); err != nil {
		metrics.SaveFailures.Inc()
		c.logger.Error("failed to save scores", slog.String("err", err.Error()))
	}
	return outcome
}

// Today is the current calendar day in the classifier's location.
func (c *Classifier) Today(now time.Time) string {
	return now.In(c.loc).Format(game.DateFormat)
}
