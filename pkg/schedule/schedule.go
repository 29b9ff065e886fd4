package schedule

import (
	"context"
	"fmt"
	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
	"log/slog"
	"strings"
	"time"
)

// Job is run once per occurrence with the time it was due.
type Job func(ctx context.Context, at time.Time)

// TimeOfDay is a wall clock time in a location.
type TimeOfDay struct {
	Hour     int
	Minute   int
	Location *time.Location
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d %s", t.Hour, t.Minute, t.Location)
}

// ParseTimeOfDay understands inputs like "5am", "5:00 AM" or "17:30".
func ParseTimeOfDay(input string, loc *time.Location) (TimeOfDay, error) {
	if loc == nil {
		loc = time.Local
	}
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" {
		return TimeOfDay{}, fmt.Errorf("no time given")
	}

	base := time.Date(2000, 1, 1, 0, 0, 0, 0, loc)

	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)

	r, err := w.Parse(input, base)
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("failed to parse time %q: %w", input, err)
	}
	if r != nil {
		parsed := r.Time.In(loc)
		return TimeOfDay{Hour: parsed.Hour(), Minute: parsed.Minute(), Location: loc}, nil
	}

	parsed, err := time.ParseInLocation("15:04", input, loc)
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("could not recognize time format: %s", input)
	}
	return TimeOfDay{Hour: parsed.Hour(), Minute: parsed.Minute(), Location: loc}, nil
}

func NewDaily(logger *slog.Logger, at TimeOfDay, job Job) *Daily {
	return &Daily{logger: logger, at: at, job: job, now: time.Now}
}

// Daily runs a job once a day at a fixed time of day.
type Daily struct {
	logger *slog.Logger
	at     TimeOfDay
	job    Job
	now    func() time.Time
}

// Next is the first occurrence strictly after now.
func (d *Daily) Next(now time.Time) time.Time {
	local := now.In(d.at.Location)
	next := time.Date(local.Year(), local.Month(), local.Day(), d.at.Hour, d.at.Minute, 0, 0, d.at.Location)
	if !next.After(local) {
		next = time.Date(local.Year(), local.Month(), local.Day()+1, d.at.Hour, d.at.Minute, 0, 0, d.at.Location)
	}
	return next
}

// Run blocks until ctx is cancelled, running the job at each occurrence.
// A job that overruns the next occurrence makes that occurrence be skipped.
func (d *Daily) Run(ctx context.Context) {
	for {
		next := d.Next(d.now())
		d.logger.Info("next scheduled run", slog.String("at", next.Format(time.RFC3339)))

		timer := time.NewTimer(next.Sub(d.now()))
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
			d.job(ctx, next)
		}
	}
}
