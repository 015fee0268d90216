package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/ganot/landlord/internal/app"
	"github.com/ganot/landlord/internal/config"
	"github.com/ganot/landlord/internal/domain/activity"
	"github.com/ganot/landlord/internal/domain/calendar"
	"github.com/ganot/landlord/internal/metrics"
	"github.com/ganot/landlord/internal/seed"
	"github.com/ganot/landlord/internal/sqlite"
	"github.com/ganot/landlord/internal/store"
	"github.com/ganot/landlord/internal/suggestion"
)

// runtime holds the wired components shared by every command.
type runtime struct {
	cfg     config.Config
	logger  *slog.Logger
	db      *sqlite.DB
	store   *store.Store
	service *app.Service
	metrics *metrics.Metrics
	closers []io.Closer
}

// bootstrap loads configuration and wires the store, journal and service.
// Logs go to stderr when stdout carries protocol traffic.
func bootstrap(logToStderr bool) (*runtime, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}

	rt := &runtime{cfg: cfg}

	logWriter := io.Writer(os.Stdout)
	if logToStderr {
		logWriter = os.Stderr
	}
	if logPath := os.Getenv("LANDLORD_LOG_PATH"); logPath != "" {
		fileWriter, file, err := newLogFileWriter(logPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "log file error: %v\n", err)
		} else {
			rt.closers = append(rt.closers, file)
			logWriter = fileWriter
		}
	}
	rt.logger = slog.New(slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Log.Level),
	}))

	initial, err := seed.Load(cfg.Seed.Path)
	if err != nil {
		rt.Close()
		return nil, fmt.Errorf("load seed: %w", err)
	}

	rt.db, err = sqlite.OpenMemory()
	if err != nil {
		rt.Close()
		return nil, fmt.Errorf("open activity journal: %w", err)
	}
	rt.closers = append(rt.closers, rt.db)

	activitySvc := activity.NewService(sqlite.NewActivityRepository(rt.db), rt.logger)

	rt.store, err = store.New(initial, store.Options{
		Journal: activitySvc,
		Logger:  rt.logger,
	})
	if err != nil {
		rt.Close()
		return nil, fmt.Errorf("create store: %w", err)
	}

	if cfg.Metrics.Enabled {
		rt.metrics = metrics.New(cfg.Metrics.Namespace)
	}

	gateway := suggestion.New(suggestion.Config{
		APIKey:  cfg.Suggestions.APIKey,
		BaseURL: cfg.Suggestions.BaseURL,
		Model:   cfg.Suggestions.Model,
		Timeout: cfg.Suggestions.Timeout,
	}, rt.logger)
	if rt.metrics != nil {
		gateway = suggestion.Observed(gateway, rt.metrics)
	}

	weekStart, err := cfg.Calendar.Weekday()
	if err != nil {
		rt.Close()
		return nil, err
	}
	calendarOpts := calendar.ProjectOptions{WeekStart: weekStart}
	if cfg.Calendar.Holidays {
		calendarOpts.Holidays = calendar.NewItalianHolidays()
	}

	rt.service = app.NewService(rt.store, app.Options{
		Suggestions: gateway,
		Activity:    activitySvc,
		Calendar:    calendarOpts,
		Logger:      rt.logger,
	})

	return rt, nil
}

// Close releases the journal database and the log file.
func (rt *runtime) Close() {
	for i := len(rt.closers) - 1; i >= 0; i-- {
		_ = rt.closers[i].Close()
	}
	rt.closers = nil
}
