// Package testserver boots the full HTTP stack over an in-memory store for
// end-to-end tests.
package testserver

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ganot/landlord/internal/app"
	"github.com/ganot/landlord/internal/domain/activity"
	"github.com/ganot/landlord/internal/domain/calendar"
	"github.com/ganot/landlord/internal/mcp"
	"github.com/ganot/landlord/internal/metrics"
	"github.com/ganot/landlord/internal/seed"
	"github.com/ganot/landlord/internal/sqlite"
	"github.com/ganot/landlord/internal/store"
	"github.com/ganot/landlord/internal/suggestion"
	"github.com/ganot/landlord/internal/transport"
	"github.com/stretchr/testify/require"
)

// Now is the fixed clock every test server runs on.
var Now = time.Date(2026, time.October, 15, 10, 0, 0, 0, time.UTC)

type TestServer struct {
	Server  *httptest.Server
	DB      *sqlite.DB
	Store   *store.Store
	Service *app.Service
	Metrics *metrics.Metrics
}

// Option customises a TestServer before it starts.
type Option func(*config)

type config struct {
	seed        store.Seed
	suggestions suggestion.Gateway
}

// WithSeed replaces the built-in seed.
func WithSeed(s store.Seed) Option {
	return func(c *config) { c.seed = s }
}

// WithSuggestions sets the suggestion gateway.
func WithSuggestions(g suggestion.Gateway) Option {
	return func(c *config) { c.suggestions = g }
}

func New(t *testing.T, opts ...Option) *TestServer {
	t.Helper()

	cfg := config{seed: seed.Default()}
	for _, opt := range opts {
		opt(&cfg)
	}

	db, err := sqlite.OpenMemory()
	require.NoError(t, err)

	clock := func() time.Time { return Now }
	activitySvc := activity.NewService(sqlite.NewActivityRepository(db), nil)

	st, err := store.New(cfg.seed, store.Options{Journal: activitySvc, Now: clock})
	require.NoError(t, err)

	m := metrics.New("landlord")
	gateway := cfg.suggestions
	if gateway != nil {
		gateway = suggestion.Observed(gateway, m)
	}

	svc := app.NewService(st, app.Options{
		Suggestions: gateway,
		Activity:    activitySvc,
		Calendar: calendar.ProjectOptions{
			WeekStart: time.Sunday,
			Holidays:  calendar.NewItalianHolidays(),
		},
		Now: clock,
	})

	mcpServer := mcp.NewServer(mcp.Config{Service: svc})
	server := httptest.NewServer(transport.NewServer(svc, transport.Options{
		Metrics: m,
		MCP:     mcp.NewHTTPHandler(mcpServer),
	}))

	t.Cleanup(func() {
		server.Close()
		_ = db.Close()
	})

	return &TestServer{
		Server:  server,
		DB:      db,
		Store:   st,
		Service: svc,
		Metrics: m,
	}
}

// URL returns the absolute URL for path.
func (ts *TestServer) URL(path string) string {
	return ts.Server.URL + path
}
