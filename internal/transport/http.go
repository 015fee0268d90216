package transport

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/ganot/landlord/internal/app"
	"github.com/ganot/landlord/internal/domain/activity"
	"github.com/ganot/landlord/internal/domain/apartment"
	"github.com/ganot/landlord/internal/domain/calendar"
	"github.com/ganot/landlord/internal/domain/dashboard"
	"github.com/ganot/landlord/internal/domain/maintenance"
	"github.com/ganot/landlord/internal/metrics"
	"github.com/ganot/landlord/internal/store"
	"github.com/ganot/landlord/internal/suggestion"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
)

// Service defines the dashboard operations served over HTTP.
type Service interface {
	Dashboard(filterTag string) app.Dashboard
	Apartments(filterTag string) []dashboard.ApartmentRow
	AddApartment(ctx context.Context, in store.NewApartment) (apartment.Apartment, error)
	UpdateApartment(ctx context.Context, apt apartment.Apartment) (apartment.Apartment, error)
	Tenants() []dashboard.TenantRow
	Documents() []dashboard.DocumentRow
	MaintenanceRequests(statusTag string) []dashboard.MaintenanceRow
	AddMaintenanceRequest(ctx context.Context, in store.NewMaintenanceRequest) (maintenance.Request, error)
	Suggest(ctx context.Context, problem string) suggestion.Result
	CalendarMonth(month, nav string) (calendar.Month, error)
	RecentActivity(ctx context.Context, opts activity.ListActivityOptions) ([]activity.ActivityEntry, error)
}

var _ Service = (*app.Service)(nil)

// Options configures the HTTP server. Every field is optional.
type Options struct {
	Metrics *metrics.Metrics
	// MCP is mounted at /mcp when set.
	MCP         http.Handler
	CORSOrigins []string
	Logger      *slog.Logger
}

// Server wires HTTP handlers.
type Server struct {
	svc    Service
	logger *slog.Logger
}

// NewServer creates the HTTP handler with middleware.
func NewServer(svc Service, opts Options) http.Handler {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	srv := &Server{svc: svc, logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(opts.Metrics.Middleware)
	r.Use(requestLogger(logger))

	r.Get("/health", srv.handleHealth)
	if opts.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", opts.Metrics.Handler())
	}
	if opts.MCP != nil {
		r.Handle("/mcp", opts.MCP)
	}

	r.Route("/api", func(r chi.Router) {
		r.Get("/dashboard", srv.handleDashboard)
		r.Get("/apartments", srv.handleListApartments)
		r.Post("/apartments", srv.handleAddApartment)
		r.Put("/apartments/{id}", srv.handleUpdateApartment)
		r.Get("/tenants", srv.handleListTenants)
		r.Get("/documents", srv.handleListDocuments)
		r.Get("/maintenance", srv.handleListMaintenance)
		r.Post("/maintenance", srv.handleAddMaintenance)
		r.Post("/maintenance/suggestions", srv.handleSuggestions)
		r.Get("/calendar", srv.handleCalendar)
		r.Get("/activity", srv.handleActivity)
	})

	origins := opts.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	c := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Accept", "Mcp-Session-Id", "Mcp-Protocol-Version"},
		ExposedHeaders: []string{"Mcp-Session-Id"},
		MaxAge:         300,
	})
	return c.Handler(r)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func requestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			logger.Debug("http request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"request_id", middleware.GetReqID(r.Context()),
			)
		})
	}
}
