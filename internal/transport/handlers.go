package transport

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/ganot/landlord/internal/app"
	"github.com/ganot/landlord/internal/domain/activity"
	"github.com/ganot/landlord/internal/domain/apartment"
	"github.com/ganot/landlord/internal/domain/dashboard"
	"github.com/ganot/landlord/internal/domain/maintenance"
	"github.com/ganot/landlord/internal/store"
	"github.com/go-chi/chi/v5"
)

type apartmentsResponse struct {
	Filter     apartment.Filter         `json:"filter"`
	Apartments []dashboard.ApartmentRow `json:"apartments"`
}

type tenantsResponse struct {
	Tenants []dashboard.TenantRow `json:"tenants"`
}

type documentsResponse struct {
	Documents []dashboard.DocumentRow `json:"documents"`
}

type maintenanceResponse struct {
	Status   maintenance.StatusFilter   `json:"status"`
	Requests []dashboard.MaintenanceRow `json:"requests"`
}

type suggestionsRequest struct {
	Description string `json:"description"`
}

type activityResponse struct {
	Entries []activity.ActivityEntry `json:"entries"`
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.svc.Dashboard(r.URL.Query().Get("filter")))
}

func (s *Server) handleListApartments(w http.ResponseWriter, r *http.Request) {
	tag := r.URL.Query().Get("filter")
	writeJSON(w, http.StatusOK, apartmentsResponse{
		Filter:     apartment.ParseFilter(tag),
		Apartments: s.svc.Apartments(tag),
	})
}

func (s *Server) handleAddApartment(w http.ResponseWriter, r *http.Request) {
	var in store.NewApartment
	if err := decodeJSON(w, r, &in); err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	apt, err := s.svc.AddApartment(r.Context(), in)
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, apt)
}

func (s *Server) handleUpdateApartment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var apt apartment.Apartment
	if err := decodeJSON(w, r, &apt); err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	if apt.ID == "" {
		apt.ID = id
	}
	if apt.ID != id {
		s.writeDomainError(w, r, fmt.Errorf("%w: body id %q does not match path id %q", app.ErrInvalidInput, apt.ID, id))
		return
	}
	updated, err := s.svc.UpdateApartment(r.Context(), apt)
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleListTenants(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, tenantsResponse{Tenants: s.svc.Tenants()})
}

func (s *Server) handleListDocuments(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, documentsResponse{Documents: s.svc.Documents()})
}

func (s *Server) handleListMaintenance(w http.ResponseWriter, r *http.Request) {
	tag := r.URL.Query().Get("status")
	writeJSON(w, http.StatusOK, maintenanceResponse{
		Status:   maintenance.ParseStatusFilter(tag),
		Requests: s.svc.MaintenanceRequests(tag),
	})
}

func (s *Server) handleAddMaintenance(w http.ResponseWriter, r *http.Request) {
	var in store.NewMaintenanceRequest
	if err := decodeJSON(w, r, &in); err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	req, err := s.svc.AddMaintenanceRequest(r.Context(), in)
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, req)
}

func (s *Server) handleSuggestions(w http.ResponseWriter, r *http.Request) {
	var in suggestionsRequest
	if err := decodeJSON(w, r, &in); err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, s.svc.Suggest(r.Context(), in.Description))
}

func (s *Server) handleCalendar(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	month, err := s.svc.CalendarMonth(q.Get("month"), q.Get("nav"))
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, month)
}

func (s *Server) handleActivity(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	var opts activity.ListActivityOptions
	if v := q.Get("entity_id"); v != "" {
		opts.EntityID = &v
	}
	if v := q.Get("type"); v != "" {
		typ := activity.ActivityType(v)
		opts.ActivityType = &typ
	}
	var err error
	if opts.Limit, err = intParam(q.Get("limit")); err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	if opts.Offset, err = intParam(q.Get("offset")); err != nil {
		s.writeDomainError(w, r, err)
		return
	}

	entries, err := s.svc.RecentActivity(r.Context(), opts)
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, activityResponse{Entries: entries})
}

func intParam(v string) (int, error) {
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %q is not a non-negative integer", app.ErrInvalidInput, v)
	}
	return n, nil
}
