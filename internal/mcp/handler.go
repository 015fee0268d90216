package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ganot/landlord/internal/app"
	"github.com/ganot/landlord/internal/domain/activity"
	"github.com/ganot/landlord/internal/domain/apartment"
	"github.com/ganot/landlord/internal/domain/calendar"
	"github.com/ganot/landlord/internal/domain/dashboard"
	"github.com/ganot/landlord/internal/domain/maintenance"
	"github.com/ganot/landlord/internal/store"
	"github.com/ganot/landlord/internal/suggestion"
)

// Service defines the dashboard operations needed by MCP.
type Service interface {
	Dashboard(filterTag string) app.Dashboard
	Apartments(filterTag string) []dashboard.ApartmentRow
	AddApartment(ctx context.Context, in store.NewApartment) (apartment.Apartment, error)
	PatchApartment(ctx context.Context, id string, fn func(*apartment.Apartment)) (apartment.Apartment, error)
	Tenants() []dashboard.TenantRow
	Documents() []dashboard.DocumentRow
	MaintenanceRequests(statusTag string) []dashboard.MaintenanceRow
	AddMaintenanceRequest(ctx context.Context, in store.NewMaintenanceRequest) (maintenance.Request, error)
	Suggest(ctx context.Context, problem string) suggestion.Result
	CalendarMonth(month, nav string) (calendar.Month, error)
	RecentActivity(ctx context.Context, opts activity.ListActivityOptions) ([]activity.ActivityEntry, error)
}

var _ Service = (*app.Service)(nil)

const suggestionsUnavailableMessage = "Suggerimenti non disponibili al momento."

// Handler dispatches MCP tool calls.
type Handler struct {
	svc Service
}

// NewHandler creates a new MCP handler.
func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

// Handle dispatches a tool call to the service.
func (h *Handler) Handle(ctx context.Context, method string, params json.RawMessage) (any, error) {
	switch method {
	case "get_dashboard":
		var req FilterParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		return h.svc.Dashboard(req.Filter), nil
	case "list_apartments":
		var req FilterParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		return ApartmentsResponse{
			Filter:     apartment.ParseFilter(req.Filter),
			Apartments: h.svc.Apartments(req.Filter),
		}, nil
	case "add_apartment":
		var req AddApartmentParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		apt, err := h.svc.AddApartment(ctx, store.NewApartment{
			Address:    req.Address,
			Unit:       req.Unit,
			RentAmount: req.RentAmount,
		})
		if err != nil {
			return nil, mapError(err)
		}
		return apt, nil
	case "update_apartment":
		var req UpdateApartmentParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		apt, err := h.svc.PatchApartment(ctx, req.ID, req.apply)
		if err != nil {
			return nil, mapError(err)
		}
		return apt, nil
	case "list_tenants":
		return TenantsResponse{Tenants: h.svc.Tenants()}, nil
	case "list_documents":
		return DocumentsResponse{Documents: h.svc.Documents()}, nil
	case "list_maintenance_requests":
		var req ListMaintenanceParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		return MaintenanceResponse{
			Status:   maintenance.ParseStatusFilter(req.Status),
			Requests: h.svc.MaintenanceRequests(req.Status),
		}, nil
	case "add_maintenance_request":
		var req AddMaintenanceRequestParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		created, err := h.svc.AddMaintenanceRequest(ctx, store.NewMaintenanceRequest{
			ApartmentID: req.ApartmentID,
			Description: req.Description,
			Category:    req.Category,
			Priority:    req.Priority,
		})
		if err != nil {
			return nil, mapError(err)
		}
		return created, nil
	case "get_maintenance_suggestions":
		var req SuggestionsParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		res := h.svc.Suggest(ctx, req.Description)
		resp := SuggestionsResponse{Available: res.Available, Suggestions: res.Suggestions}
		if !res.Available {
			resp.Message = suggestionsUnavailableMessage
		}
		return resp, nil
	case "get_calendar_month":
		var req CalendarMonthParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		month, err := h.svc.CalendarMonth(req.Month, req.Nav)
		if err != nil {
			return nil, mapError(err)
		}
		return month, nil
	case "get_recent_activity":
		var req GetRecentActivityParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		opts := activity.ListActivityOptions{
			ActivityType: req.Type,
			Limit:        req.Limit,
			Offset:       req.Offset,
		}
		if req.EntityID != "" {
			opts.EntityID = &req.EntityID
		}
		entries, err := h.svc.RecentActivity(ctx, opts)
		if err != nil {
			return nil, mapError(err)
		}
		return ActivityResponse{Entries: entries}, nil
	default:
		return nil, fmt.Errorf("unknown method: %s", method)
	}
}

func (p UpdateApartmentParams) apply(apt *apartment.Apartment) {
	if p.Address != nil {
		apt.Address = *p.Address
	}
	if p.Unit != nil {
		apt.Unit = *p.Unit
	}
	if p.Occupancy != nil {
		apt.Occupancy = *p.Occupancy
	}
	if p.TenantID != nil {
		apt.TenantID = *p.TenantID
	}
	if p.RentStatus != nil {
		apt.RentStatus = *p.RentStatus
	}
	if p.RentAmount != nil {
		apt.RentAmount = *p.RentAmount
	}
}

func decodeParams(params json.RawMessage, out any) error {
	if len(params) == 0 {
		return nil
	}
	if err := json.Unmarshal(params, out); err != nil {
		return mapError(fmt.Errorf("%w: %v", ErrInvalidParams, err))
	}
	return nil
}
