package transport_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/ganot/landlord/internal/app"
	"github.com/ganot/landlord/internal/domain/activity"
	"github.com/ganot/landlord/internal/domain/apartment"
	"github.com/ganot/landlord/internal/domain/calendar"
	"github.com/ganot/landlord/internal/domain/maintenance"
	"github.com/ganot/landlord/internal/suggestion"
	"github.com/ganot/landlord/internal/testserver"
	"github.com/ganot/landlord/internal/transport"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"
)

func doJSON(t *testing.T, ts *testserver.TestServer, method, path string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(b)
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, ts.URL(path), reader)
	require.NoError(t, err)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestHealth(t *testing.T) {
	ts := testserver.New(t)

	resp := doJSON(t, ts, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, "ok", string(body))
}

func TestDashboard(t *testing.T) {
	ts := testserver.New(t)

	resp := doJSON(t, ts, http.MethodGet, "/api/dashboard", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	d := decode[app.Dashboard](t, resp)
	require.Equal(t, 1, d.Summary.TotalProperties)
	require.Equal(t, "0%", d.Summary.OccupancyRateLabel)
	require.Len(t, d.Apartments, 1)
	require.Equal(t, "Non assegnato", d.Apartments[0].TenantName)

	resp = doJSON(t, ts, http.MethodGet, "/api/dashboard?filter=bogus", nil)
	d = decode[app.Dashboard](t, resp)
	require.Equal(t, apartment.FilterAll, d.Filter)
	require.Len(t, d.Apartments, 1)
}

func TestApartmentLifecycle(t *testing.T) {
	ts := testserver.New(t)

	resp := doJSON(t, ts, http.MethodPost, "/api/apartments", map[string]any{
		"address":     "Via Po 3",
		"unit":        "Int. 5",
		"rent_amount": 800,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	apt := decode[apartment.Apartment](t, resp)
	require.True(t, strings.HasPrefix(apt.ID, "A-"))
	require.Equal(t, apartment.Vacant, apt.Occupancy)

	apt.Occupancy = apartment.Occupied
	apt.RentStatus = apartment.RentOverdue
	resp = doJSON(t, ts, http.MethodPut, "/api/apartments/"+apt.ID, apt)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, ts, http.MethodGet, "/api/apartments?filter=overdue", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decode[struct {
		Filter     apartment.Filter `json:"filter"`
		Apartments []struct {
			ID              string `json:"id"`
			RentStatusLabel string `json:"rent_status_label"`
		} `json:"apartments"`
	}](t, resp)
	require.Equal(t, apartment.FilterOverdue, list.Filter)
	require.Len(t, list.Apartments, 1)
	require.Equal(t, apt.ID, list.Apartments[0].ID)
	require.Equal(t, "Scaduto", list.Apartments[0].RentStatusLabel)

	resp = doJSON(t, ts, http.MethodGet, "/api/activity?entity_id="+apt.ID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	entries := decode[struct {
		Entries []activity.ActivityEntry `json:"entries"`
	}](t, resp).Entries
	require.Len(t, entries, 2)
	require.Equal(t, activity.TypeApartmentUpdated, entries[0].ActivityType)
}

func TestApartmentErrors(t *testing.T) {
	ts := testserver.New(t)

	tests := []struct {
		name   string
		method string
		path   string
		body   any
		status int
		code   string
	}{
		{"blank address", http.MethodPost, "/api/apartments", map[string]any{"address": " ", "unit": "Int. 1"}, http.StatusBadRequest, transport.CodeInvalidInput},
		{"negative rent", http.MethodPost, "/api/apartments", map[string]any{"address": "Via Po", "unit": "1", "rent_amount": -1}, http.StatusBadRequest, transport.CodeInvalidInput},
		{"malformed body", http.MethodPost, "/api/apartments", `{"address":`, http.StatusBadRequest, transport.CodeInvalidInput},
		{"unknown id", http.MethodPut, "/api/apartments/nope", map[string]any{
			"id": "nope", "address": "Via Po", "unit": "1", "occupancy": "vacant", "rent_status": "paid",
		}, http.StatusNotFound, transport.CodeApartmentNotFound},
		{"id mismatch", http.MethodPut, "/api/apartments/A1", map[string]any{
			"id": "A2", "address": "Via Po", "unit": "1", "occupancy": "vacant", "rent_status": "paid",
		}, http.StatusBadRequest, transport.CodeInvalidInput},
		{"bad occupancy", http.MethodPut, "/api/apartments/A1", map[string]any{
			"address": "Via Po", "unit": "1", "occupancy": "sold", "rent_status": "paid",
		}, http.StatusBadRequest, transport.CodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := doJSON(t, ts, tt.method, tt.path, tt.body)
			require.Equal(t, tt.status, resp.StatusCode)
			body := decode[transport.ErrorBody](t, resp)
			require.Equal(t, tt.code, body.Error.Code)
			require.NotEmpty(t, body.Error.Message)
		})
	}

	version := ts.Store.Snapshot().Version()
	require.Zero(t, version)
}

func TestMaintenance(t *testing.T) {
	ts := testserver.New(t)

	for _, desc := range []string{"Perdita lavandino", "Presa bruciata"} {
		resp := doJSON(t, ts, http.MethodPost, "/api/maintenance", map[string]any{
			"apartment_id": "A1",
			"description":  desc,
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		created := decode[maintenance.Request](t, resp)
		require.Equal(t, maintenance.StatusNew, created.Status)
		require.Equal(t, maintenance.CategoryGeneral, created.Category)
		require.Equal(t, "2026-10-15", created.DateLogged.String())
	}

	resp := doJSON(t, ts, http.MethodGet, "/api/maintenance?status=new", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decode[struct {
		Status   maintenance.StatusFilter `json:"status"`
		Requests []struct {
			Description    string `json:"description"`
			ApartmentLabel string `json:"apartment_label"`
			StatusLabel    string `json:"status_label"`
		} `json:"requests"`
	}](t, resp)
	require.Len(t, list.Requests, 2)
	require.Equal(t, "Presa bruciata", list.Requests[0].Description)
	require.Equal(t, "Piazzale Susa, 7, Int. 1", list.Requests[0].ApartmentLabel)

	resp = doJSON(t, ts, http.MethodGet, "/api/maintenance?status=completed", nil)
	list.Requests = nil
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	require.Empty(t, list.Requests)

	resp = doJSON(t, ts, http.MethodPost, "/api/maintenance", map[string]any{
		"apartment_id": "A1",
		"description":  "",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, ts, http.MethodGet, "/api/dashboard", nil)
	d := decode[app.Dashboard](t, resp)
	require.Equal(t, 2, d.Summary.OpenMaintenance)
	require.True(t, d.Apartments[0].ActiveMaintenance)
}

type fixedGateway struct {
	result suggestion.Result
}

func (g fixedGateway) Suggest(context.Context, string) suggestion.Result {
	return g.result
}

func TestSuggestions(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		ts := testserver.New(t)

		resp := doJSON(t, ts, http.MethodPost, "/api/maintenance/suggestions", map[string]any{"description": "Caldaia"})
		require.Equal(t, http.StatusOK, resp.StatusCode)
		res := decode[suggestion.Result](t, resp)
		require.False(t, res.Available)
		require.Empty(t, res.Suggestions)
	})

	t.Run("enabled", func(t *testing.T) {
		ts := testserver.New(t, testserver.WithSuggestions(fixedGateway{
			result: suggestion.Result{Available: true, Suggestions: []string{"Riavvia la caldaia", "Controlla il gas"}},
		}))

		resp := doJSON(t, ts, http.MethodPost, "/api/maintenance/suggestions", map[string]any{"description": "Caldaia"})
		require.Equal(t, http.StatusOK, resp.StatusCode)
		res := decode[suggestion.Result](t, resp)
		require.True(t, res.Available)
		require.Len(t, res.Suggestions, 2)

		resp = doJSON(t, ts, http.MethodGet, "/metrics", nil)
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		require.Contains(t, string(body), `landlord_suggestion_requests_total{outcome="available"} 1`)
	})
}

func TestCalendar(t *testing.T) {
	ts := testserver.New(t)

	resp := doJSON(t, ts, http.MethodGet, "/api/calendar?month=2026-12", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	month := decode[calendar.Month](t, resp)
	require.Equal(t, "dicembre 2026", month.Label)
	require.Len(t, month.Days, 31)

	resp = doJSON(t, ts, http.MethodGet, "/api/calendar", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "ottobre 2026", decode[calendar.Month](t, resp).Label)

	for _, path := range []string{"/api/calendar?month=2026-13", "/api/calendar?month=2026-01&nav=sideways"} {
		resp = doJSON(t, ts, http.MethodGet, path, nil)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode, path)
		require.Equal(t, transport.CodeInvalidInput, decode[transport.ErrorBody](t, resp).Error.Code)
	}
}

func TestActivityQueryValidation(t *testing.T) {
	ts := testserver.New(t)

	resp := doJSON(t, ts, http.MethodGet, "/api/activity?limit=-1", nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, ts, http.MethodGet, "/api/activity?type=bogus", nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, ts, http.MethodGet, "/api/activity", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Empty(t, decode[struct {
		Entries []activity.ActivityEntry `json:"entries"`
	}](t, resp).Entries)
}

func TestCORS(t *testing.T) {
	ts := testserver.New(t)

	req, err := http.NewRequest(http.MethodGet, ts.URL("/api/dashboard"), nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://localhost:5173")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestMCPOverHTTP(t *testing.T) {
	ts := testserver.New(t)
	ctx := context.Background()

	client := sdkmcp.NewClient(&sdkmcp.Implementation{Name: "test-client", Version: "1.0.0"}, nil)
	cs, err := client.Connect(ctx, &sdkmcp.StreamableClientTransport{Endpoint: ts.URL("/mcp")}, nil)
	require.NoError(t, err)
	defer cs.Close()

	res, err := cs.CallTool(ctx, &sdkmcp.CallToolParams{
		Name:      "add_maintenance_request",
		Arguments: map[string]any{"apartment_id": "A1", "description": "Finestra rotta", "category": "structural"},
	})
	require.NoError(t, err)
	require.False(t, res.IsError)

	rows := ts.Service.MaintenanceRequests("")
	require.Len(t, rows, 1)
	require.Equal(t, "Strutturale", rows[0].CategoryLabel)
}
