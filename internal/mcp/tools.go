package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// ToolDefinition describes a callable tool
type ToolDefinition struct {
	Name        string
	Description string
	InputSchema map[string]any
}

func stringProp(description string, enum ...string) map[string]any {
	prop := map[string]any{
		"type":        "string",
		"description": description,
	}
	if len(enum) > 0 {
		prop["enum"] = enum
	}
	return prop
}

func object(properties map[string]any, required ...string) map[string]any {
	schema := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

var (
	apartmentFilters   = []string{"all", "occupied", "vacant", "overdue", "maintenance"}
	maintenanceFilters = []string{"all", "new", "in_progress", "completed"}
	categories         = []string{"plumbing", "electricity", "appliance", "structural", "general"}
	priorities         = []string{"low", "medium", "high"}
)

// buildToolCatalog returns all available MCP tools
func buildToolCatalog() []ToolDefinition {
	return []ToolDefinition{
		// Dashboard
		{
			Name:        "get_dashboard",
			Description: "Get headline figures (occupancy rate, overdue rents, open maintenance) and the filtered apartment list",
			InputSchema: object(map[string]any{
				"filter": stringProp("Apartment filter (unknown values select all)", apartmentFilters...),
			}),
		},

		// Apartments
		{
			Name:        "list_apartments",
			Description: "List apartments with tenant name, status labels and an active-maintenance flag",
			InputSchema: object(map[string]any{
				"filter": stringProp("Apartment filter (unknown values select all)", apartmentFilters...),
			}),
		},
		{
			Name:        "add_apartment",
			Description: "Add a new apartment. It starts vacant, with rent pending and no tenant",
			InputSchema: object(map[string]any{
				"address": stringProp("Street address"),
				"unit":    stringProp("Unit within the building, e.g. Int. 1"),
				"rent_amount": map[string]any{
					"type":        "number",
					"minimum":     0,
					"description": "Monthly rent",
				},
			}, "address", "unit"),
		},
		{
			Name:        "update_apartment",
			Description: "Replace an apartment's fields. Omitted fields keep their current value",
			InputSchema: object(map[string]any{
				"id":          stringProp("Apartment ID"),
				"address":     stringProp("Street address"),
				"unit":        stringProp("Unit within the building"),
				"occupancy":   stringProp("Occupancy", "occupied", "vacant"),
				"tenant_id":   stringProp("Tenant ID (empty string clears it)"),
				"rent_status": stringProp("Rent status", "paid", "overdue", "pending"),
				"rent_amount": map[string]any{
					"type":        "number",
					"minimum":     0,
					"description": "Monthly rent",
				},
			}, "id"),
		},

		// Tenants and documents
		{
			Name:        "list_tenants",
			Description: "List tenants with lease dates and the apartment they rent",
			InputSchema: object(map[string]any{}),
		},
		{
			Name:        "list_documents",
			Description: "List archived documents (contracts, invoices, receipts)",
			InputSchema: object(map[string]any{}),
		},

		// Maintenance
		{
			Name:        "list_maintenance_requests",
			Description: "List maintenance requests, newest first",
			InputSchema: object(map[string]any{
				"status": stringProp("Status filter (unknown values select all)", maintenanceFilters...),
			}),
		},
		{
			Name:        "add_maintenance_request",
			Description: "Log a new maintenance request dated today with status new",
			InputSchema: object(map[string]any{
				"apartment_id": stringProp("Apartment ID"),
				"description":  stringProp("Problem description"),
				"category":     stringProp("Category (default general)", categories...),
				"priority":     stringProp("Priority (default medium)", priorities...),
			}, "apartment_id", "description"),
		},
		{
			Name:        "get_maintenance_suggestions",
			Description: "Ask for 3-4 simple troubleshooting steps in Italian. Returns available=false when the feature is off or fails",
			InputSchema: object(map[string]any{
				"description": stringProp("Problem description"),
			}, "description"),
		},

		// Calendar
		{
			Name:        "get_calendar_month",
			Description: "Get a month grid with events bucketed by day and public holidays",
			InputSchema: object(map[string]any{
				"month": stringProp("Month as YYYY-MM (omit for the current month)"),
				"nav":   stringProp("Move one month from the given month", "prev", "next"),
			}),
		},

		// Activity
		{
			Name:        "get_recent_activity",
			Description: "Get recent mutations (apartments added or updated, maintenance logged), newest first",
			InputSchema: object(map[string]any{
				"entity_id": stringProp("Apartment or maintenance request ID to filter by"),
				"type":      stringProp("Activity type to filter by", "apartment_added", "apartment_updated", "maintenance_logged"),
				"limit": map[string]any{
					"type":        "integer",
					"description": "Maximum number of entries (default 50)",
				},
				"offset": map[string]any{
					"type":        "integer",
					"description": "Offset for pagination",
				},
			}),
		},
	}
}

// registerTools adds every catalog tool to server, dispatching calls to h.
func registerTools(server *sdkmcp.Server, h *Handler, logger *slog.Logger) {
	for _, def := range buildToolCatalog() {
		name := def.Name
		server.AddTool(&sdkmcp.Tool{
			Name:        name,
			Description: def.Description,
			InputSchema: def.InputSchema,
		}, func(ctx context.Context, req *sdkmcp.CallToolRequest) (*sdkmcp.CallToolResult, error) {
			var args json.RawMessage
			if req != nil && req.Params != nil {
				args = req.Params.Arguments
			}
			result, err := h.Handle(ctx, name, args)
			if err != nil {
				return errorResult(logger, name, err), nil
			}
			return jsonResult(result)
		})
	}
}

func jsonResult(v any) (*sdkmcp.CallToolResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return &sdkmcp.CallToolResult{
		Content: []sdkmcp.Content{&sdkmcp.TextContent{Text: string(data)}},
	}, nil
}

func errorResult(logger *slog.Logger, tool string, err error) *sdkmcp.CallToolResult {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		if logger != nil {
			logger.Error("tool call failed", "tool", tool, "error", err)
		}
		apiErr = &APIError{Code: "INTERNAL", Message: err.Error()}
	}
	data, _ := json.Marshal(apiErr)
	return &sdkmcp.CallToolResult{
		IsError: true,
		Content: []sdkmcp.Content{&sdkmcp.TextContent{Text: string(data)}},
	}
}
