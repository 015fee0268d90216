package mcp

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `landlord manages a small portfolio of rental apartments: apartments, tenants, maintenance requests, documents and calendar events.

Core concepts:
- Apartment: address + unit, occupancy (occupied/vacant), rent status (paid/overdue/pending), monthly rent, optional tenant.
- Maintenance request: a problem logged against an apartment with category, priority and status (new/in_progress/completed).
- Dashboard: occupancy rate, overdue rents and open maintenance computed from the current data.

Default workflow:
1) Orient: call get_dashboard (optionally with a filter).
2) Browse: list_apartments, list_tenants, list_documents, list_maintenance_requests, get_calendar_month.
3) Write: add_apartment, update_apartment, add_maintenance_request.
4) Troubleshoot: get_maintenance_suggestions returns available=false when the feature is off; tell the user instead of retrying.
5) Audit: get_recent_activity lists past writes, newest first.

Labels in results are Italian, as shown to the landlord.

Docs:
- landlord://docs/index
- landlord://docs/concepts
`

type docResource struct {
	URI         string
	Name        string
	Title       string
	Description string
	Content     string
}

var docResources = []docResource{
	{
		URI:         "landlord://docs/index",
		Name:        "docs_index",
		Title:       "landlord docs index",
		Description: "Entry point: available tools and what to read next.",
		Content: `# landlord: Agent Docs Index

## Quick start

1. ` + "`get_dashboard`" + ` for headline figures and the apartment list.
2. ` + "`list_maintenance_requests`" + ` with ` + "`status`" + ` to see open work.
3. ` + "`add_maintenance_request`" + ` to log a new problem; it is dated today with status ` + "`new`" + `.
4. ` + "`get_calendar_month`" + ` with ` + "`month`" + ` (YYYY-MM) and optional ` + "`nav`" + ` (prev/next).

## Filters

- Apartments: ` + "`all`" + `, ` + "`occupied`" + `, ` + "`vacant`" + `, ` + "`overdue`" + `, ` + "`maintenance`" + `.
- Maintenance: ` + "`all`" + `, ` + "`new`" + `, ` + "`in_progress`" + `, ` + "`completed`" + `.

Unknown filter values select everything.

## Limitations

- Data lives in memory and resets when the server restarts.
- ` + "`update_apartment`" + ` does not change the tenant's own record.
`,
	},
	{
		URI:         "landlord://docs/concepts",
		Name:        "docs_concepts",
		Title:       "landlord concepts",
		Description: "Glossary and rules behind the derived figures.",
		Content: `# Concepts

## Derived figures

- Occupancy rate: occupied apartments over all apartments, rounded to a whole percent. Zero when there are no apartments.
- Overdue rents: apartments whose rent status is ` + "`overdue`" + `.
- Open maintenance: requests that are not ` + "`completed`" + `.
- An apartment is "in maintenance" when it has at least one request that is not completed.

## Identifiers

- New apartments get an ` + "`A-`" + ` prefixed id and start vacant, pending, with no tenant.
- New maintenance requests get an ` + "`MNT-`" + ` prefixed id and appear first in listings.

## Missing references

Rows keep rendering when a referenced apartment or tenant is missing: the tenant column reads "Non assegnato" and the apartment column reads "Appartamento Sconosciuto".

## Errors

Tool errors carry a JSON body with ` + "`code`" + ` (` + "`APARTMENT_NOT_FOUND`" + `, ` + "`INVALID_INPUT`" + `, ` + "`INTERNAL`" + `), ` + "`message`" + ` and an optional ` + "`recovery_hint`" + `.
`,
	},
}

func registerDocResources(server *sdkmcp.Server) {
	for _, doc := range docResources {
		server.AddResource(&sdkmcp.Resource{
			URI:         doc.URI,
			Name:        doc.Name,
			Title:       doc.Title,
			Description: doc.Description,
			MIMEType:    "text/markdown",
			Size:        int64(len(doc.Content)),
		}, func(_ context.Context, req *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
			uri := doc.URI
			if req != nil && req.Params != nil && req.Params.URI != "" {
				uri = req.Params.URI
			}
			return &sdkmcp.ReadResourceResult{
				Contents: []*sdkmcp.ResourceContents{{
					URI:      uri,
					MIMEType: "text/markdown",
					Text:     doc.Content,
				}},
			}, nil
		})
	}
}
