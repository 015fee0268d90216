// Package seed provides the initial store content, either built in or read
// from a YAML file.
package seed

import (
	"errors"
	"fmt"
	"os"

	"cloud.google.com/go/civil"
	"github.com/ganot/landlord/internal/domain/apartment"
	"github.com/ganot/landlord/internal/domain/calendar"
	"github.com/ganot/landlord/internal/domain/document"
	"github.com/ganot/landlord/internal/domain/maintenance"
	"github.com/ganot/landlord/internal/domain/tenant"
	"github.com/ganot/landlord/internal/store"
	"gopkg.in/yaml.v3"
)

// ErrInvalidDate is returned when a seed date is not YYYY-MM-DD.
var ErrInvalidDate = errors.New("invalid date")

// Default returns the built-in seed: one vacant apartment and nothing else.
func Default() store.Seed {
	return store.Seed{
		Apartments: []apartment.Apartment{
			{
				ID:         "A1",
				Address:    "Piazzale Susa, 7",
				Unit:       "Int. 1",
				Occupancy:  apartment.Vacant,
				RentStatus: apartment.RentPending,
				RentAmount: 1440,
			},
		},
		Tenants:             []tenant.Tenant{},
		MaintenanceRequests: []maintenance.Request{},
		Documents:           []document.Document{},
		CalendarEvents:      []calendar.Event{},
	}
}

// Load returns the seed at path, or Default when path is empty.
func Load(path string) (store.Seed, error) {
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile reads a YAML seed file.
func LoadFile(path string) (store.Seed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return store.Seed{}, fmt.Errorf("failed to read seed file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML seed document.
func Parse(data []byte) (store.Seed, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return store.Seed{}, fmt.Errorf("failed to parse seed file: %w", err)
	}
	return f.toSeed()
}

type file struct {
	Apartments          []apartmentRecord   `yaml:"apartments"`
	Tenants             []tenantRecord      `yaml:"tenants"`
	MaintenanceRequests []maintenanceRecord `yaml:"maintenance_requests"`
	Documents           []documentRecord    `yaml:"documents"`
	CalendarEvents      []eventRecord       `yaml:"calendar_events"`
}

type apartmentRecord struct {
	ID         string  `yaml:"id"`
	Address    string  `yaml:"address"`
	Unit       string  `yaml:"unit"`
	Occupancy  string  `yaml:"occupancy"`
	TenantID   string  `yaml:"tenant_id"`
	RentStatus string  `yaml:"rent_status"`
	RentAmount float64 `yaml:"rent_amount"`
}

type tenantRecord struct {
	ID             string `yaml:"id"`
	Name           string `yaml:"name"`
	Email          string `yaml:"email"`
	Phone          string `yaml:"phone"`
	ApartmentID    string `yaml:"apartment_id"`
	LeaseStartDate string `yaml:"lease_start_date"`
	LeaseEndDate   string `yaml:"lease_end_date"`
}

type maintenanceRecord struct {
	ID          string `yaml:"id"`
	ApartmentID string `yaml:"apartment_id"`
	Description string `yaml:"description"`
	Category    string `yaml:"category"`
	Status      string `yaml:"status"`
	DateLogged  string `yaml:"date_logged"`
	Priority    string `yaml:"priority"`
}

type documentRecord struct {
	ID          string `yaml:"id"`
	ApartmentID string `yaml:"apartment_id"`
	Name        string `yaml:"name"`
	Type        string `yaml:"type"`
	UploadDate  string `yaml:"upload_date"`
	FileURL     string `yaml:"file_url"`
}

type eventRecord struct {
	ID    string `yaml:"id"`
	Date  string `yaml:"date"`
	Title string `yaml:"title"`
	Type  string `yaml:"type"`
}

func (f file) toSeed() (store.Seed, error) {
	s := store.Seed{
		Apartments:          make([]apartment.Apartment, 0, len(f.Apartments)),
		Tenants:             make([]tenant.Tenant, 0, len(f.Tenants)),
		MaintenanceRequests: make([]maintenance.Request, 0, len(f.MaintenanceRequests)),
		Documents:           make([]document.Document, 0, len(f.Documents)),
		CalendarEvents:      make([]calendar.Event, 0, len(f.CalendarEvents)),
	}

	for _, r := range f.Apartments {
		s.Apartments = append(s.Apartments, apartment.Apartment{
			ID:         r.ID,
			Address:    r.Address,
			Unit:       r.Unit,
			Occupancy:  apartment.Occupancy(r.Occupancy),
			TenantID:   r.TenantID,
			RentStatus: apartment.RentStatus(r.RentStatus),
			RentAmount: r.RentAmount,
		})
	}

	for _, r := range f.Tenants {
		start, err := parseDate("tenant "+r.ID, r.LeaseStartDate)
		if err != nil {
			return store.Seed{}, err
		}
		end, err := parseDate("tenant "+r.ID, r.LeaseEndDate)
		if err != nil {
			return store.Seed{}, err
		}
		s.Tenants = append(s.Tenants, tenant.Tenant{
			ID:             r.ID,
			Name:           r.Name,
			Email:          r.Email,
			Phone:          r.Phone,
			ApartmentID:    r.ApartmentID,
			LeaseStartDate: start,
			LeaseEndDate:   end,
		})
	}

	for _, r := range f.MaintenanceRequests {
		logged, err := parseDate("maintenance request "+r.ID, r.DateLogged)
		if err != nil {
			return store.Seed{}, err
		}
		req := maintenance.Request{
			ID:          r.ID,
			ApartmentID: r.ApartmentID,
			Description: r.Description,
			Category:    maintenance.Category(r.Category),
			Status:      maintenance.Status(r.Status),
			DateLogged:  logged,
			Priority:    maintenance.Priority(r.Priority),
		}
		if err := store.Validate(req); err != nil {
			return store.Seed{}, fmt.Errorf("maintenance request %q: %w", r.ID, err)
		}
		s.MaintenanceRequests = append(s.MaintenanceRequests, req)
	}

	for _, r := range f.Documents {
		uploaded, err := parseDate("document "+r.ID, r.UploadDate)
		if err != nil {
			return store.Seed{}, err
		}
		s.Documents = append(s.Documents, document.Document{
			ID:          r.ID,
			ApartmentID: r.ApartmentID,
			Name:        r.Name,
			Type:        document.Type(r.Type),
			UploadDate:  uploaded,
			FileURL:     r.FileURL,
		})
	}

	for _, r := range f.CalendarEvents {
		date, err := parseDate("calendar event "+r.ID, r.Date)
		if err != nil {
			return store.Seed{}, err
		}
		s.CalendarEvents = append(s.CalendarEvents, calendar.Event{
			ID:    r.ID,
			Date:  date,
			Title: r.Title,
			Type:  calendar.EventType(r.Type),
		})
	}

	return s, nil
}

func parseDate(owner, value string) (civil.Date, error) {
	d, err := civil.ParseDate(value)
	if err != nil {
		return civil.Date{}, fmt.Errorf("%s: %w: %q", owner, ErrInvalidDate, value)
	}
	return d, nil
}
