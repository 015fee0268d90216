package document

import "cloud.google.com/go/civil"

// Type classifies an archived document.
type Type string

const (
	TypeContract Type = "contract"
	TypeInvoice  Type = "invoice"
	TypeReceipt  Type = "receipt"
	TypeOther    Type = "other"
)

var typeLabels = map[Type]string{
	TypeContract: "Contratto",
	TypeInvoice:  "Fattura",
	TypeReceipt:  "Ricevuta",
	TypeOther:    "Altro",
}

// Valid reports whether t is a known document type.
func (t Type) Valid() bool {
	_, ok := typeLabels[t]
	return ok
}

// Label returns the display text for t.
func (t Type) Label() string {
	if label, ok := typeLabels[t]; ok {
		return label
	}
	return string(t)
}

// Document is a file attached to an apartment. FileURL is an opaque
// reference; the file itself is never fetched or stored here.
type Document struct {
	ID          string     `json:"id"`
	ApartmentID string     `json:"apartment_id"`
	Name        string     `json:"name"`
	Type        Type       `json:"type"`
	UploadDate  civil.Date `json:"upload_date"`
	FileURL     string     `json:"file_url"`
}
