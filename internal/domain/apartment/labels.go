package apartment

// UnknownLabel is shown for references to apartments that no longer exist.
const UnknownLabel = "Appartamento Sconosciuto"

var occupancyLabels = map[Occupancy]string{
	Occupied: "Occupato",
	Vacant:   "Sfitto",
}

var rentStatusLabels = map[RentStatus]string{
	RentPaid:    "Pagato",
	RentOverdue: "Scaduto",
	RentPending: "In attesa",
}

// Label returns the display text for o.
func (o Occupancy) Label() string {
	if label, ok := occupancyLabels[o]; ok {
		return label
	}
	return string(o)
}

// Label returns the display text for s.
func (s RentStatus) Label() string {
	if label, ok := rentStatusLabels[s]; ok {
		return label
	}
	return string(s)
}

// LabelFor resolves an apartment id to its display label, falling back to
// UnknownLabel for dangling references.
func LabelFor(apartments []Apartment, id string) string {
	if apt, ok := Find(apartments, id); ok {
		return apt.Label()
	}
	return UnknownLabel
}
