package maintenance

var statusLabels = map[Status]string{
	StatusNew:        "Nuova",
	StatusInProgress: "In corso",
	StatusCompleted:  "Completata",
}

var categoryLabels = map[Category]string{
	CategoryPlumbing:    "Idraulica",
	CategoryElectricity: "Elettricità",
	CategoryAppliance:   "Elettrodomestici",
	CategoryStructural:  "Strutturale",
	CategoryGeneral:     "Generale",
}

var priorityLabels = map[Priority]string{
	PriorityLow:    "Bassa",
	PriorityMedium: "Media",
	PriorityHigh:   "Alta",
}

// Label returns the display text for s.
func (s Status) Label() string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return string(s)
}

// Label returns the display text for c.
func (c Category) Label() string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return string(c)
}

// Label returns the display text for p.
func (p Priority) Label() string {
	if label, ok := priorityLabels[p]; ok {
		return label
	}
	return string(p)
}
