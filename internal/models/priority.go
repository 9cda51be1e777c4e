package models

// Priority is an issue's priority level as the backend encodes it.
type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
)

// Priorities lists priorities from least to most urgent.
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

// ParsePriority maps a wire value to a Priority.
func ParsePriority(s string) (Priority, bool) {
	switch Priority(s) {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return Priority(s), true
	}
	return "", false
}

// Label returns the human-readable priority name.
func (p Priority) Label() string {
	switch p {
	case PriorityLow:
		return "Low"
	case PriorityMedium:
		return "Medium"
	case PriorityHigh:
		return "High"
	}
	return string(p)
}

// Color returns the hex color used when rendering the priority on a card.
func (p Priority) Color() string {
	switch p {
	case PriorityLow:
		return "#7BC96F"
	case PriorityMedium:
		return "#E5C07B"
	case PriorityHigh:
		return "#E06C75"
	}
	return "#ABB2BF"
}
