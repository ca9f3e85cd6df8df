package tasks

import "strings"

// Priority is the urgency tag of a task. It has no effect on ordering.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// ParsePriority accepts low, medium or high in any letter case.
func ParsePriority(s string) (Priority, error) {
	switch p := Priority(strings.ToLower(s)); p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return p, nil
	default:
		return "", &InvalidPriorityError{Value: s}
	}
}

func (p Priority) String() string { return string(p) }

// Rank orders priorities for display: low < medium < high.
func (p Priority) Rank() int {
	switch p {
	case PriorityLow:
		return 0
	case PriorityMedium:
		return 1
	case PriorityHigh:
		return 2
	default:
		return -1
	}
}

// UnmarshalText normalises stored tokens, so "High" in a hand-edited file still loads.
func (p *Priority) UnmarshalText(b []byte) error {
	parsed, err := ParsePriority(string(b))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// MarshalText always writes the lowercase token.
func (p Priority) MarshalText() ([]byte, error) {
	return []byte(strings.ToLower(string(p))), nil
}
