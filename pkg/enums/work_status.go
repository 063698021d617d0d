package enums

import "fmt"

// WorkStatus describes the allowed values for the `status` column in work_orders.
type WorkStatus string

const (
	WorkStatusPending   WorkStatus = "pending"
	WorkStatusScheduled WorkStatus = "scheduled"
	WorkStatusCompleted WorkStatus = "completed"
)

var validWorkStatuses = []WorkStatus{
	WorkStatusPending,
	WorkStatusScheduled,
	WorkStatusCompleted,
}

// IsValid reports whether the value matches the canonical work status enum.
func (s WorkStatus) IsValid() bool {
	for _, candidate := range validWorkStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseWorkStatus converts the raw string to WorkStatus.
func ParseWorkStatus(value string) (WorkStatus, error) {
	for _, candidate := range validWorkStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid work status %q", value)
}
