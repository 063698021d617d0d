package enums

import "fmt"

// WorkType groups work orders for display; the engine never branches on it.
type WorkType string

const (
	WorkTypeInstallation WorkType = "installation"
	WorkTypeReview       WorkType = "review"
	WorkTypeOther        WorkType = "other"
)

var validWorkTypes = []WorkType{
	WorkTypeInstallation,
	WorkTypeReview,
	WorkTypeOther,
}

// IsValid reports whether the value matches the canonical work type enum.
func (t WorkType) IsValid() bool {
	for _, candidate := range validWorkTypes {
		if candidate == t {
			return true
		}
	}
	return false
}

// ParseWorkType converts the raw string to WorkType.
func ParseWorkType(value string) (WorkType, error) {
	for _, candidate := range validWorkTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid work type %q", value)
}
