package enums

import "fmt"

// TourStatus maps to the tour_status enum in Postgres.
type TourStatus string

const (
	TourStatusPending   TourStatus = "pending"
	TourStatusConfirmed TourStatus = "confirmed"
	TourStatusCancelled TourStatus = "cancelled"
)

var validTourStatuses = []TourStatus{
	TourStatusPending,
	TourStatusConfirmed,
	TourStatusCancelled,
}

// IsValid reports whether the value matches the canonical tour_status enum.
func (t TourStatus) IsValid() bool {
	for _, candidate := range validTourStatuses {
		if candidate == t {
			return true
		}
	}
	return false
}

// ParseTourStatus converts raw input into a TourStatus.
func ParseTourStatus(value string) (TourStatus, error) {
	for _, candidate := range validTourStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid tour status %q", value)
}
