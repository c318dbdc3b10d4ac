package request

// RequestStatus is the string lifecycle state of a request. The legacy
// MyStatus integer runs in parallel; CodeForStatus/StatusForCode define the
// canonical pairing between the two.
type RequestStatus string

const (
	StatusPending   RequestStatus = "pending"
	StatusAssigned  RequestStatus = "assigned"
	StatusInTransit RequestStatus = "in_transit"
	StatusCompleted RequestStatus = "completed"
)

// Numeric progress codes paired with the statuses above.
const (
	CodePending   = 0
	CodeAssigned  = 1
	CodeInTransit = 2
	CodeCompleted = 3
)

func (rs RequestStatus) String() string {
	return string(rs)
}

func (rs RequestStatus) IsValid() bool {
	switch rs {
	case StatusPending, StatusAssigned, StatusInTransit, StatusCompleted:
		return true
	default:
		return false
	}
}

// IsCompleted returns true if the status denotes a finished run.
func (rs RequestStatus) IsCompleted() bool {
	return rs == StatusCompleted
}

// Code returns the numeric progress code paired with the status.
func (rs RequestStatus) Code() int {
	switch rs {
	case StatusAssigned:
		return CodeAssigned
	case StatusInTransit:
		return CodeInTransit
	case StatusCompleted:
		return CodeCompleted
	default:
		return CodePending
	}
}

// StatusForCode returns the status paired with a numeric progress code.
// The second return is false for codes outside the known set.
func StatusForCode(code int) (RequestStatus, bool) {
	switch code {
	case CodePending:
		return StatusPending, true
	case CodeAssigned:
		return StatusAssigned, true
	case CodeInTransit:
		return StatusInTransit, true
	case CodeCompleted:
		return StatusCompleted, true
	default:
		return "", false
	}
}

// IsCanonicalPair reports whether a status string and progress code form the
// documented pairing. Writes that break the pairing are accepted but logged
// as a data-integrity warning by the store.
func IsCanonicalPair(status string, code int) bool {
	rs := RequestStatus(status)
	if !rs.IsValid() {
		return false
	}
	return rs.Code() == code
}

// GetAllStatuses returns all valid request statuses.
func GetAllStatuses() []RequestStatus {
	return []RequestStatus{
		StatusPending,
		StatusAssigned,
		StatusInTransit,
		StatusCompleted,
	}
}

// Valid priorities for a request.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

func IsValidPriority(p string) bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}
