package domain

// Status is the order lifecycle state. Orders are created pending and make
// a single transition to completed or cancelled.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// legalTransitions lists the permitted status changes. Terminal states have
// no outgoing edges.
var legalTransitions = map[Status][]Status{
	StatusPending: {StatusCompleted, StatusCancelled},
}

// ParseStatus validates a caller-supplied status value.
func ParseStatus(value string) (Status, error) {
	switch s := Status(value); s {
	case StatusPending, StatusCompleted, StatusCancelled:
		return s, nil
	default:
		return "", ErrUnknownStatus
	}
}

// CanTransitionTo reports whether the change from s to target is legal.
func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range legalTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}
