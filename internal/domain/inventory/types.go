package inventory

type Status string

const (
	StatusSelling  Status = "selling"
	StatusListing  Status = "listing"
	StatusApproved Status = "approved"
	StatusRetired  Status = "retired"
)

// transitions is the complete set of legal status moves. Anything absent is rejected.
var transitions = map[Status][]Status{
	StatusSelling:  {StatusListing, StatusRetired},
	StatusListing:  {StatusApproved, StatusRetired},
	StatusApproved: {StatusRetired},
	StatusRetired:  nil,
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusSelling, StatusListing, StatusApproved, StatusRetired:
		return true
	default:
		return false
	}
}

func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}
