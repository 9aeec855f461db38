package request

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusIgnored  Status = "ignored"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusIgnored:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether the status can never change again.
func (s Status) IsTerminal() bool {
	return s == StatusApproved || s == StatusIgnored
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}
