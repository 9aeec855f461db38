package errs

// Error taxonomy shared by every layer. Concrete sentinels are created with
// Sentinel so handlers can map them without knowing every case.
var (
	ErrValidation    = New("validation error")
	ErrNotFound      = New("entity not found")
	ErrStateConflict = New("state conflict")
	ErrUnauthorized  = New("actor not authorized")
	ErrUpstream      = New("upstream unavailable")
)

type sentinel struct {
	msg  string
	kind error
}

func (e *sentinel) Error() string { return e.msg }

// Is lets errors.Is(err, kind) succeed while sentinels of the same kind stay distinct.
func (e *sentinel) Is(target error) bool { return target == e.kind }

// Sentinel declares a package-level error belonging to one taxonomy kind.
func Sentinel(kind error, msg string) error {
	return &sentinel{msg: msg, kind: kind}
}

// Kind reports which taxonomy bucket err belongs to, or "" when none applies.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case Is(err, ErrValidation):
		return "validation"
	case Is(err, ErrNotFound):
		return "not_found"
	case Is(err, ErrStateConflict):
		return "state_conflict"
	case Is(err, ErrUnauthorized):
		return "unauthorized"
	case Is(err, ErrUpstream):
		return "upstream"
	default:
		return ""
	}
}
