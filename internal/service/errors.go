package service

import "errors"

// Error kinds surfaced by the announcement operations. The HTTP layer maps
// each to its own status; messages match what callers of the management UI
// already expect.
var (
	ErrNoCredentials  = errors.New("Authentication required for this action")
	ErrUnknownTeacher = errors.New("Invalid teacher credentials")
	ErrNotFound       = errors.New("Announcement not found")
)

// InvalidArgument reports malformed caller input: empty message, unparsable
// date, non-future expiration on create, start not before expiration, or a
// malformed id.
type InvalidArgument struct {
	Reason string
}

func (e *InvalidArgument) Error() string { return e.Reason }

func invalidArg(reason string) error { return &InvalidArgument{Reason: reason} }

// IsInvalidArgument reports whether err is an InvalidArgument.
func IsInvalidArgument(err error) bool {
	var ia *InvalidArgument
	return errors.As(err, &ia)
}
