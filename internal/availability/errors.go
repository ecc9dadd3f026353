package availability

import "errors"

var (
	ErrInvalidPartySize = errors.New("invalid party size")
	ErrInvalidDuration  = errors.New("invalid duration")
	ErrInvalidActivity  = errors.New("invalid activity")
	ErrInvalidAddOn     = errors.New("invalid party-area add-on")
)
