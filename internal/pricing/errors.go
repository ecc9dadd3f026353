package pricing

import "errors"

var (
	ErrUnsupportedActivity  = errors.New("no rate table configured for activity")
	ErrInvalidAddOnDuration = errors.New("invalid party area duration")
)
