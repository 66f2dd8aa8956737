package staff

import "errors"

var ErrInactiveOrUnknown = errors.New("staff not found or inactive")
