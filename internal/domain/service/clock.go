package service

import "time"

// Clock supplies the current time to date-dependent rules.
type Clock interface {
	Now() time.Time
}
