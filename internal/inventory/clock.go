package inventory

import "time"

// Clock supplies the timestamps written on products and transactions.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}
