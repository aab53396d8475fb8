package usecases

import "time"

// nowFunc lets tests pin the timestamp used for parent touches.
type nowFunc func() time.Time

func defaultNow() time.Time {
	return time.Now()
}
