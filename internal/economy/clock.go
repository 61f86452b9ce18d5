package economy

import "time"

// Clock источник текущего времени, подменяется в тестах
type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }
