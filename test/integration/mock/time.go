package mock

import "time"

// Time is a clock that can be moved to a fixed instant and keeps ticking from there.
type Time struct {
	currentStartTime time.Time
	updatedAt        time.Time
}

func NewTime() *Time {
	now := time.Now().UTC()
	return &Time{
		currentStartTime: now,
		updatedAt:        now,
	}
}

func (t *Time) SetCurrentTime(currentTime time.Time) {
	t.currentStartTime = currentTime.UTC()
	t.updatedAt = time.Now()
}

func (t *Time) Now() time.Time {
	return t.currentStartTime.Add(time.Since(t.updatedAt))
}

// DaysAgo returns the mocked now shifted back by the given number of days.
func (t *Time) DaysAgo(days int) time.Time {
	return t.Now().AddDate(0, 0, -days)
}
