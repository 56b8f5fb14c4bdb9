package clock

import "time"

// UTC отдаёт текущее время сервера в UTC.
type UTC struct{}

func New() *UTC {
	return &UTC{}
}

func (UTC) Now() time.Time {
	return time.Now().UTC()
}
