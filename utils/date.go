package utils

import (
	"math"
	"time"

	"github.com/jinzhu/now"
)

// TotalDays số ngày sử dụng dịch vụ, làm tròn lên theo từng 24 giờ
func TotalDays(start, end time.Time) int {
	if !end.After(start) {
		return 0
	}
	return int(math.Ceil(end.Sub(start).Hours() / 24))
}

// DayBounds đầu và cuối ngày chứa t theo múi giờ loc
func DayBounds(t time.Time, loc *time.Location) (time.Time, time.Time) {
	n := now.New(t.In(loc))
	return n.BeginningOfDay(), n.EndOfDay()
}

func FormatDay(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("2006-01-02")
}
