package utils

import "time"

// Vietnam time location (ICT, +07:00)
var vnLoc = func() *time.Location {
	if loc, err := time.LoadLocation("Asia/Ho_Chi_Minh"); err == nil {
		return loc
	}
	return time.FixedZone("ICT", 7*3600)
}()

const dateLayout = "2006-01-02"

// ParseDate parses a "YYYY-MM-DD" trip start date. An empty string means
// the trip starts today in Vietnam time.
func ParseDate(s string) (time.Time, error) {
	if s == "" {
		now := time.Now().In(vnLoc)
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, vnLoc), nil
	}
	return time.ParseInLocation(dateLayout, s, vnLoc)
}

func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}

func NowUnixSeconds() int64 { return time.Now().Unix() }
