package utils

import (
	"fmt"
	"time"
)

// dateLayout is the wire format for all dates: DD-MM-YYYY.
const dateLayout = "02-01-2006"

// kolkata is loaded once; every date in the system is a calendar day in
// Asia/Kolkata regardless of server timezone.
var kolkata = mustLoadKolkata()

func mustLoadKolkata() *time.Location {
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		// IST has no DST; a fixed offset is equivalent when tzdata is absent.
		return time.FixedZone("IST", 5*3600+30*60)
	}
	return loc
}

// Kolkata returns the Asia/Kolkata location.
func Kolkata() *time.Location {
	return kolkata
}

// TodayKolkata returns midnight of the current Asia/Kolkata calendar day.
func TodayKolkata() time.Time {
	now := time.Now().In(kolkata)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, kolkata)
}

// ParseDate parses a DD-MM-YYYY string into a Kolkata calendar day.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(dateLayout, s, kolkata)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected DD-MM-YYYY: %w", s, err)
	}
	return t, nil
}

// FormatDate renders a time as its Asia/Kolkata calendar day in DD-MM-YYYY.
func FormatDate(t time.Time) string {
	return t.In(kolkata).Format(dateLayout)
}
