package format

import (
	"fmt"
	"math"
	"time"

	"github.com/ncruces/go-strftime"
)

// DatePattern is the default strftime pattern used by Date.
const DatePattern = "%Y-%m-%d"

// dateLayouts are tried in order by ParseDate. Ambiguous slash dates
// resolve as month/day/year first; bare months and years parse to the
// first day of the period.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006/01/02",
	"01/02/2006",
	"02/01/2006",
	"20060102",
	"2006-01",
	"2006",
}

// ParseDate normalizes the date representations that show up around
// financial data: time.Time passes through, strings try the known layouts,
// and numbers count epoch seconds.
func ParseDate(v any) (time.Time, error) {
	switch d := v.(type) {
	case time.Time:
		return d, nil
	case string:
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, d); err == nil {
				return t, nil
			}
		}
		return time.Time{}, fmt.Errorf("unable to parse date: %s", d)
	case int:
		return time.Unix(int64(d), 0).UTC(), nil
	case int64:
		return time.Unix(d, 0).UTC(), nil
	case float64:
		sec, frac := math.Modf(d)
		return time.Unix(int64(sec), int64(frac*float64(time.Second))).UTC(), nil
	}
	return time.Time{}, fmt.Errorf("unable to parse date: unsupported type %T", v)
}

// Date renders any representation ParseDate accepts with a strftime
// pattern, DatePattern when empty.
//
//	Date("2018-12", "")          // 2018-12-01
//	Date("2018-12-31", "%Y%m%d") // 20181231
func Date(v any, pattern string) (string, error) {
	t, err := ParseDate(v)
	if err != nil {
		return "", err
	}
	if pattern == "" {
		pattern = DatePattern
	}
	return strftime.Format(pattern, t), nil
}
