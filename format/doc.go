// Package format renders the values financial tables keep printing: dates
// in strftime patterns, numbers with thousands separators, large magnitudes
// with K/M/B/T suffixes, and structs or maps as one-line {key=value, ...}
// summaries.
//
// ParseDate normalizes the date shapes that show up around market data
// (layout strings, epoch seconds, time.Time) and Date renders them:
//
//	format.Date("2018-12", "")          // 2018-12-01
//	format.Date("2018-12-31", "%Y%m%d") // 20181231
//
// Number accepts ints, floats, and decimal.Decimal, so money amounts keep
// their precision on the way to a report:
//
//	format.Number(decimal.NewFromFloat(1234567.891), 2) // 1,234,567.89
package format
