package format

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// Number renders a numeric value with thousands separators and a fixed
// count of decimals. Integer kinds stay exact at any width; floats and
// decimal values round half away from zero, the usual convention for
// money amounts.
func Number(v any, decimals int) (string, error) {
	if decimals < 0 {
		decimals = 0
	}
	switch n := v.(type) {
	case decimal.Decimal:
		return groupFixed(n.StringFixed(int32(decimals))), nil
	case float64:
		return humanize.FormatFloat(floatPattern(decimals), n), nil
	case float32:
		return humanize.FormatFloat(floatPattern(decimals), float64(n)), nil
	case int:
		return commaInt(int64(n), decimals), nil
	case int32:
		return commaInt(int64(n), decimals), nil
	case int64:
		return commaInt(n, decimals), nil
	case uint:
		return commaUint(uint64(n), decimals), nil
	case uint32:
		return commaInt(int64(n), decimals), nil
	case uint64:
		return commaUint(n, decimals), nil
	}
	return "", fmt.Errorf("format number: unsupported type %T", v)
}

// Abbrev shortens large magnitudes with the market-page suffixes K, M, B,
// and T. Values under a thousand render as plain fixed-point numbers.
func Abbrev(v float64, decimals int) string {
	abs := math.Abs(v)
	switch {
	case abs >= 1e12:
		return strconv.FormatFloat(v/1e12, 'f', decimals, 64) + "T"
	case abs >= 1e9:
		return strconv.FormatFloat(v/1e9, 'f', decimals, 64) + "B"
	case abs >= 1e6:
		return strconv.FormatFloat(v/1e6, 'f', decimals, 64) + "M"
	case abs >= 1e3:
		return strconv.FormatFloat(v/1e3, 'f', decimals, 64) + "K"
	}
	return strconv.FormatFloat(v, 'f', decimals, 64)
}

// Percent renders a ratio as a percentage: Percent(0.0523, 2) is 5.23%.
func Percent(v float64, decimals int) string {
	return humanize.FormatFloat(floatPattern(decimals), v*100) + "%"
}

// floatPattern builds a humanize format with comma grouping and the given
// precision. The trailing dot keeps the comma as the grouping separator
// even at zero precision. Precision stays within humanize's rounding
// table, eight decimals.
func floatPattern(decimals int) string {
	if decimals > 8 {
		decimals = 8
	}
	return "#,###." + strings.Repeat("#", decimals)
}

// commaInt renders an integer with separators plus zero-padded decimals.
func commaInt(n int64, decimals int) string {
	out := humanize.Comma(n)
	if decimals > 0 {
		out += "." + strings.Repeat("0", decimals)
	}
	return out
}

// commaUint is commaInt for values beyond the int64 range.
func commaUint(n uint64, decimals int) string {
	out := humanize.BigComma(new(big.Int).SetUint64(n))
	if decimals > 0 {
		out += "." + strings.Repeat("0", decimals)
	}
	return out
}

// groupFixed inserts thousands separators into a fixed-point string as
// produced by decimal.StringFixed.
func groupFixed(s string) string {
	intPart, frac, hasFrac := strings.Cut(s, ".")
	neg := strings.HasPrefix(intPart, "-")

	n := new(big.Int)
	if _, ok := n.SetString(intPart, 10); !ok {
		return s
	}
	out := humanize.BigComma(n)
	if neg && n.Sign() == 0 {
		out = "-" + out
	}
	if hasFrac {
		out += "." + frac
	}
	return out
}
