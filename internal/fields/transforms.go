package fields

import (
	"strconv"
	"strings"
)

// Transformers used by the field catalog. Each one either returns a typed
// value or nil to reject the match outright.

// Lowercase stores the matched text lowercased.
func Lowercase(value string, prev any) any {
	return strings.ToLower(value)
}

// Integer parses the match as an int, rejecting non-numeric text.
func Integer(value string, prev any) any {
	n, err := strconv.Atoi(value)
	if err != nil {
		return nil
	}
	return n
}

// YearRange parses the match as an int and rejects anything outside
// [min, max]. This is the sanity check that keeps resolutions and episode
// numbers from being claimed as years.
func YearRange(min, max int) func(value string, prev any) any {
	return func(value string, prev any) any {
		n, err := strconv.Atoi(value)
		if err != nil {
			return nil
		}
		if n < min || n > max {
			return nil
		}
		return n
	}
}

// Resolution normalizes resolution markers: 4K and UHD collapse to 2160p,
// everything else is lowercased.
func Resolution(value string, prev any) any {
	v := strings.ToLower(value)
	switch v {
	case "4k", "uhd", "2160":
		return "2160p"
	}
	return v
}

// Codec normalizes video codec markers by lowercasing and dropping the
// separators in spellings like "H 264" and "h.265".
func Codec(value string, prev any) any {
	v := strings.ToLower(value)
	v = strings.ReplaceAll(v, ".", "")
	v = strings.ReplaceAll(v, " ", "")
	return v
}

// Source normalizes source markers to their canonical spellings.
func Source(value string, prev any) any {
	v := strings.ToLower(value)
	switch v {
	case "blu-ray", "bluray":
		return "bluray"
	case "webdl", "web-dl":
		return "web-dl"
	case "telesync", "hdts":
		return "ts"
	}
	return v
}

// Channels normalizes audio channel layouts like "5 1" to "5.1".
func Channels(value string, prev any) any {
	return strings.ReplaceAll(value, " ", ".")
}
