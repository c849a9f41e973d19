package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ukaji3/schedgrid-go/pkg/schedgrid/models"
)

// ErrInvalidDayField indicates a day cell that is empty or holds unknown symbols.
var ErrInvalidDayField = errors.New("invalid day field")

// timeRangeSep separates the two clock tokens of a time cell.
const timeRangeSep = " - "

// DecodeDays parses a day cell such as "MWF" into a set.
func DecodeDays(text string) (models.DaySet, error) {
	if text == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidDayField)
	}
	var set models.DaySet
	for _, r := range text {
		d, ok := models.ParseDay(r)
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrInvalidDayField, text)
		}
		set = set.Add(d)
	}
	return set, nil
}

// DecodeTimeRange parses "HHMM - HHMM" into offsets from the 07:30 anchor.
// Tokens are decoded leniently: a token that cannot be read, or is missing,
// yields 0. Hour and minute ranges are not checked.
func DecodeTimeRange(text string) (start, end int) {
	tokens := strings.Split(text, timeRangeSep)
	start = decodeClock(tokens[0])
	if len(tokens) > 1 {
		end = decodeClock(tokens[1])
	}
	return start, end
}

// decodeClock converts one "HHMM" token to an anchor offset.
func decodeClock(token string) int {
	hour, ok := leadingInt(substr(token, 0, 2))
	if !ok {
		return 0
	}
	minute, ok := leadingInt(substr(token, 2, 2))
	if !ok {
		return 0
	}
	return hour*60 + minute - models.AnchorOffset
}

// leadingInt reads an optionally signed run of leading ASCII digits,
// skipping leading whitespace. It reports false when no digit is found.
func leadingInt(s string) (int, bool) {
	s = strings.TrimLeft(s, " \t\r\n")
	neg := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}
	n, digits := 0, 0
	for digits < len(s) && s[digits] >= '0' && s[digits] <= '9' {
		n = n*10 + int(s[digits]-'0')
		digits++
	}
	if digits == 0 {
		return 0, false
	}
	if neg {
		n = -n
	}
	return n, true
}

// substr extracts up to length runes starting at start.
func substr(input string, start int, length int) string {
	asRunes := []rune(input)

	if start >= len(asRunes) {
		return ""
	}

	if start+length > len(asRunes) {
		length = len(asRunes) - start
	}

	return string(asRunes[start : start+length])
}
