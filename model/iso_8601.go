package model

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	iso8601DurationDateRegexp = regexp.MustCompile(`^P(\d+Y)?(\d+M)?(\d+W)?(\d+D)?$`)
	iso8601DurationTimeRegexp = regexp.MustCompile(`^(\d+H)?(\d+M)?(\d+S)?$`)
)

// ISO8601Duration is a duration in ISO 8601 format, as used by timer triggers of type [TimerDuration].
//
// see https://en.wikipedia.org/wiki/ISO_8601#Durations
type ISO8601Duration string

// NewISO8601Duration parses v, which must have the form PnYnMnWnDTnHnMnS, while each part is optional.
func NewISO8601Duration(v string) (ISO8601Duration, error) {
	date, time, hasTime := strings.Cut(v, "T")

	var valid bool
	switch {
	case !hasTime:
		valid = len(date) >= 3 && iso8601DurationDateRegexp.MatchString(date) // e.g. P1D
	case len(time) < 2:
		valid = false // e.g. P1DT
	case date == "P":
		valid = iso8601DurationTimeRegexp.MatchString(time) // e.g. PT1S
	default:
		valid = iso8601DurationDateRegexp.MatchString(date) && iso8601DurationTimeRegexp.MatchString(time) // e.g. P1DT1S
	}

	if !valid {
		return "", fmt.Errorf("failed to parse ISO 8601 duration %s", v)
	}

	return ISO8601Duration(v), nil
}

func (d ISO8601Duration) String() string {
	return string(d)
}
