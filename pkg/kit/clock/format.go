package clock

import (
	"strconv"
	"strings"
	"time"

	"github.com/ib-77/kit3/pkg/kit/text"
)

// Style selects between compact and spelled-out duration rendering.
type Style int

const (
	StyleShort Style = iota // "1d 2h"
	StyleLong               // "1 day 2 hours"
)

var shortUnits = [...]string{"d", "h", "m", "s"}
var longUnits = [...]string{"day", "hour", "minute", "second"}

// FormatDuration renders d in whole days, hours, minutes and seconds,
// omitting zero-valued units. Durations under one second (and negative
// ones) render as the zero label: "0s" or "0 seconds".
func FormatDuration(d time.Duration, style Style) string {
	if d < time.Second {
		if style == StyleLong {
			return "0 seconds"
		}
		return "0s"
	}

	total := int64(d / time.Second)
	parts := [...]int64{
		total / 86400,
		total % 86400 / 3600,
		total % 3600 / 60,
		total % 60,
	}

	segments := make([]string, 0, len(parts))
	for i, n := range parts {
		if n == 0 {
			continue
		}
		if style == StyleLong {
			segments = append(segments, text.Pluralize(int(n), longUnits[i], ""))
		} else {
			segments = append(segments, strconv.FormatInt(n, 10)+shortUnits[i])
		}
	}

	return strings.Join(segments, " ")
}
