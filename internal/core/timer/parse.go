package timer

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"pomotimer/internal/core/model"
)

// decimalNumber matches plain decimal text with an optional exponent. Hex
// floats, digit separators and the Inf/NaN words are not numbers here.
var decimalNumber = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

// ParseCount parses a minutes or frequency field. Decimal text is rounded half
// away from zero and the result is clamped to [model.MinCount, model.MaxCount].
// ok is false when raw is not a number.
func ParseCount(raw string) (value int, ok bool) {
	text := strings.TrimSpace(raw)
	if !decimalNumber.MatchString(text) {
		return 0, false
	}
	parsed, err := strconv.ParseFloat(text, 64)
	if err != nil && !isRangeError(err) {
		return 0, false
	}
	rounded := math.Round(parsed)
	// Clamp before converting: float to int conversion of huge values is undefined.
	if rounded < model.MinCount {
		return model.MinCount, true
	}
	if rounded > model.MaxCount {
		return model.MaxCount, true
	}
	return int(rounded), true
}

func isRangeError(err error) bool {
	numErr, ok := err.(*strconv.NumError)
	return ok && numErr.Err == strconv.ErrRange
}

// FormatRemaining renders milliseconds as M:SS, flooring partial seconds.
func FormatRemaining(milliseconds float64) string {
	if milliseconds < 0 || math.IsNaN(milliseconds) {
		milliseconds = 0
	}
	total := int64(milliseconds)
	minutes := total / millisecondsPerMinute
	seconds := (total % millisecondsPerMinute) / millisecondsPerSecond
	return strconv.FormatInt(minutes, 10) + ":" + twoDigits(seconds)
}

func twoDigits(value int64) string {
	if value < 10 {
		return "0" + strconv.FormatInt(value, 10)
	}
	return strconv.FormatInt(value, 10)
}
