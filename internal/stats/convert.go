package stats

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/lottolab/scratchoff-data/internal/model"
)

// CombinedDateLayout is the month/day/year format the joined fetch path
// delivers for last_updated (e.g. "3/14/2025").
const CombinedDateLayout = "1/2/2006"

// Date layouts accepted by the game-listing fetch path.
var gameDateLayouts = []string{time.RFC3339, "2006-01-02", CombinedDateLayout}

// AsString coerces a raw value to a string. nil and non-string scalars
// yield their obvious text form; anything else yields "".
func AsString(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(s)
	case int64:
		return strconv.FormatInt(s, 10)
	case int:
		return strconv.Itoa(s)
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	default:
		return ""
	}
}

// AsFloat coerces a raw value to a float64. Strings are parsed; values
// that fail coercion (or non-finite results) report ok=false rather than
// an error, so partially-dirty upstream rows survive normalization.
func AsFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, !math.IsNaN(n) && !math.IsInf(n, 0)
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil && !math.IsNaN(f) && !math.IsInf(f, 0)
	default:
		return 0, false
	}
}

// AsInt64 coerces a raw value to an int64, rounding fractional inputs.
func AsInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int64:
		return n, true
	default:
		f, ok := AsFloat(v)
		if !ok {
			return 0, false
		}
		return int64(math.Round(f)), true
	}
}

// AsTime coerces a raw value to a time.Time using the given layouts in
// order. Unparseable values report ok=false.
func AsTime(v any, layouts ...string) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t, true
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return time.Time{}, false
		}
		for _, layout := range layouts {
			if parsed, err := time.Parse(layout, s); err == nil {
				return parsed, true
			}
		}
	}
	return time.Time{}, false
}

// Field accessors over a RawRecord. Each returns nil when the field is
// structurally absent or fails coercion.

func floatField(r model.RawRecord, key string) *float64 {
	v, present := r[key]
	if !present {
		return nil
	}
	f, ok := AsFloat(v)
	if !ok {
		return nil
	}
	return &f
}

func intField(r model.RawRecord, key string) *int64 {
	v, present := r[key]
	if !present {
		return nil
	}
	n, ok := AsInt64(v)
	if !ok {
		return nil
	}
	return &n
}

func smallIntField(r model.RawRecord, key string) *int {
	n := intField(r, key)
	if n == nil {
		return nil
	}
	small := int(*n)
	return &small
}

func timeField(r model.RawRecord, key string, layouts ...string) *time.Time {
	v, present := r[key]
	if !present {
		return nil
	}
	t, ok := AsTime(v, layouts...)
	if !ok {
		return nil
	}
	return &t
}

func stringField(r model.RawRecord, key string) string {
	v, present := r[key]
	if !present {
		return ""
	}
	return AsString(v)
}
