package entity

import (
	"encoding/json"
	"math"
	"strconv"
	"time"
)

// EpochMillis normalises the timestamp shapes found in stored documents into
// epoch milliseconds. It accepts time.Time, *time.Time, RFC 3339 strings,
// numeric epoch milliseconds and {seconds, nanoseconds} maps as produced when
// a store timestamp is serialised to JSON. ok is false for anything else.
func EpochMillis(v any) (ms int64, ok bool) {
	switch t := v.(type) {
	case time.Time:
		if t.IsZero() {
			return 0, false
		}

		return t.UnixMilli(), true
	case *time.Time:
		if t == nil {
			return 0, false
		}

		return EpochMillis(*t)
	case string:
		return parseTimestampString(t)
	case int64:
		return t, true
	case int:
		return int64(t), true
	case int32:
		return int64(t), true
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return 0, false
		}

		return int64(t), true
	case json.Number:
		if n, err := t.Int64(); err == nil {
			return n, true
		}
		if f, err := t.Float64(); err == nil {
			return EpochMillis(f)
		}

		return 0, false
	case map[string]any:
		return secondsMapMillis(t)
	default:
		return 0, false
	}
}

// TimeFromAny is EpochMillis returning a UTC time.Time; the zero time when
// the value cannot be interpreted.
func TimeFromAny(v any) time.Time {
	ms, ok := EpochMillis(v)
	if !ok {
		return time.Time{}
	}

	return time.UnixMilli(ms).UTC()
}

func parseTimestampString(s string) (int64, bool) {
	if s == "" {
		return 0, false
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t.UnixMilli(), true
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, true
	}

	return 0, false
}

func secondsMapMillis(m map[string]any) (int64, bool) {
	secRaw, ok := m["seconds"]
	if !ok {
		secRaw, ok = m["_seconds"]
	}
	if !ok {
		return 0, false
	}
	nanoRaw, ok := m["nanoseconds"]
	if !ok {
		nanoRaw = m["_nanoseconds"]
	}

	sec, ok := toFloat(secRaw)
	if !ok {
		return 0, false
	}
	nanos, _ := toFloat(nanoRaw)

	return int64(sec)*1000 + int64(nanos)/int64(time.Millisecond), true
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int64:
		return float64(n), true
	case int:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()

		return f, err == nil
	default:
		return 0, false
	}
}
