package extraction

import (
	"encoding/json"
	"math"
	"strings"
)

// InteractionStat pairs an interaction type descriptor with its raw count
type InteractionStat struct {
	Type  string
	Count any
}

// InteractionStats reads the interactionStatistic list of a record.
// A missing field yields an empty list and a lone object a single entry.
func InteractionStats(r Record) []InteractionStat {
	var entries []any
	switch v := r["interactionStatistic"].(type) {
	case []any:
		entries = v
	case map[string]any:
		entries = []any{v}
	default:
		return nil
	}

	stats := make([]InteractionStat, 0, len(entries))
	for _, e := range entries {
		obj, ok := e.(map[string]any)
		if !ok {
			continue
		}
		typ, _ := obj["interactionType"].(string)
		stats = append(stats, InteractionStat{
			Type:  typ,
			Count: obj["userInteractionCount"],
		})
	}
	return stats
}

// LookupCount finds the first stat whose type equals target or contains it,
// and returns its count. A missing entry or a count that is not a JSON
// number holding a non-negative integer yields false.
func LookupCount(stats []InteractionStat, target string) (int64, bool) {
	if target == "" {
		return 0, false
	}
	for _, s := range stats {
		if s.Type == target || strings.Contains(s.Type, target) {
			return parseCount(s.Count)
		}
	}
	return 0, false
}

func parseCount(v any) (int64, bool) {
	switch n := v.(type) {
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return nonNegative(i)
		}
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return floatCount(f)
	case float64:
		return floatCount(n)
	case int64:
		return nonNegative(n)
	case int:
		return nonNegative(int64(n))
	}
	return 0, false
}

func nonNegative(i int64) (int64, bool) {
	if i < 0 {
		return 0, false
	}
	return i, true
}

// floatCount accepts whole numbers that fit exactly in an int64
func floatCount(f float64) (int64, bool) {
	if f < 0 || f != math.Trunc(f) || f > 1<<53 {
		return 0, false
	}
	return int64(f), true
}
