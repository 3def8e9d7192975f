package handlers

import "strconv"

// coerceRevenue accepts whatever the form put into the revenue field.
// JSON numbers arrive as float64, form values as strings; anything
// unparseable counts as zero.
func coerceRevenue(v interface{}) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case int:
		return float64(t)
	case int64:
		return float64(t)
	case string:
		if n, err := strconv.ParseFloat(t, 64); err == nil {
			return n
		}
	}
	return 0
}
