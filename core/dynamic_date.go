package core

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

var dynamicDateLayouts = map[string]string{
	"day":      "2006-01-02",
	"month":    "2006-01",
	"year":     "2006",
	"datetime": "2006-01-02 15:04:05",
}

// ParseDynamicDate resolves a "$date:format:unit:offset" expression against
// baseTime, for date-stamped output paths. Example: "$date:day:day:-1" is
// yesterday as "2006-01-02". Non-$date expressions pass through unchanged.
func ParseDynamicDate(expression string, baseTime time.Time) (string, error) {
	if !strings.HasPrefix(expression, "$date:") {
		return expression, nil
	}

	parts := strings.Split(expression, ":")
	if len(parts) < 4 {
		return "", fmt.Errorf("invalid dynamic date format: %s", expression)
	}
	format, unit := parts[1], parts[2]

	offset, err := strconv.Atoi(parts[3])
	if err != nil {
		return "", fmt.Errorf("invalid offset in dynamic date: %s", expression)
	}

	target := baseTime
	switch unit {
	case "day":
		target = target.AddDate(0, 0, offset)
	case "month":
		target = target.AddDate(0, offset, 0)
	case "year":
		target = target.AddDate(offset, 0, 0)
	default:
		return "", fmt.Errorf("unsupported unit in dynamic date: %s", unit)
	}

	layout, ok := dynamicDateLayouts[format]
	if !ok {
		layout = dynamicDateLayouts["day"]
	}
	return target.Format(layout), nil
}
