package tasks

import (
	"strconv"
	"strings"
)

// formatList renders a Go slice the way Python prints a list:
// [12.23, 13.32, 100, 36.32].
func formatList[T int64 | float64 | bool](xs []T) string {
	var s strings.Builder
	s.WriteByte('[')
	for i, x := range xs {
		if i > 0 {
			s.WriteString(", ")
		}
		s.WriteString(formatScalar(x))
	}
	s.WriteByte(']')
	return s.String()
}

// formatRows renders nested slices as a Python list of lists.
func formatRows[T int64 | float64 | bool](rows [][]T) string {
	parts := make([]string, len(rows))
	for i, row := range rows {
		parts[i] = formatList(row)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func formatScalar[T int64 | float64 | bool](x T) string {
	switch v := any(x).(type) {
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		if v {
			return "True"
		}
		return "False"
	default:
		return ""
	}
}
