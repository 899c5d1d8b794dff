package sheets

import "strconv"

// parseValue attempts to parse a string cell value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) any {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}

// typeRows converts string rows into typed rows, trimming nothing.
func typeRows(rows [][]string) [][]any {
	out := make([][]any, len(rows))
	for i, row := range rows {
		typed := make([]any, len(row))
		for j, v := range row {
			typed[j] = parseValue(v)
		}
		out[i] = typed
	}
	return out
}
