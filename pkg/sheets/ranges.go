package sheets

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// splitRange splits "A1:B10" into its corner cells. A single cell is
// accepted and used for both corners.
func splitRange(rangeStr string) (start, end string, err error) {
	parts := strings.Split(rangeStr, ":")
	switch len(parts) {
	case 1:
		return parts[0], parts[0], nil
	case 2:
		return parts[0], parts[1], nil
	default:
		return "", "", fmt.Errorf("invalid cell range: %s", rangeStr)
	}
}

// rangeBounds returns the 1-based coordinate bounds of a range.
func rangeBounds(rangeStr string) (c1, r1, c2, r2 int, err error) {
	start, end, err := splitRange(rangeStr)
	if err != nil {
		return 0, 0, 0, 0, err
	}
	if c1, r1, err = excelize.CellNameToCoordinates(start); err != nil {
		return 0, 0, 0, 0, fmt.Errorf("invalid cell range %s: %w", rangeStr, err)
	}
	if c2, r2, err = excelize.CellNameToCoordinates(end); err != nil {
		return 0, 0, 0, 0, fmt.Errorf("invalid cell range %s: %w", rangeStr, err)
	}
	if c2 < c1 || r2 < r1 {
		return 0, 0, 0, 0, fmt.Errorf("invalid cell range: %s", rangeStr)
	}
	return c1, r1, c2, r2, nil
}
