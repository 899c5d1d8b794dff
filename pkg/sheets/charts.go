package sheets

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// CreateChart adds a bar or pie chart to a sheet, anchored at A1. The first
// column of dataRange supplies category labels and each following column
// becomes a series named by its first row.
func (s *Store) CreateChart(filename, sheet, chartType, dataRange, title string) (*ChartResult, error) {
	path, err := s.resolveExisting(filename)
	if err != nil {
		return nil, err
	}

	var kind excelize.ChartType
	switch chartType {
	case "bar":
		kind = excelize.Bar
	case "pie":
		kind = excelize.Pie
	default:
		return &ChartResult{Success: false, Reason: "Unsupported chart type"}, nil
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, opErr("chart", filename, err)
	}
	defer f.Close()

	series, err := seriesFromRange(sheet, dataRange)
	if err != nil {
		return nil, opErr("chart", filename, err)
	}

	if title == "" {
		title = "Chart"
	}
	chart := &excelize.Chart{
		Type:   kind,
		Series: series,
		Title:  []excelize.RichTextRun{{Text: title}},
	}
	if err := f.AddChart(sheet, "A1", chart); err != nil {
		return nil, opErr("chart", filename, err)
	}
	if err := f.Save(); err != nil {
		return nil, opErr("chart", filename, err)
	}

	s.logger.Info("chart created", "file", filename, "sheet", sheet, "type", chartType)
	return &ChartResult{Success: true, ChartType: chartType}, nil
}

// seriesFromRange turns a rectangular range into chart series. A single
// column becomes one untitled series over its full height.
func seriesFromRange(sheet, dataRange string) ([]excelize.ChartSeries, error) {
	c1, r1, c2, r2, err := rangeBounds(dataRange)
	if err != nil {
		return nil, err
	}

	ref := func(col, row int) string {
		cell, _ := excelize.CoordinatesToCellName(col, row, true)
		return fmt.Sprintf("%s!%s", quoteSheet(sheet), cell)
	}
	areaRef := func(col, rowStart, rowEnd int) string {
		start, _ := excelize.CoordinatesToCellName(col, rowStart, true)
		end, _ := excelize.CoordinatesToCellName(col, rowEnd, true)
		return fmt.Sprintf("%s!%s:%s", quoteSheet(sheet), start, end)
	}

	if c1 == c2 {
		return []excelize.ChartSeries{{Values: areaRef(c1, r1, r2)}}, nil
	}

	firstDataRow := r1
	if r2 > r1 {
		firstDataRow = r1 + 1 // first row holds series names
	}

	categories := areaRef(c1, firstDataRow, r2)
	var series []excelize.ChartSeries
	for col := c1 + 1; col <= c2; col++ {
		series = append(series, excelize.ChartSeries{
			Name:       ref(col, r1),
			Categories: categories,
			Values:     areaRef(col, firstDataRow, r2),
		})
	}
	return series, nil
}

// quoteSheet quotes sheet names that need it in range references.
func quoteSheet(sheet string) string {
	if strings.ContainsAny(sheet, " '") {
		return "'" + strings.ReplaceAll(sheet, "'", "''") + "'"
	}
	return sheet
}
