package sheets

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"io"
	"strings"
)

// This file reads chart metadata straight out of the xlsx package, since
// excelize exposes no chart reading API. The relevant parts live in:
//
//	xl/workbook.xml            sheet names and relationship ids
//	xl/_rels/workbook.xml.rels relationship id -> worksheet part
//	xl/worksheets/_rels/*      worksheet -> drawing part
//	xl/drawings/*              chart frame anchors and names
//	xl/charts/chart*.xml       chart type and title

// chartTypeNames maps OOXML chart element tags to display names.
var chartTypeNames = map[string]string{
	"lineChart":      "Line",
	"line3DChart":    "3DLine",
	"barChart":       "Bar",
	"bar3DChart":     "3DBar",
	"areaChart":      "Area",
	"area3DChart":    "3DArea",
	"pieChart":       "Pie",
	"pie3DChart":     "3DPie",
	"doughnutChart":  "Doughnut",
	"scatterChart":   "XYScatter",
	"bubbleChart":    "Bubble",
	"radarChart":     "Radar",
	"surfaceChart":   "Surface",
	"surface3DChart": "3DSurface",
	"stockChart":     "Stock",
	"ofPieChart":     "PieOfPie",
}

// ListCharts reports the charts present in an xlsx workbook.
func (s *Store) ListCharts(filename string) (*ListChartsResult, error) {
	path, err := s.resolveExisting(filename)
	if err != nil {
		return nil, err
	}

	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, opErr("chart", filename, err)
	}
	defer r.Close()

	charts := []ChartInfo{}

	sheetParts := workbookSheetParts(&r.Reader)
	for sheetName, sheetPath := range sheetParts {
		drawingPath := sheetDrawingPart(&r.Reader, sheetPath)
		if drawingPath == "" {
			continue
		}
		for _, frame := range drawingChartFrames(&r.Reader, drawingPath) {
			info := ChartInfo{Sheet: sheetName, Name: frame.name, ChartType: "unknown"}
			if data := zipPart(&r.Reader, frame.chartPath); data != nil {
				info.ChartType, info.Title = parseChartPart(data)
			}
			charts = append(charts, info)
		}
	}

	return &ListChartsResult{Success: true, Charts: charts, Count: len(charts)}, nil
}

// zipPart returns the contents of a named archive member, or nil.
func zipPart(r *zip.Reader, name string) []byte {
	for _, f := range r.File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				return nil
			}
			defer rc.Close()
			data, err := io.ReadAll(rc)
			if err != nil {
				return nil
			}
			return data
		}
	}
	return nil
}

// partPath resolves a relationship target against its base directory.
func partPath(target, baseDir string) string {
	if strings.HasPrefix(target, "../") {
		for strings.HasPrefix(target, "../") {
			target = strings.TrimPrefix(target, "../")
		}
		return "xl/" + target
	}
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(target, "/")
	}
	return baseDir + "/" + target
}

// workbookSheetParts maps sheet names to their worksheet part paths.
func workbookSheetParts(r *zip.Reader) map[string]string {
	wb := zipPart(r, "xl/workbook.xml")
	rels := zipPart(r, "xl/_rels/workbook.xml.rels")
	if wb == nil || rels == nil {
		return nil
	}

	// rId -> sheet name
	names := make(map[string]string)
	dec := xml.NewDecoder(bytes.NewReader(wb))
	for {
		token, err := dec.Token()
		if err != nil {
			break
		}
		se, ok := token.(xml.StartElement)
		if !ok || se.Name.Local != "sheet" {
			continue
		}
		var name, rID string
		for _, attr := range se.Attr {
			switch attr.Name.Local {
			case "name":
				name = attr.Value
			case "id":
				rID = attr.Value
			}
		}
		if name != "" && rID != "" {
			names[rID] = name
		}
	}

	result := make(map[string]string)
	for _, rel := range relationships(rels) {
		if name, ok := names[rel.id]; ok && strings.Contains(strings.ToLower(rel.relType), "worksheet") {
			result[name] = partPath(rel.target, "xl")
		}
	}
	return result
}

// sheetDrawingPart returns the drawing part path referenced by a worksheet.
func sheetDrawingPart(r *zip.Reader, sheetPath string) string {
	relsPath := strings.Replace(sheetPath, "worksheets/", "worksheets/_rels/", 1) + ".rels"
	rels := zipPart(r, relsPath)
	if rels == nil {
		return ""
	}
	for _, rel := range relationships(rels) {
		if strings.Contains(strings.ToLower(rel.relType), "drawing") {
			return partPath(rel.target, "xl/drawings")
		}
	}
	return ""
}

// relationship is one entry of a rels part.
type relationship struct {
	id      string
	target  string
	relType string
}

// relationships parses the Relationship entries of a rels part.
func relationships(data []byte) []relationship {
	var rels []relationship
	dec := xml.NewDecoder(bytes.NewReader(data))
	for {
		token, err := dec.Token()
		if err != nil {
			break
		}
		se, ok := token.(xml.StartElement)
		if !ok || se.Name.Local != "Relationship" {
			continue
		}
		var rel relationship
		for _, attr := range se.Attr {
			switch attr.Name.Local {
			case "Id":
				rel.id = attr.Value
			case "Target":
				rel.target = attr.Value
			case "Type":
				rel.relType = attr.Value
			}
		}
		rels = append(rels, rel)
	}
	return rels
}

// chartFrame is a graphic frame in a drawing that hosts a chart.
type chartFrame struct {
	name      string
	chartPath string
}

// drawingChartFrames extracts the chart frames of a drawing part.
func drawingChartFrames(r *zip.Reader, drawingPath string) []chartFrame {
	drawing := zipPart(r, drawingPath)
	if drawing == nil {
		return nil
	}

	relsPath := strings.Replace(drawingPath, "drawings/", "drawings/_rels/", 1) + ".rels"
	chartTargets := make(map[string]string)
	if rels := zipPart(r, relsPath); rels != nil {
		for _, rel := range relationships(rels) {
			if strings.Contains(strings.ToLower(rel.relType), "chart") {
				chartTargets[rel.id] = partPath(rel.target, "xl/charts")
			}
		}
	}

	var frames []chartFrame
	dec := xml.NewDecoder(bytes.NewReader(drawing))
	var frameName string
	for {
		token, err := dec.Token()
		if err != nil {
			break
		}
		se, ok := token.(xml.StartElement)
		if !ok {
			continue
		}
		switch se.Name.Local {
		case "cNvPr":
			for _, attr := range se.Attr {
				if attr.Name.Local == "name" {
					frameName = attr.Value
				}
			}
		case "chart":
			for _, attr := range se.Attr {
				if attr.Name.Local == "id" {
					if target, ok := chartTargets[attr.Value]; ok {
						frames = append(frames, chartFrame{name: frameName, chartPath: target})
					}
				}
			}
		}
	}
	return frames
}

// parseChartPart extracts the chart type and title from a chart part.
func parseChartPart(data []byte) (chartType, title string) {
	chartType = "unknown"
	dec := xml.NewDecoder(bytes.NewReader(data))
	inTitle := false
	titleDepth := 0
	depth := 0

	for {
		token, err := dec.Token()
		if err != nil {
			break
		}
		switch t := token.(type) {
		case xml.StartElement:
			depth++
			if name, ok := chartTypeNames[t.Name.Local]; ok && chartType == "unknown" {
				chartType = name
			}
			if t.Name.Local == "title" {
				inTitle = true
				titleDepth = depth
			}
		case xml.EndElement:
			if inTitle && depth == titleDepth {
				inTitle = false
			}
			depth--
		case xml.CharData:
			if inTitle {
				title += string(t)
			}
		}
	}
	return chartType, strings.TrimSpace(title)
}
