package export

import (
	"fmt"
	"io"

	"github.com/wodmeet/wodmeet/internal/domain"
	"github.com/wodmeet/wodmeet/internal/service"
	"github.com/xuri/excelize/v2"
)

// SheetStandings is the name of the only sheet in a standings workbook.
const SheetStandings = "Standings"

// Header is the column header row of a standings sheet.
var Header = []string{"Place", "Name", "Association", "Weight", "Year of birth", "Gender", "Result", "Finished"}

type standingsStyles struct {
	title    int
	header   int
	category int
	cell     int
}

// WriteStandings writes an xlsx workbook with one block per category: a
// merged category row, the column header and one row per competitor in
// standings order.
func WriteStandings(w io.Writer, standings *service.Standings) error {
	if standings == nil {
		return fmt.Errorf("standings cannot be nil")
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", SheetStandings); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	styles, err := createStyles(f)
	if err != nil {
		return fmt.Errorf("failed to create styles: %w", err)
	}

	if err := setupColumns(f); err != nil {
		return err
	}

	row := 1
	title := standings.Event.Name
	if standings.Event.Description != "" {
		title = fmt.Sprintf("%s: %s", title, standings.Event.Description)
	}
	if err := setStyledRow(f, row, []any{title}, styles.title); err != nil {
		return err
	}
	row++
	if err := setStyledRow(f, row, []any{"Code", standings.Event.Ident, "Created", standings.Event.CreatedAt}, styles.cell); err != nil {
		return err
	}
	row += 2

	for _, group := range standings.Categories {
		if err := writeCategory(f, &row, group, styles); err != nil {
			return err
		}
		row++
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func writeCategory(f *excelize.File, row *int, group service.CategoryStanding, styles *standingsStyles) error {
	name := group.Category
	if name == "" {
		name = "Uncategorized"
	}

	first, _ := excelize.CoordinatesToCellName(1, *row)
	last, _ := excelize.CoordinatesToCellName(len(Header), *row)
	if err := f.MergeCell(SheetStandings, first, last); err != nil {
		return fmt.Errorf("failed to merge category row: %w", err)
	}
	if err := setStyledRow(f, *row, []any{name}, styles.category); err != nil {
		return err
	}
	*row++

	header := make([]any, len(Header))
	for i, h := range Header {
		header[i] = h
	}
	if err := setStyledRow(f, *row, header, styles.header); err != nil {
		return err
	}
	*row++

	places := Places(group.Competitors)
	for i, c := range group.Competitors {
		values := []any{
			places[i],
			c.Name,
			c.Association,
			c.Weight,
			c.YearOfBirth,
			genderLabel(c.Gender),
			c.Result,
			finishedLabel(c.Finished),
		}
		if err := setStyledRow(f, *row, values, styles.cell); err != nil {
			return err
		}
		*row++
	}
	return nil
}

// Places ranks competitors already ordered by result, best first. Equal
// results share a place and the next result skips the shared slots, so
// results 140, 120, 120, 98 are placed 1, 2, 2, 4.
func Places(competitors []domain.CompetitorSnapshot) []int {
	places := make([]int, len(competitors))
	for i, c := range competitors {
		if i > 0 && c.Result == competitors[i-1].Result {
			places[i] = places[i-1]
			continue
		}
		places[i] = i + 1
	}
	return places
}

func setStyledRow(f *excelize.File, row int, values []any, style int) error {
	start, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(SheetStandings, start, &values); err != nil {
		return fmt.Errorf("failed to write row %d: %w", row, err)
	}
	end, _ := excelize.CoordinatesToCellName(len(values), row)
	if err := f.SetCellStyle(SheetStandings, start, end, style); err != nil {
		return fmt.Errorf("failed to style row %d: %w", row, err)
	}
	return nil
}

func setupColumns(f *excelize.File) error {
	widths := map[string]float64{
		"A": 8,
		"B": 28,
		"C": 28,
		"D": 10,
		"E": 14,
		"F": 10,
		"G": 10,
		"H": 10,
	}
	for col, width := range widths {
		if err := f.SetColWidth(SheetStandings, col, col, width); err != nil {
			return fmt.Errorf("failed to set width of column %s: %w", col, err)
		}
	}
	return nil
}

func createStyles(f *excelize.File) (*standingsStyles, error) {
	styles := &standingsStyles{}
	var err error

	styles.title, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 14},
	})
	if err != nil {
		return nil, err
	}

	styles.header, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11, Color: "#FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#2E75B6"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
		Border: []excelize.Border{
			{Type: "left", Color: "#1F4E79", Style: 1},
			{Type: "right", Color: "#1F4E79", Style: 1},
			{Type: "top", Color: "#1F4E79", Style: 1},
			{Type: "bottom", Color: "#1F4E79", Style: 1},
		},
	})
	if err != nil {
		return nil, err
	}

	styles.category, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
	})
	if err != nil {
		return nil, err
	}

	styles.cell, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Size: 10},
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
		Border: []excelize.Border{
			{Type: "left", Color: "#D9D9D9", Style: 1},
			{Type: "right", Color: "#D9D9D9", Style: 1},
			{Type: "bottom", Color: "#D9D9D9", Style: 1},
		},
	})
	if err != nil {
		return nil, err
	}

	return styles, nil
}

func genderLabel(g domain.Gender) string {
	switch g {
	case domain.GenderMale:
		return "M"
	case domain.GenderFemale:
		return "F"
	default:
		return ""
	}
}

func finishedLabel(finished int) string {
	if finished != 0 {
		return "yes"
	}
	return "no"
}
