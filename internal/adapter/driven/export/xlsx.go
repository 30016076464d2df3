package export

import (
	"fmt"

	"github.com/diillson/aws-tag-inventory-go/internal/domain/entity"
	"github.com/xuri/excelize/v2"
)

// defaultSheet é a aba criada pelo excelize.NewFile.
const defaultSheet = "Sheet1"

var columnWidths = map[string][]float64{
	// ARN, tipo, região, tags
	"inventory": {70, 18, 16, 60},
	"count":     {28, 10},
}

// ExportToXLSX grava o documento como uma única planilha XLSX.
func (r *ExportRepositoryImpl) ExportToXLSX(doc entity.ReportDocument, outputPath string) (string, error) {
	f, err := buildWorkbook(doc)
	if err != nil {
		return "", err
	}
	defer f.Close()

	return writeAtomically(outputPath, func(path string) error {
		return f.SaveAs(path)
	})
}

func buildWorkbook(doc entity.ReportDocument) (*excelize.File, error) {
	if len(doc.Sheets) == 0 {
		return nil, fmt.Errorf("report has no sheets")
	}

	f := excelize.NewFile()

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("error creating header style: %w", err)
	}

	for i, sheet := range doc.Sheets {
		if i == 0 {
			// Reaproveita a aba padrão em vez de criar e remover.
			if err := f.SetSheetName(defaultSheet, sheet.Name); err != nil {
				f.Close()
				return nil, fmt.Errorf("error naming sheet %q: %w", sheet.Name, err)
			}
		} else if _, err := f.NewSheet(sheet.Name); err != nil {
			f.Close()
			return nil, fmt.Errorf("error creating sheet %q: %w", sheet.Name, err)
		}

		if err := writeSheet(f, sheet, bold); err != nil {
			f.Close()
			return nil, err
		}
	}

	f.SetActiveSheet(0)
	return f, nil
}

func writeSheet(f *excelize.File, sheet entity.Sheet, headerStyle int) error {
	header := make([]interface{}, len(sheet.Header))
	for i, h := range sheet.Header {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet.Name, "A1", &header); err != nil {
		return fmt.Errorf("error writing header of %q: %w", sheet.Name, err)
	}

	if len(sheet.Header) > 0 {
		lastHeader, err := excelize.CoordinatesToCellName(len(sheet.Header), 1)
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet.Name, "A1", lastHeader, headerStyle); err != nil {
			return fmt.Errorf("error styling header of %q: %w", sheet.Name, err)
		}
	}

	for i, row := range sheet.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet.Name, cell, &row); err != nil {
			return fmt.Errorf("error writing row %d of %q: %w", i+2, sheet.Name, err)
		}
	}

	widths := columnWidths["count"]
	if len(sheet.Header) > 2 {
		widths = columnWidths["inventory"]
	}
	for i, w := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet.Name, col, col, w); err != nil {
			return err
		}
	}

	if sheet.Chart != nil {
		if err := addChart(f, sheet); err != nil {
			return fmt.Errorf("error adding chart to %q: %w", sheet.Name, err)
		}
	}
	return nil
}

func addChart(f *excelize.File, sheet entity.Sheet) error {
	c := sheet.Chart
	// Um intervalo que não cobre exatamente as linhas de dados gera um gráfico vazio ou cortado.
	if !c.Categories.Valid() || !c.Values.Valid() || c.Values.LastRow != sheet.RowCount() {
		return fmt.Errorf("chart range %d:%d does not match %d data rows", c.Values.FirstRow, c.Values.LastRow, len(sheet.Rows))
	}

	name, err := rangeRef(c.SeriesName)
	if err != nil {
		return err
	}
	categories, err := rangeRef(c.Categories)
	if err != nil {
		return err
	}
	values, err := rangeRef(c.Values)
	if err != nil {
		return err
	}

	chartType := excelize.Col
	if c.Kind == entity.ChartPie {
		chartType = excelize.Pie
	}

	return f.AddChart(sheet.Name, c.Anchor, &excelize.Chart{
		Type: chartType,
		Series: []excelize.ChartSeries{
			{Name: name, Categories: categories, Values: values},
		},
		Title:  []excelize.RichTextRun{{Text: c.Title}},
		Legend: excelize.ChartLegend{Position: "right"},
	})
}

// rangeRef converte um CellRange em referência absoluta, ex.: 'Top 10 Types'!$A$2:$A$11.
func rangeRef(r entity.CellRange) (string, error) {
	if !r.Valid() {
		return "", fmt.Errorf("invalid cell range %+v", r)
	}
	first, err := excelize.CoordinatesToCellName(r.FirstCol, r.FirstRow, true)
	if err != nil {
		return "", err
	}
	last, err := excelize.CoordinatesToCellName(r.LastCol, r.LastRow, true)
	if err != nil {
		return "", err
	}
	sheet := "'" + r.Sheet + "'"
	if first == last {
		return sheet + "!" + first, nil
	}
	return sheet + "!" + first + ":" + last, nil
}
