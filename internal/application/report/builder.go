// Package report monta o documento de planilhas a partir da tabela de recursos.
// Nada aqui faz I/O; a serialização fica no adapter de export.
package report

import (
	"github.com/diillson/aws-tag-inventory-go/internal/domain/entity"
)

const (
	SheetFullInventory = "Full Inventory"
	SheetTopTypes      = "Top 10 Types"
	SheetRegions       = "Resources by Region"
	SheetTopTags       = "Top Tags"

	// TopN limita as abas de tipos e de tags.
	TopN = 10

	chartAnchor = "E2"
)

// Build gera as quatro abas do relatório na ordem fixa.
func Build(table entity.ResourceTable) entity.ReportDocument {
	summary := entity.ReportSummary{
		TotalResources: len(table),
		TopTypes:       CountBy(table, byResourceType).Top(TopN),
		Regions:        CountBy(table, byRegion),
		TopTagKeys:     CountTagKeys(table).Top(TopN),
	}

	return entity.ReportDocument{
		Sheets: []entity.Sheet{
			inventorySheet(table),
			countSheet(SheetTopTypes, "ResourceType", summary.TopTypes,
				entity.ChartBar, "Top 10 Resource Types"),
			countSheet(SheetRegions, "Region", summary.Regions,
				entity.ChartPie, "Resources by Region"),
			countSheet(SheetTopTags, "TagKey", summary.TopTagKeys, "", ""),
		},
		Summary: summary,
	}
}

func inventorySheet(table entity.ResourceTable) entity.Sheet {
	rows := make([][]interface{}, 0, len(table))
	for _, r := range table {
		rows = append(rows, []interface{}{r.ARN, r.ResourceType, r.Region, r.Tags.String()})
	}
	return entity.Sheet{
		Name:   SheetFullInventory,
		Header: []string{"ResourceARN", "ResourceType", "Region", "Tags"},
		Rows:   rows,
	}
}

// countSheet monta uma tabela de duas colunas (chave, Count). Quando kind não é
// vazio e há linhas de dados, anexa um gráfico ligado exatamente a essas linhas.
func countSheet(name, keyHeader string, counts entity.AggregateCount, kind entity.ChartKind, title string) entity.Sheet {
	rows := make([][]interface{}, 0, len(counts))
	for _, c := range counts {
		rows = append(rows, []interface{}{c.Key, c.Count})
	}
	sheet := entity.Sheet{
		Name:   name,
		Header: []string{keyHeader, "Count"},
		Rows:   rows,
	}
	if kind != "" && len(rows) > 0 {
		sheet.Chart = chartFor(name, len(rows), kind, title)
	}
	return sheet
}

// chartFor calcula os intervalos a partir do número de linhas de dados:
// B1 é o nome da série, A2:A(n+1) as categorias e B2:B(n+1) os valores.
func chartFor(sheet string, dataRows int, kind entity.ChartKind, title string) *entity.Chart {
	lastRow := dataRows + 1
	return &entity.Chart{
		Kind:       kind,
		Title:      title,
		Anchor:     chartAnchor,
		SeriesName: entity.CellRange{Sheet: sheet, FirstRow: 1, LastRow: 1, FirstCol: 2, LastCol: 2},
		Categories: entity.CellRange{Sheet: sheet, FirstRow: 2, LastRow: lastRow, FirstCol: 1, LastCol: 1},
		Values:     entity.CellRange{Sheet: sheet, FirstRow: 2, LastRow: lastRow, FirstCol: 2, LastCol: 2},
	}
}
