package repository

import (
	"github.com/diillson/aws-tag-inventory-go/internal/domain/entity"
)

// ExportRepository grava o relatório em disco. Cada método retorna o caminho absoluto gerado.
type ExportRepository interface {
	ExportToXLSX(doc entity.ReportDocument, outputPath string) (string, error)
	ExportToCSV(table entity.ResourceTable, outputPath string) (string, error)
	ExportToJSON(inventory entity.TagInventory, summary entity.ReportSummary, outputPath string) (string, error)
	ExportToPDF(summary entity.ReportSummary, outputPath string) (string, error)
}
