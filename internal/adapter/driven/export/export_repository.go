package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/diillson/aws-tag-inventory-go/internal/domain/entity"
	"github.com/diillson/aws-tag-inventory-go/internal/domain/repository"
	"github.com/diillson/aws-tag-inventory-go/internal/shared/types"
	"github.com/jung-kurt/gofpdf"
)

// ExportRepositoryImpl implementa o ExportRepository.
type ExportRepositoryImpl struct{}

// NewExportRepository cria uma nova implementação do ExportRepository.
func NewExportRepository() repository.ExportRepository {
	return &ExportRepositoryImpl{}
}

func (r *ExportRepositoryImpl) ExportToCSV(table entity.ResourceTable, outputPath string) (string, error) {
	return writeAtomically(outputPath, func(path string) error {
		file, err := os.Create(path)
		if err != nil {
			return err
		}
		defer file.Close()

		writer := csv.NewWriter(file)
		if err := writer.Write([]string{"ResourceARN", "ResourceType", "Region", "Tags"}); err != nil {
			return fmt.Errorf("error writing CSV header: %w", err)
		}
		for _, rec := range table {
			if err := writer.Write([]string{rec.ARN, rec.ResourceType, rec.Region, rec.Tags.String()}); err != nil {
				return fmt.Errorf("error writing CSV row: %w", err)
			}
		}
		writer.Flush()
		if err := writer.Error(); err != nil {
			return err
		}
		return file.Close()
	})
}

// jsonReport é o formato do export JSON: registros completos e as agregações.
type jsonReport struct {
	GeneratedAt time.Time            `json:"generated_at"`
	Regions     []string             `json:"regions,omitempty"`
	Resources   entity.ResourceTable `json:"resources"`
	Malformed   []string             `json:"malformed_arns,omitempty"`
	Summary     entity.ReportSummary `json:"summary"`
}

func (r *ExportRepositoryImpl) ExportToJSON(inventory entity.TagInventory, summary entity.ReportSummary, outputPath string) (string, error) {
	report := jsonReport{
		GeneratedAt: time.Now().UTC(),
		Regions:     inventory.Regions,
		Resources:   inventory.Resources,
		Malformed:   inventory.Malformed,
		Summary:     summary,
	}

	return writeAtomically(outputPath, func(path string) error {
		file, err := os.Create(path)
		if err != nil {
			return err
		}
		defer file.Close()

		encoder := json.NewEncoder(file)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(report); err != nil {
			return fmt.Errorf("error encoding JSON data: %w", err)
		}
		return file.Close()
	})
}

// ExportToPDF gera um resumo das três agregações. O inventário completo fica no XLSX/CSV.
func (r *ExportRepositoryImpl) ExportToPDF(summary entity.ReportSummary, outputPath string) (string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	headerColor := [3]int{40, 40, 40}
	headerTextColor := [3]int{255, 255, 255}
	sectionTitleColor := [3]int{0, 0, 0}
	bodyTextColor := [3]int{50, 50, 50}
	lineColor := [3]int{200, 200, 200}

	drawCounts := func(title, keyHeader string, counts entity.AggregateCount) {
		pdf.SetFont("Arial", "B", 12)
		pdf.SetTextColor(sectionTitleColor[0], sectionTitleColor[1], sectionTitleColor[2])
		pdf.Cell(0, 8, tr(title))
		pdf.Ln(7)

		pdf.SetDrawColor(lineColor[0], lineColor[1], lineColor[2])
		pdf.Line(pdf.GetX(), pdf.GetY(), pdf.GetX()+190, pdf.GetY())
		pdf.Ln(4)

		pdf.SetFont("Arial", "B", 10)
		pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
		pdf.CellFormat(150, 6, tr(keyHeader), "B", 0, "L", false, 0, "")
		pdf.CellFormat(40, 6, "Count", "B", 1, "R", false, 0, "")

		pdf.SetFont("Arial", "", 10)
		for _, c := range counts {
			key := c.Key
			if key == "" {
				key = "(global)"
			}
			pdf.CellFormat(150, 6, tr(key), "", 0, "L", false, 0, "")
			pdf.CellFormat(40, 6, fmt.Sprintf("%d", c.Count), "", 1, "R", false, 0, "")
		}
		pdf.Ln(8)
	}

	pdf.AddPage()
	pdf.SetFillColor(headerColor[0], headerColor[1], headerColor[2])
	pdf.SetTextColor(headerTextColor[0], headerTextColor[1], headerTextColor[2])
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 12, tr("  AWS Tag Inventory"), "", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.SetFillColor(240, 240, 240)
	pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
	pdf.CellFormat(0, 8, tr(fmt.Sprintf("  Tagged resources: %d", summary.TotalResources)), "", 1, "L", true, 0, "")
	pdf.Ln(10)

	drawCounts("Top 10 Resource Types", "ResourceType", summary.TopTypes)
	drawCounts("Resources by Region", "Region", summary.Regions)
	drawCounts("Top Tags", "TagKey", summary.TopTagKeys)

	pdf.SetY(-15)
	pdf.SetFont("Arial", "I", 8)
	pdf.SetTextColor(128, 128, 128)
	footerText := fmt.Sprintf("Generated by AWS Tag Inventory (Go) | %s", time.Now().Format("2006-01-02"))
	pdf.CellFormat(0, 10, tr(footerText), "", 0, "L", false, 0, "")

	if err := pdf.Error(); err != nil {
		return "", fmt.Errorf("%w: error rendering PDF: %w", types.ErrIO, err)
	}

	return writeAtomically(outputPath, func(path string) error {
		return pdf.OutputFileAndClose(path)
	})
}

// --- Funções Auxiliares ---

const reportFileMode os.FileMode = 0644

// writeAtomically grava num arquivo temporário no diretório de destino e depois
// renomeia; em caso de erro nada fica no caminho final.
func writeAtomically(outputPath string, write func(path string) error) (string, error) {
	absPath, err := filepath.Abs(outputPath)
	if err != nil {
		return "", fmt.Errorf("%w: %w", types.ErrIO, err)
	}

	dir := filepath.Dir(absPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("%w: error creating output directory '%s': %w", types.ErrIO, dir, err)
	}

	// O sufixo mantém a extensão; o excelize recusa salvar sem ".xlsx".
	tmp, err := os.CreateTemp(dir, ".tag-inventory-*"+filepath.Ext(absPath))
	if err != nil {
		return "", fmt.Errorf("%w: %w", types.ErrIO, err)
	}
	tmpPath := tmp.Name()
	tmp.Close()

	if err := write(tmpPath); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("%w: error writing %s: %w", types.ErrIO, absPath, err)
	}
	// CreateTemp cria com 0600; o relatório segue a permissão usual de arquivos gerados.
	if err := os.Chmod(tmpPath, reportFileMode); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("%w: %w", types.ErrIO, err)
	}
	if err := os.Rename(tmpPath, absPath); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("%w: %w", types.ErrIO, err)
	}
	return absPath, nil
}
