package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/diillson/aws-tag-inventory-go/internal/application/report"
	"github.com/diillson/aws-tag-inventory-go/internal/domain/entity"
	"github.com/diillson/aws-tag-inventory-go/internal/domain/repository"
	"github.com/diillson/aws-tag-inventory-go/internal/shared/types"
	"github.com/pterm/pterm"
)

const (
	// DefaultProfile é o perfil AWS usado quando nenhum é informado.
	DefaultProfile = "finops-tag-inventory"

	outputPrompt = "Enter the path and file name to save the report (e.g. C:/my_reports/aws-inventory.xlsx)"

	// maxMalformedListed limita quantos ARNs inválidos aparecem no console.
	maxMalformedListed = 5
)

var supportedReportTypes = map[string]bool{"xlsx": true, "csv": true, "json": true, "pdf": true}

// InventoryUseCase coordena coleta, montagem do relatório e export.
type InventoryUseCase struct {
	awsRepo    repository.AWSRepository
	exportRepo repository.ExportRepository
	configRepo repository.ConfigRepository
	console    types.ConsoleInterface
}

// NewInventoryUseCase creates a new inventory use case.
func NewInventoryUseCase(
	awsRepo repository.AWSRepository,
	exportRepo repository.ExportRepository,
	configRepo repository.ConfigRepository,
	console types.ConsoleInterface,
) *InventoryUseCase {
	return &InventoryUseCase{
		awsRepo:    awsRepo,
		exportRepo: exportRepo,
		configRepo: configRepo,
		console:    console,
	}
}

// ResolveArgs mescla o arquivo de configuração (se houver) com as flags. Flags têm precedência.
func (uc *InventoryUseCase) ResolveArgs(args *types.CLIArgs) (*types.CLIArgs, error) {
	resolved := *args

	if args.ConfigFile != "" {
		cfg, err := uc.configRepo.LoadConfigFile(args.ConfigFile)
		if err != nil {
			return nil, err
		}
		if resolved.Profile == "" {
			resolved.Profile = cfg.Profile
		}
		if resolved.Region == "" {
			resolved.Region = cfg.Region
		}
		if !resolved.AllRegions {
			resolved.AllRegions = cfg.AllRegions
		}
		if resolved.Output == "" {
			resolved.Output = cfg.Output
		}
		if len(resolved.ReportType) == 0 {
			resolved.ReportType = cfg.ReportType
		}
	}

	if resolved.Profile == "" {
		resolved.Profile = DefaultProfile
	}

	reportTypes := []string{"xlsx"}
	for _, t := range resolved.ReportType {
		t = strings.ToLower(strings.TrimSpace(t))
		if !supportedReportTypes[t] {
			return nil, fmt.Errorf("%w: %q (supported: xlsx, csv, json, pdf)", types.ErrUnsupportedReportType, t)
		}
		if !contains(reportTypes, t) {
			reportTypes = append(reportTypes, t)
		}
	}
	resolved.ReportType = reportTypes

	return &resolved, nil
}

// Collect executa o coletor para a região do perfil, a região pedida ou todas as regiões
// acessíveis. As regiões são lidas uma após a outra.
func (uc *InventoryUseCase) Collect(ctx context.Context, args *types.CLIArgs) (entity.TagInventory, error) {
	regions := []string{args.Region}
	if args.AllRegions {
		accessible, err := uc.awsRepo.GetAccessibleRegions(ctx, args.Profile)
		if err != nil {
			return entity.TagInventory{}, err
		}
		regions = accessible
	}

	status := uc.console.Status("Collecting tagged resources...")
	defer status.Stop()

	inventory := entity.TagInventory{Resources: entity.ResourceTable{}}
	for _, region := range regions {
		if region != "" {
			status.Update(fmt.Sprintf("Collecting tagged resources in %s...", region))
		}
		regional, err := uc.awsRepo.GetTaggedResources(ctx, args.Profile, region)
		if err != nil {
			return entity.TagInventory{}, err
		}
		inventory.Append(regional)
	}

	return inventory, nil
}

// RunInventory executa o fluxo completo: coleta, relatório e gravação.
func (uc *InventoryUseCase) RunInventory(ctx context.Context, args *types.CLIArgs) error {
	resolved, err := uc.ResolveArgs(args)
	if err != nil {
		return err
	}

	uc.console.LogInfo("Collecting tagged resources (profile: %s)...", resolved.Profile)

	accountID, err := uc.awsRepo.GetAccountID(ctx, resolved.Profile)
	if err != nil {
		if errors.Is(err, types.ErrAuthentication) {
			return err
		}
		uc.console.LogWarning("Could not resolve account ID: %s", err)
		accountID = "Unknown"
	}

	inventory, err := uc.Collect(ctx, resolved)
	if err != nil {
		return err
	}

	uc.reportMalformed(inventory.Malformed)

	if len(inventory.Resources) == 0 {
		uc.console.Println("No tagged resources found.")
		return nil
	}

	uc.console.LogInfo("Found %d tagged resources in account %s (%s)",
		len(inventory.Resources), accountID, strings.Join(inventory.Regions, ", "))

	doc := report.Build(inventory.Resources)
	uc.console.Print(uc.summaryTable(doc.Summary).Render())

	answer := resolved.Output
	if answer == "" {
		answer, err = uc.console.Prompt(outputPrompt)
		if err != nil {
			return err
		}
	}
	outputPath := ResolveOutputPath(answer)

	xlsxPath, err := uc.exportRepo.ExportToXLSX(doc, outputPath)
	if err != nil {
		return err
	}
	uc.console.LogSuccess("Report saved successfully to: %s", xlsxPath)

	uc.exportExtras(resolved.ReportType, inventory, doc.Summary, xlsxPath)
	return nil
}

// exportExtras grava os formatos adicionais ao lado do XLSX. Falhas aqui são
// registradas mas não desfazem o relatório principal.
func (uc *InventoryUseCase) exportExtras(reportTypes []string, inventory entity.TagInventory, summary entity.ReportSummary, xlsxPath string) {
	for _, reportType := range reportTypes {
		var (
			path string
			err  error
		)
		switch reportType {
		case "csv":
			path, err = uc.exportRepo.ExportToCSV(inventory.Resources, ReplaceExt(xlsxPath, "csv"))
		case "json":
			path, err = uc.exportRepo.ExportToJSON(inventory, summary, ReplaceExt(xlsxPath, "json"))
		case "pdf":
			path, err = uc.exportRepo.ExportToPDF(summary, ReplaceExt(xlsxPath, "pdf"))
		default:
			continue
		}
		if err != nil {
			uc.console.LogError("Failed to export to %s: %s", strings.ToUpper(reportType), err)
			continue
		}
		uc.console.LogSuccess("Successfully exported to %s: %s", strings.ToUpper(reportType), path)
	}
}

func (uc *InventoryUseCase) reportMalformed(arns []string) {
	if len(arns) == 0 {
		return
	}
	uc.console.LogWarning("Skipped %d resource(s) with malformed ARN", len(arns))
	for i, arn := range arns {
		if i == maxMalformedListed {
			uc.console.LogWarning("  ... and %d more", len(arns)-maxMalformedListed)
			break
		}
		uc.console.LogWarning("  %q", arn)
	}
}

func (uc *InventoryUseCase) summaryTable(summary entity.ReportSummary) types.TableInterface {
	table := uc.console.CreateTable()
	table.AddColumn("Resource Type")
	table.AddColumn("Count")
	for _, c := range summary.TopTypes {
		table.AddRow(pterm.FgYellow.Sprint(c.Key), c.Count)
	}
	table.AddRow(pterm.Bold.Sprint("Total"), summary.TotalResources)
	return table
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
