package cli

import (
	"context"

	"github.com/diillson/aws-tag-inventory-go/pkg/version"

	"github.com/diillson/aws-tag-inventory-go/internal/shared/types"
	"github.com/spf13/cobra"
)

// InventoryRunner é o caso de uso executado pelo comando raiz.
type InventoryRunner interface {
	RunInventory(ctx context.Context, args *types.CLIArgs) error
}

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd          *cobra.Command
	inventoryUseCase InventoryRunner
	version          string
	quiet            bool
}

// NewCLIApp cria uma nova aplicação CLI.
func NewCLIApp(versionStr string) *CLIApp {
	app := &CLIApp{
		version: versionStr,
	}

	rootCmd := &cobra.Command{
		Use:           "aws-tag-inventory",
		Short:         "Inventory of tagged AWS resources exported to an Excel workbook",
		Version:       version.FormatVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE:          app.runCommand,
	}

	rootCmd.SetVersionTemplate(`{{printf "AWS Tag Inventory version: %s\n" .Version}}`)

	rootCmd.PersistentFlags().StringP("config-file", "C", "", "Path to a TOML, YAML, or JSON configuration file")
	rootCmd.PersistentFlags().StringP("profile", "p", "", "AWS profile to use (default: finops-tag-inventory)")
	rootCmd.PersistentFlags().StringP("region", "r", "", "AWS region to query (default: the profile's region)")
	rootCmd.PersistentFlags().BoolP("all-regions", "a", false, "Query every region enabled for the account")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Report destination, a .xlsx file or a directory (skips the prompt)")
	rootCmd.PersistentFlags().StringSliceP("report-type", "y", nil, "Extra report types written next to the workbook: csv, json, pdf")

	app.rootCmd = rootCmd
	return app
}

// Execute runs the CLI application.
func (app *CLIApp) Execute() error {
	return app.rootCmd.Execute()
}

// parseArgs parses command-line arguments into a CLIArgs struct.
func (app *CLIApp) parseArgs() *types.CLIArgs {
	flags := app.rootCmd.Flags()
	configFile, _ := flags.GetString("config-file")
	profile, _ := flags.GetString("profile")
	region, _ := flags.GetString("region")
	allRegions, _ := flags.GetBool("all-regions")
	output, _ := flags.GetString("output")
	reportType, _ := flags.GetStringSlice("report-type")

	return &types.CLIArgs{
		ConfigFile: configFile,
		Profile:    profile,
		Region:     region,
		AllRegions: allRegions,
		Output:     output,
		ReportType: reportType,
	}
}

// runCommand é o ponto de entrada principal para o comando CLI.
func (app *CLIApp) runCommand(cmd *cobra.Command, args []string) error {
	if !app.quiet {
		displayWelcomeBanner()
		go version.CheckLatestVersion(app.version)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return app.inventoryUseCase.RunInventory(ctx, app.parseArgs())
}

// SetInventoryUseCase sets the inventory use case for the CLI app.
func (app *CLIApp) SetInventoryUseCase(useCase InventoryRunner) {
	app.inventoryUseCase = useCase
}
