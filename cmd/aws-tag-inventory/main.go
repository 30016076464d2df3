package main

import (
	"fmt"
	"os"

	"github.com/diillson/aws-tag-inventory-go/internal/adapter/driven/aws"
	"github.com/diillson/aws-tag-inventory-go/internal/adapter/driven/config"
	"github.com/diillson/aws-tag-inventory-go/internal/adapter/driven/export"
	"github.com/diillson/aws-tag-inventory-go/internal/adapter/driving/cli"
	"github.com/diillson/aws-tag-inventory-go/internal/application/usecase"
	"github.com/diillson/aws-tag-inventory-go/pkg/console"
	"github.com/diillson/aws-tag-inventory-go/pkg/version"
)

func main() {
	app := cli.NewCLIApp(version.Version)

	// Inicializa os repositórios
	awsRepo := aws.NewAWSRepository()
	exportRepo := export.NewExportRepository()
	configRepo := config.NewConfigRepository()
	consoleImpl := console.NewConsole()

	inventoryUseCase := usecase.NewInventoryUseCase(
		awsRepo,
		exportRepo,
		configRepo,
		consoleImpl,
	)
	app.SetInventoryUseCase(inventoryUseCase)

	if err := app.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
