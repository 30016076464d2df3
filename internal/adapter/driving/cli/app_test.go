package cli

import (
	"context"
	"errors"
	"testing"

	"github.com/diillson/aws-tag-inventory-go/internal/shared/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingRunner struct {
	args *types.CLIArgs
	err  error
}

func (r *recordingRunner) RunInventory(ctx context.Context, args *types.CLIArgs) error {
	r.args = args
	return r.err
}

func newQuietApp(runner InventoryRunner, argv ...string) *CLIApp {
	app := NewCLIApp("0.0.0-dev")
	app.quiet = true
	app.SetInventoryUseCase(runner)
	// slice vazio evita que o cobra leia os.Args do binário de teste
	app.rootCmd.SetArgs(append([]string{}, argv...))
	return app
}

func TestExecuteParsesFlags(t *testing.T) {
	runner := &recordingRunner{}
	app := newQuietApp(runner,
		"-C", "inventory.yaml",
		"-p", "audit",
		"-r", "eu-west-1",
		"-o", "/reports/inv.xlsx",
		"-y", "csv,json",
	)

	require.NoError(t, app.Execute())
	require.NotNil(t, runner.args)
	assert.Equal(t, &types.CLIArgs{
		ConfigFile: "inventory.yaml",
		Profile:    "audit",
		Region:     "eu-west-1",
		Output:     "/reports/inv.xlsx",
		ReportType: []string{"csv", "json"},
	}, runner.args)
}

func TestExecuteDefaults(t *testing.T) {
	runner := &recordingRunner{}
	app := newQuietApp(runner, "--all-regions")

	require.NoError(t, app.Execute())
	assert.True(t, runner.args.AllRegions)
	assert.Empty(t, runner.args.Profile)
	assert.Empty(t, runner.args.ReportType)
}

func TestExecutePropagatesUseCaseError(t *testing.T) {
	runner := &recordingRunner{err: types.ErrAuthentication}
	app := newQuietApp(runner)

	err := app.Execute()
	assert.True(t, errors.Is(err, types.ErrAuthentication))
}

func TestExecuteRejectsPositionalArgs(t *testing.T) {
	runner := &recordingRunner{}
	app := newQuietApp(runner, "unexpected")

	assert.Error(t, app.Execute())
	assert.Nil(t, runner.args)
}
