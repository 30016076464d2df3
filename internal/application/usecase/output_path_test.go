package usecase

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveOutputPath(t *testing.T) {
	tests := []struct {
		answer string
		want   string
	}{
		{"", DefaultReportFilename},
		{"   ", DefaultReportFilename},
		{"/reports/aws-inventory.xlsx", "/reports/aws-inventory.xlsx"},
		{"  reports/inv.XLSX ", "reports/inv.XLSX"},
		{"/reports", filepath.Join("/reports", DefaultReportFilename)},
		{"/reports/inventory.csv", filepath.Join("/reports/inventory.csv", DefaultReportFilename)},
	}
	for _, tt := range tests {
		t.Run(tt.answer, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveOutputPath(tt.answer))
		})
	}
}

func TestReplaceExt(t *testing.T) {
	assert.Equal(t, "/r/inv.csv", ReplaceExt("/r/inv.xlsx", "csv"))
	assert.Equal(t, "/r/inv.pdf", ReplaceExt("/r/inv.xlsx", ".pdf"))
	assert.Equal(t, "/r/inv.json", ReplaceExt("/r/inv", "json"))
}
