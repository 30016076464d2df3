package report

import (
	"fmt"
	"testing"

	"github.com/diillson/aws-tag-inventory-go/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sheet(t *testing.T, doc entity.ReportDocument, name string) entity.Sheet {
	t.Helper()
	s, ok := doc.Sheet(name)
	require.True(t, ok, "missing sheet %q", name)
	return s
}

func TestBuildSheetOrder(t *testing.T) {
	doc := Build(entity.ResourceTable{record(t, "arn:aws:ec2:us-east-1:111:instance/i-1", "env", "prod")})

	var names []string
	for _, s := range doc.Sheets {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{SheetFullInventory, SheetTopTypes, SheetRegions, SheetTopTags}, names)
}

func TestBuildSingleRecordScenario(t *testing.T) {
	doc := Build(entity.ResourceTable{record(t, "arn:aws:ec2:us-east-1:111:instance/i-1", "env", "prod")})

	inv := sheet(t, doc, SheetFullInventory)
	assert.Equal(t, 2, inv.RowCount())
	assert.Equal(t, []string{"ResourceARN", "ResourceType", "Region", "Tags"}, inv.Header)
	assert.Equal(t, []interface{}{"arn:aws:ec2:us-east-1:111:instance/i-1", "ec2", "us-east-1", "env=prod"}, inv.Rows[0])

	assert.Equal(t, [][]interface{}{{"ec2", 1}}, sheet(t, doc, SheetTopTypes).Rows)
	assert.Equal(t, [][]interface{}{{"us-east-1", 1}}, sheet(t, doc, SheetRegions).Rows)
	assert.Equal(t, [][]interface{}{{"env", 1}}, sheet(t, doc, SheetTopTags).Rows)
}

func TestBuildInventoryKeepsInputOrder(t *testing.T) {
	arns := []string{
		"arn:aws:s3:::zeta",
		"arn:aws:ec2:us-east-1:111:instance/i-9",
		"arn:aws:s3:::alpha",
	}
	var table entity.ResourceTable
	for _, a := range arns {
		table = append(table, record(t, a))
	}

	inv := sheet(t, Build(table), SheetFullInventory)
	require.Len(t, inv.Rows, len(table))
	for i, a := range arns {
		assert.Equal(t, a, inv.Rows[i][0])
		assert.Equal(t, "", inv.Rows[i][3])
	}
}

func TestBuildTopNTruncation(t *testing.T) {
	var table entity.ResourceTable
	for i := 0; i < 15; i++ {
		table = append(table, record(t,
			fmt.Sprintf("arn:aws:svc%02d:region-%02d:111:thing/%d", i, i, i),
			fmt.Sprintf("key%02d", i), "v"))
	}

	doc := Build(table)
	assert.Len(t, sheet(t, doc, SheetTopTypes).Rows, TopN)
	assert.Len(t, sheet(t, doc, SheetTopTags).Rows, TopN)
	// regiões não são truncadas
	assert.Len(t, sheet(t, doc, SheetRegions).Rows, 15)
	assert.Equal(t, 16, sheet(t, doc, SheetRegions).RowCount())
}

func TestBuildFewerThanTopN(t *testing.T) {
	table := entity.ResourceTable{
		record(t, "arn:aws:s3:::a", "env", "x"),
		record(t, "arn:aws:ec2:us-east-1:111:instance/i-1", "owner", "y"),
	}
	doc := Build(table)
	assert.Len(t, sheet(t, doc, SheetTopTypes).Rows, 2)
	assert.Len(t, sheet(t, doc, SheetTopTags).Rows, 2)
}

func TestBuildChartRangesMatchTable(t *testing.T) {
	var table entity.ResourceTable
	for i := 0; i < 12; i++ {
		table = append(table, record(t, fmt.Sprintf("arn:aws:svc%d:us-east-%d:111:x/%d", i, i%3, i)))
	}
	doc := Build(table)

	for _, name := range []string{SheetTopTypes, SheetRegions} {
		s := sheet(t, doc, name)
		require.NotNil(t, s.Chart, name)
		c := s.Chart

		assert.Equal(t, "E2", c.Anchor)
		assert.Equal(t, entity.CellRange{Sheet: name, FirstRow: 1, LastRow: 1, FirstCol: 2, LastCol: 2}, c.SeriesName)
		assert.Equal(t, 2, c.Categories.FirstRow)
		assert.Equal(t, s.RowCount(), c.Categories.LastRow)
		assert.Equal(t, len(s.Rows), c.Values.Rows())
		assert.Equal(t, c.Categories.FirstRow, c.Values.FirstRow)
		assert.Equal(t, c.Categories.LastRow, c.Values.LastRow)
		assert.Equal(t, 1, c.Categories.FirstCol)
		assert.Equal(t, 2, c.Values.FirstCol)
	}

	assert.Equal(t, entity.ChartBar, sheet(t, doc, SheetTopTypes).Chart.Kind)
	assert.Equal(t, entity.ChartPie, sheet(t, doc, SheetRegions).Chart.Kind)
	assert.Nil(t, sheet(t, doc, SheetTopTags).Chart)
	assert.Nil(t, sheet(t, doc, SheetFullInventory).Chart)
}

func TestBuildEmptyTableHasNoCharts(t *testing.T) {
	doc := Build(nil)
	require.Len(t, doc.Sheets, 4)
	for _, s := range doc.Sheets {
		assert.Equal(t, 1, s.RowCount())
		assert.Nil(t, s.Chart)
	}
}

func TestBuildIsIdempotent(t *testing.T) {
	table := entity.ResourceTable{
		record(t, "arn:aws:s3:::a", "env", "prod", "team", "x"),
		record(t, "arn:aws:s3:::b", "env", "dev"),
		record(t, "arn:aws:ec2:us-east-1:111:instance/i-1", "team", "y"),
	}
	assert.Equal(t, Build(table), Build(table))
}

func TestBuildSummary(t *testing.T) {
	table := entity.ResourceTable{
		record(t, "arn:aws:s3:::a", "env", "prod"),
		record(t, "arn:aws:s3:::b"),
		record(t, "arn:aws:ec2:us-east-1:111:instance/i-1"),
	}
	summary := Build(table).Summary
	assert.Equal(t, 3, summary.TotalResources)
	assert.Equal(t, entity.AggregateCount{{Key: "s3", Count: 2}, {Key: "ec2", Count: 1}}, summary.TopTypes)
	assert.Equal(t, entity.AggregateCount{{Key: "", Count: 2}, {Key: "us-east-1", Count: 1}}, summary.Regions)
}
