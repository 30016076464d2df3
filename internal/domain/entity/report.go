package entity

// ChartKind identifica o tipo de gráfico embutido numa planilha.
type ChartKind string

const (
	ChartBar ChartKind = "bar"
	ChartPie ChartKind = "pie"
)

// CellRange é um intervalo retangular de células, 1-based e inclusivo.
type CellRange struct {
	Sheet    string
	FirstRow int
	LastRow  int
	FirstCol int
	LastCol  int
}

// Rows retorna quantas linhas o intervalo cobre.
func (r CellRange) Rows() int {
	return r.LastRow - r.FirstRow + 1
}

// Valid indica se o intervalo cobre pelo menos uma célula.
func (r CellRange) Valid() bool {
	return r.Sheet != "" && r.FirstRow >= 1 && r.FirstCol >= 1 && r.LastRow >= r.FirstRow && r.LastCol >= r.FirstCol
}

// Chart descreve um gráfico ligado a colunas da própria planilha.
type Chart struct {
	Kind       ChartKind
	Title      string
	Anchor     string
	SeriesName CellRange
	Categories CellRange
	Values     CellRange
}

// Sheet é uma aba do relatório: cabeçalho (em negrito), linhas e gráfico opcional.
type Sheet struct {
	Name   string
	Header []string
	Rows   [][]interface{}
	Chart  *Chart
}

// RowCount inclui a linha de cabeçalho.
func (s Sheet) RowCount() int {
	return len(s.Rows) + 1
}

// ReportDocument é a sequência ordenada de abas que vira o arquivo XLSX.
type ReportDocument struct {
	Sheets []Sheet
	// Summary guarda as agregações usadas para montar as abas.
	Summary ReportSummary
}

// ReportSummary agrupa as contagens calculadas pelo builder.
type ReportSummary struct {
	TotalResources int            `json:"total_resources"`
	TopTypes       AggregateCount `json:"top_types"`
	Regions        AggregateCount `json:"regions"`
	TopTagKeys     AggregateCount `json:"top_tag_keys"`
}

// Sheet retorna a aba com o nome informado.
func (d ReportDocument) Sheet(name string) (Sheet, bool) {
	for _, s := range d.Sheets {
		if s.Name == name {
			return s, true
		}
	}
	return Sheet{}, false
}
