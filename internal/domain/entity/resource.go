package entity

import (
	"strings"

	"github.com/diillson/aws-tag-inventory-go/internal/shared/types"
)

// ResourceRecord representa um recurso AWS com tags, normalizado a partir do ARN.
type ResourceRecord struct {
	ARN          string `json:"arn"`
	ResourceType string `json:"resource_type"`
	Region       string `json:"region"`
	Tags         TagMap `json:"tags"`
}

// NewResourceRecord extrai tipo (segmento 2) e região (segmento 3) do ARN.
// ARNs com menos de 4 segmentos retornam *types.MalformedARNError.
func NewResourceRecord(arn string, tags TagMap) (ResourceRecord, error) {
	parts := strings.Split(arn, ":")
	if len(parts) < 4 {
		return ResourceRecord{}, &types.MalformedARNError{ARN: arn}
	}
	return ResourceRecord{
		ARN:          arn,
		ResourceType: parts[2],
		Region:       parts[3],
		Tags:         tags,
	}, nil
}

// ResourceTable mantém os registros na ordem em que a API os retornou.
type ResourceTable []ResourceRecord

// TagInventory é o resultado de uma coleta.
type TagInventory struct {
	Resources ResourceTable `json:"resources"`
	// Malformed lista os ARNs ignorados por terem menos de 4 segmentos.
	Malformed []string `json:"malformed,omitempty"`
	Regions   []string `json:"regions,omitempty"`
}

// Append concatena outra coleta preservando a ordem.
func (inv *TagInventory) Append(other TagInventory) {
	inv.Resources = append(inv.Resources, other.Resources...)
	inv.Malformed = append(inv.Malformed, other.Malformed...)
	inv.Regions = append(inv.Regions, other.Regions...)
}

// CountEntry é uma linha de contagem agregada.
type CountEntry struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// AggregateCount é ordenado por contagem decrescente; empates seguem a ordem em que a chave apareceu.
type AggregateCount []CountEntry

// Total soma todas as contagens.
func (a AggregateCount) Total() int {
	total := 0
	for _, e := range a {
		total += e.Count
	}
	return total
}

// Top retorna no máximo n entradas.
func (a AggregateCount) Top(n int) AggregateCount {
	if n < 0 || len(a) <= n {
		return a
	}
	return a[:n]
}
