package report

import (
	"sort"

	"github.com/diillson/aws-tag-inventory-go/internal/domain/entity"
)

// CountKeys conta as ocorrências de cada chave. O resultado é ordenado por
// contagem decrescente; empates mantêm a ordem da primeira aparição.
func CountKeys(keys []string) entity.AggregateCount {
	index := make(map[string]int)
	counts := entity.AggregateCount{}
	for _, k := range keys {
		if i, ok := index[k]; ok {
			counts[i].Count++
			continue
		}
		index[k] = len(counts)
		counts = append(counts, entity.CountEntry{Key: k, Count: 1})
	}

	// counts está em ordem de primeira aparição, então um sort estável resolve os empates.
	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})
	return counts
}

// CountBy agrupa a tabela pela chave extraída de cada registro.
func CountBy(table entity.ResourceTable, key func(entity.ResourceRecord) string) entity.AggregateCount {
	keys := make([]string, 0, len(table))
	for _, r := range table {
		keys = append(keys, key(r))
	}
	return CountKeys(keys)
}

// CountTagKeys conta as chaves de tag sobre todos os registros (multiconjunto).
func CountTagKeys(table entity.ResourceTable) entity.AggregateCount {
	var keys []string
	for _, r := range table {
		keys = append(keys, r.Tags.Keys()...)
	}
	return CountKeys(keys)
}

func byResourceType(r entity.ResourceRecord) string { return r.ResourceType }

func byRegion(r entity.ResourceRecord) string { return r.Region }
