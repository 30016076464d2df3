package report

import (
	"testing"

	"github.com/diillson/aws-tag-inventory-go/internal/domain/entity"
	"github.com/stretchr/testify/require"
)

// record monta um registro a partir do ARN e de pares chave/valor.
func record(t *testing.T, arn string, kv ...string) entity.ResourceRecord {
	t.Helper()
	tags := entity.NewTagMap()
	for i := 0; i+1 < len(kv); i += 2 {
		tags.Set(kv[i], kv[i+1])
	}
	rec, err := entity.NewResourceRecord(arn, tags)
	require.NoError(t, err)
	return rec
}
