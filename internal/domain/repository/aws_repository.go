package repository

import (
	"context"

	"github.com/diillson/aws-tag-inventory-go/internal/domain/entity"
)

// AWSRepository defines the interface for AWS API interactions.
type AWSRepository interface {
	// GetAccountID resolve a conta do perfil via STS.
	GetAccountID(ctx context.Context, profile string) (string, error)

	// GetAccessibleRegions lista as regiões habilitadas para o perfil.
	GetAccessibleRegions(ctx context.Context, profile string) ([]string, error)

	// GetTaggedResources percorre todas as páginas da Tagging API em uma região.
	// Região vazia usa a região configurada no perfil.
	GetTaggedResources(ctx context.Context, profile, region string) (entity.TagInventory, error)
}
