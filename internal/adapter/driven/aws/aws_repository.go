package aws

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/resourcegroupstaggingapi"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/aws/smithy-go"
	"github.com/diillson/aws-tag-inventory-go/internal/domain/entity"
	"github.com/diillson/aws-tag-inventory-go/internal/domain/repository"
	"github.com/diillson/aws-tag-inventory-go/internal/shared/types"
)

const (
	// PageSize é o número de recursos pedidos por página à Tagging API.
	PageSize = 50

	defaultRegion = "us-east-1"
)

type stsAPI interface {
	GetCallerIdentity(ctx context.Context, params *sts.GetCallerIdentityInput, optFns ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error)
}

type ec2RegionsAPI interface {
	DescribeRegions(ctx context.Context, params *ec2.DescribeRegionsInput, optFns ...func(*ec2.Options)) (*ec2.DescribeRegionsOutput, error)
}

// AWSRepositoryImpl implementa o AWSRepository com cache de configs e clientes.
type AWSRepositoryImpl struct {
	cfgCache    map[string]aws.Config
	clientCache map[string]interface{}
	mu          sync.Mutex

	loadConfig func(ctx context.Context, profile string) (aws.Config, error)
	newClient  func(service string, cfg aws.Config) (interface{}, error)
}

// NewAWSRepository cria uma nova implementação do AWSRepository.
func NewAWSRepository() repository.AWSRepository {
	return newAWSRepository()
}

func newAWSRepository() *AWSRepositoryImpl {
	return &AWSRepositoryImpl{
		cfgCache:    make(map[string]aws.Config),
		clientCache: make(map[string]interface{}),
		loadConfig:  loadSharedConfig,
		newClient:   newServiceClient,
	}
}

func loadSharedConfig(ctx context.Context, profile string) (aws.Config, error) {
	return config.LoadDefaultConfig(ctx, config.WithSharedConfigProfile(profile))
}

func newServiceClient(service string, cfg aws.Config) (interface{}, error) {
	switch service {
	case "sts":
		return sts.NewFromConfig(cfg), nil
	case "ec2":
		return ec2.NewFromConfig(cfg), nil
	case "tagging":
		return resourcegroupstaggingapi.NewFromConfig(cfg), nil
	default:
		return nil, fmt.Errorf("unsupported service: %s", service)
	}
}

// getAWSConfig carrega a config do perfil e resolve as credenciais na hora,
// para que falhas de autenticação apareçam antes da primeira chamada à API.
func (r *AWSRepositoryImpl) getAWSConfig(ctx context.Context, profile string) (aws.Config, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if cfg, ok := r.cfgCache[profile]; ok {
		return cfg, nil
	}

	cfg, err := r.loadConfig(ctx, profile)
	if err != nil {
		return aws.Config{}, fmt.Errorf("%w: failed to load AWS config for profile %s: %w", types.ErrAuthentication, profile, err)
	}
	if cfg.Credentials == nil {
		return aws.Config{}, fmt.Errorf("%w: no credential provider for profile %s", types.ErrAuthentication, profile)
	}
	if _, err := cfg.Credentials.Retrieve(ctx); err != nil {
		return aws.Config{}, fmt.Errorf("%w: profile %s: %w", types.ErrAuthentication, profile, err)
	}

	r.cfgCache[profile] = cfg
	return cfg, nil
}

func (r *AWSRepositoryImpl) getServiceClient(ctx context.Context, profile, region, service string) (interface{}, string, error) {
	cfg, err := r.getAWSConfig(ctx, profile)
	if err != nil {
		return nil, "", err
	}

	regionalCfg := cfg.Copy()
	if region != "" {
		regionalCfg.Region = region
	}
	if regionalCfg.Region == "" {
		regionalCfg.Region = defaultRegion
	}

	cacheKey := fmt.Sprintf("%s-%s-%s", profile, regionalCfg.Region, service)

	r.mu.Lock()
	defer r.mu.Unlock()
	if client, ok := r.clientCache[cacheKey]; ok {
		return client, regionalCfg.Region, nil
	}

	client, err := r.newClient(service, regionalCfg)
	if err != nil {
		return nil, "", err
	}
	r.clientCache[cacheKey] = client
	return client, regionalCfg.Region, nil
}

func (r *AWSRepositoryImpl) GetAccountID(ctx context.Context, profile string) (string, error) {
	client, _, err := r.getServiceClient(ctx, profile, "", "sts")
	if err != nil {
		return "", err
	}
	stsClient := client.(stsAPI)

	result, err := stsClient.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return "", apiError("GetCallerIdentity", profile, err)
	}
	return aws.ToString(result.Account), nil
}

func (r *AWSRepositoryImpl) GetAccessibleRegions(ctx context.Context, profile string) ([]string, error) {
	client, _, err := r.getServiceClient(ctx, profile, "", "ec2")
	if err != nil {
		return nil, err
	}
	ec2Client := client.(ec2RegionsAPI)

	regionsOutput, err := ec2Client.DescribeRegions(ctx, &ec2.DescribeRegionsInput{AllRegions: aws.Bool(false)})
	if err != nil {
		return nil, apiError("DescribeRegions", profile, err)
	}

	accessibleRegions := make([]string, 0, len(regionsOutput.Regions))
	for _, region := range regionsOutput.Regions {
		accessibleRegions = append(accessibleRegions, aws.ToString(region.RegionName))
	}
	sort.Strings(accessibleRegions)
	return accessibleRegions, nil
}

// GetTaggedResources lê todas as páginas de GetResources, uma de cada vez.
// ARNs com menos de 4 segmentos são separados em Malformed e não viram registros.
func (r *AWSRepositoryImpl) GetTaggedResources(ctx context.Context, profile, region string) (entity.TagInventory, error) {
	client, resolvedRegion, err := r.getServiceClient(ctx, profile, region, "tagging")
	if err != nil {
		return entity.TagInventory{}, err
	}
	taggingClient := client.(resourcegroupstaggingapi.GetResourcesAPIClient)

	inventory := entity.TagInventory{
		Resources: entity.ResourceTable{},
		Regions:   []string{resolvedRegion},
	}

	paginator := resourcegroupstaggingapi.NewGetResourcesPaginator(taggingClient, &resourcegroupstaggingapi.GetResourcesInput{
		ResourcesPerPage: aws.Int32(PageSize),
	})
	for paginator.HasMorePages() {
		output, err := paginator.NextPage(ctx)
		if err != nil {
			return entity.TagInventory{}, apiError("GetResources", resolvedRegion, err)
		}

		for _, mapping := range output.ResourceTagMappingList {
			arn := aws.ToString(mapping.ResourceARN)

			tags := entity.NewTagMap()
			for _, tag := range mapping.Tags {
				tags.Set(aws.ToString(tag.Key), aws.ToString(tag.Value))
			}

			record, err := entity.NewResourceRecord(arn, tags)
			if err != nil {
				inventory.Malformed = append(inventory.Malformed, arn)
				continue
			}
			inventory.Resources = append(inventory.Resources, record)
		}
	}

	return inventory, nil
}

// apiError classifica a falha como ErrAPI, incluindo o código do serviço quando houver.
func apiError(operation, scope string, err error) error {
	var ae smithy.APIError
	if errors.As(err, &ae) {
		return fmt.Errorf("%w: %s (%s) returned %s: %w", types.ErrAPI, operation, scope, ae.ErrorCode(), err)
	}
	return fmt.Errorf("%w: %s (%s): %w", types.ErrAPI, operation, scope, err)
}
