package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/diillson/aws-tag-inventory-go/internal/domain/repository"
	"github.com/diillson/aws-tag-inventory-go/internal/shared/types"
	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"
)

// ConfigRepositoryImpl implementa o ConfigRepository.
type ConfigRepositoryImpl struct{}

// NewConfigRepository cria uma nova implementação do ConfigRepository.
func NewConfigRepository() repository.ConfigRepository {
	return &ConfigRepositoryImpl{}
}

type decodeFunc func(data []byte, v interface{}) error

var decoders = map[string]decodeFunc{
	".toml": toml.Unmarshal,
	".yaml": yaml.Unmarshal,
	".yml":  yaml.Unmarshal,
	".json": json.Unmarshal,
}

// LoadConfigFile carrega um arquivo de configuração TOML, YAML ou JSON.
func (r *ConfigRepositoryImpl) LoadConfigFile(filePath string) (*types.Config, error) {
	fileExtension := strings.ToLower(filepath.Ext(filePath))

	fileInfo, err := os.Stat(filePath)
	if err != nil {
		return nil, fmt.Errorf("error accessing config file: %w", err)
	}
	if fileInfo.IsDir() {
		return nil, fmt.Errorf("%s is a directory, not a file", filePath)
	}

	decode, ok := decoders[fileExtension]
	if !ok {
		return nil, fmt.Errorf("unsupported config file format: %s", fileExtension)
	}

	fileData, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var config types.Config
	if err := decode(fileData, &config); err != nil {
		format := strings.ToUpper(strings.TrimPrefix(fileExtension, "."))
		if format == "YML" {
			format = "YAML"
		}
		return nil, fmt.Errorf("error parsing %s file: %w", format, err)
	}

	config.Output = expandPath(config.Output)
	for i, t := range config.ReportType {
		config.ReportType[i] = strings.ToLower(strings.TrimSpace(t))
	}

	return &config, nil
}

// expandPath resolve variáveis de ambiente e "~" no caminho de saída.
func expandPath(path string) string {
	if path == "" {
		return path
	}
	path = os.ExpandEnv(path)
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}
