package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sync/atomic"

	"github.com/a7coder/ETF-Analyze/model"

	"github.com/joho/godotenv"
)

type SystemConfigs struct {
	Config *model.EnvConfig
}

// LoadConfigs reads the 'config' env variable (optionally via .env).
// An absent config is not fatal; the dashboard falls back to local
// defaults so it can run standalone.
func LoadConfigs() (*SystemConfigs, error) {
	godotenv.Load()

	rawJson := os.Getenv("config")
	if rawJson == "" {
		return &SystemConfigs{Config: defaultConfig()}, nil
	}

	var envCfg model.EnvConfig
	err := json.Unmarshal([]byte(rawJson), &envCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if envCfg.Port == "" {
		envCfg.Port = "8080"
	}
	if len(envCfg.FrontendUrls) == 0 {
		envCfg.FrontendUrls = defaultConfig().FrontendUrls
	}

	return &SystemConfigs{
		Config: &envCfg,
	}, nil
}

func defaultConfig() *model.EnvConfig {
	return &model.EnvConfig{
		Port:         "8080",
		Environment:  "development",
		FrontendUrls: []string{"http://localhost:3000"},
		RateLimiter:  false,
	}
}

type ConfigManager struct {
	value atomic.Value
}

func NewConfigManager(initial *model.EnvConfig) *ConfigManager {
	cm := &ConfigManager{}
	cm.value.Store(initial)
	return cm
}

func (cm *ConfigManager) GetConfig() *model.EnvConfig {
	return cm.value.Load().(*model.EnvConfig)
}

func (cm *ConfigManager) UpdateConfig(newCfg *model.EnvConfig) {
	cm.value.Store(newCfg)
}
