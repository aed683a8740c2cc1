package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// EnvConfig holds process settings read from FKPG_* environment variables
type EnvConfig struct {
	AppName     string `envconfig:"APP_NAME" default:"fallen-knight"`
	AssetDir    string `envconfig:"ASSET_DIR" default:"assets"`
	DialogDir   string `envconfig:"DIALOG_DIR"` // when set, dialog scripts are read from here and reloaded on change
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`
	LogEncoding string `envconfig:"LOG_ENCODING" default:"console"`
	SkipMenu    bool   `envconfig:"SKIP_MENU" default:"false"`
}

// LoadEnv reads EnvConfig from the environment
func LoadEnv() (EnvConfig, error) {
	var env EnvConfig
	if err := envconfig.Process("fkpg", &env); err != nil {
		return EnvConfig{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return env, nil
}
