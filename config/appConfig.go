package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"ozonsync_api/config/values"
)

type OzonConfig struct {
	BaseURL    string            `yaml:"base_url"`
	OzonValues values.OzonValues `yaml:"default_values"`
}

type TelegramConfig struct {
	FilesDir string `yaml:"files_dir"`
}

type OpsConfig struct {
	Addr string `yaml:"addr"`
}

type LogConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

type AppConfig struct {
	Ozon     OzonConfig     `yaml:"ozon"`
	Telegram TelegramConfig `yaml:"telegram"`
	Ops      OpsConfig      `yaml:"ops"`
	Log      LogConfig      `yaml:"log"`
}

func LoadConfig(filename string) (*AppConfig, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	config := DefaultConfig()
	if err := decoder.Decode(config); err != nil {
		return nil, err
	}
	return config, nil
}

// DefaultConfig returns a config usable without a yaml file.
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Ozon: OzonConfig{
			BaseURL:    "https://api-seller.ozon.ru",
			OzonValues: values.Defaults(),
		},
		Telegram: TelegramConfig{FilesDir: "user_files"},
		Ops:      OpsConfig{Addr: ":9090"},
		Log:      LogConfig{Level: "info"},
	}
}
