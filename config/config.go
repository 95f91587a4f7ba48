package config

import (
	"os"
	"strconv"

	"github.com/juju/errors"
	"gopkg.in/yaml.v3"
)

// Config - настройки сервера разметки.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Storage StorageConfig `yaml:"storage"`
	Journal JournalConfig `yaml:"journal"`
}

type ServerConfig struct {
	Port      int    `yaml:"port"`
	Mode      string `yaml:"mode"` // release, debug, test
	StaticDir string `yaml:"static_dir"`
	IndexFile string `yaml:"index_file"`
}

type StorageConfig struct {
	DataDir      string `yaml:"data_dir"`
	TemplateFile string `yaml:"template_file"`
}

// JournalConfig - пустой путь отключает журнал.
type JournalConfig struct {
	Path string `yaml:"path"`
}

func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:      8000,
			Mode:      "release",
			StaticDir: ".",
			IndexFile: "annotation_tool.html",
		},
		Storage: StorageConfig{
			DataDir:      ".",
			TemplateFile: "annotations_empty.csv",
		},
	}
}

// Load читает YAML поверх значений по умолчанию. Пустой путь - только умолчания
// и переменные окружения.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Annotatef(err, "read config %s", path)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.Annotatef(err, "parse config %s", path)
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv("ANNOTATION_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return errors.NotValidf("ANNOTATION_PORT %q", v)
		}
		c.Server.Port = port
	}
	if v := os.Getenv("ANNOTATION_DATA_DIR"); v != "" {
		c.Storage.DataDir = v
	}
	if v := os.Getenv("ANNOTATION_JOURNAL"); v != "" {
		c.Journal.Path = v
	}
	if v := os.Getenv("GIN_MODE"); v != "" {
		c.Server.Mode = v
	}
	return nil
}

func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return errors.NotValidf("port %d", c.Server.Port)
	}
	switch c.Server.Mode {
	case "release", "debug", "test":
	default:
		return errors.NotValidf("server mode %q", c.Server.Mode)
	}
	if c.Storage.DataDir == "" {
		return errors.NotValidf("empty data dir")
	}
	if c.Storage.TemplateFile == "" {
		return errors.NotValidf("empty template file")
	}
	return nil
}

