// Package config handles the configuration of the rolodexd server, assembled
// from a config file, environment variables and command line flags.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"

	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"

	"github.com/rolodexd/rolodexd/usecases/monitoring"
)

// DefaultConfigFile is the default file when no config file is provided
const DefaultConfigFile string = "./rolodexd.conf.json"

// DefaultListenAddress is where the HTTP server binds when nothing else is
// configured
const DefaultListenAddress string = "127.0.0.1:8000"

// DefaultPersistenceDataPath is the default location for the data directory
// when no location is provided
const DefaultPersistenceDataPath string = "./data"

const (
	DefaultCORSAllowOrigin  = "*"
	DefaultCORSAllowMethods = "*"
	DefaultCORSAllowHeaders = "Content-Type, Authorization"
)

// Flags are input options
type Flags struct {
	ConfigFile    string `long:"config-file" description:"path to config file (default: ./rolodexd.conf.json)"`
	ListenAddress string `long:"listen" description:"address the HTTP server binds to"`
	DataPath      string `long:"data-path" description:"directory the contact files are stored in"`
}

// Config outline of the config file
type Config struct {
	Name          string            `json:"name" yaml:"name"`
	Debug         bool              `json:"debug" yaml:"debug"`
	ListenAddress string            `json:"listen_address" yaml:"listen_address"`
	Origin        string            `json:"origin" yaml:"origin"`
	Persistence   Persistence       `json:"persistence" yaml:"persistence"`
	CORS          CORS              `json:"cors" yaml:"cors"`
	Monitoring    monitoring.Config `json:"monitoring" yaml:"monitoring"`
}

type Persistence struct {
	DataPath string `json:"dataPath" yaml:"dataPath"`
}

func (p Persistence) Validate() error {
	if p.DataPath == "" {
		return fmt.Errorf("persistence.dataPath must be set")
	}

	return nil
}

type CORS struct {
	AllowOrigin  string `json:"allow_origin" yaml:"allow_origin"`
	AllowMethods string `json:"allow_methods" yaml:"allow_methods"`
	AllowHeaders string `json:"allow_headers" yaml:"allow_headers"`
}

// Validate the configuration
func (c *Config) Validate() error {
	if c.ListenAddress == "" {
		return configErr(fmt.Errorf("listen_address must be set"))
	}

	if err := c.Persistence.Validate(); err != nil {
		return configErr(err)
	}

	return nil
}

// ServerConfig wraps the resolved config
type ServerConfig struct {
	Config Config
}

// LoadConfig from config locations. The load order for configuration values
// is the following
// 1. Config file
// 2. Environment variables
// 3. Command line flags
// If a config option is specified multiple times in different locations, the
// latest one will be used in this order.
func (f *ServerConfig) LoadConfig(flags *Flags, logger logrus.FieldLogger) error {
	f.Config = Config{
		ListenAddress: DefaultListenAddress,
		Persistence:   Persistence{DataPath: DefaultPersistenceDataPath},
		CORS: CORS{
			AllowOrigin:  DefaultCORSAllowOrigin,
			AllowMethods: DefaultCORSAllowMethods,
			AllowHeaders: DefaultCORSAllowHeaders,
		},
	}

	configFileName := flags.ConfigFile
	explicit := configFileName != ""
	if configFileName == "" {
		configFileName = DefaultConfigFile
	}

	file, err := os.ReadFile(configFileName)
	if err != nil && explicit {
		// a missing default file is fine, a missing requested file is not
		return configErr(pkgerrors.Wrap(err, "read config file"))
	}

	if len(file) > 0 {
		logger.
			WithField("action", "config_load").
			WithField("config_file_path", configFileName).
			Info("loading config file")

		if err := parseConfigFile(file, configFileName, &f.Config); err != nil {
			return configErr(err)
		}
	}

	if err := FromEnv(&f.Config); err != nil {
		return configErr(err)
	}

	f.fromFlags(flags)

	return f.Config.Validate()
}

func parseConfigFile(file []byte, name string, config *Config) error {
	m := regexp.MustCompile(`.*\.(\w+)$`).FindStringSubmatch(name)
	if len(m) < 2 {
		return fmt.Errorf("config file does not have a file ending, got '%s'", name)
	}

	switch m[1] {
	case "json":
		if err := json.Unmarshal(file, config); err != nil {
			return fmt.Errorf("error unmarshalling the json config file: %w", err)
		}
	case "yaml", "yml":
		if err := yaml.Unmarshal(file, config); err != nil {
			return fmt.Errorf("error unmarshalling the yaml config file: %w", err)
		}
	default:
		return fmt.Errorf("unsupported config file extension '%s', use .yaml or .json", m[1])
	}

	return nil
}

// fromFlags parses values from flags given as parameter and overrides values
// in the config
func (f *ServerConfig) fromFlags(flags *Flags) {
	if flags.ListenAddress != "" {
		f.Config.ListenAddress = flags.ListenAddress
	}

	if flags.DataPath != "" {
		f.Config.Persistence.DataPath = flags.DataPath
	}
}

func configErr(err error) error {
	return fmt.Errorf("invalid config: %w", err)
}
