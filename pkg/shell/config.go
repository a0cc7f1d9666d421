package shell

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/xyproto/env/v2"
	"gopkg.in/yaml.v3"

	"github.com/Bryantad/Sona-sub001/pkg/eval"
	"github.com/Bryantad/Sona-sub001/pkg/prog"
)

// Names of environment variables that override the configuration file.
const (
	EnvConfig  = "SONA_CONFIG"
	EnvLib     = "SONA_LIB"
	EnvAltLib  = "SONA_ALT_LIB"
	EnvDB      = "SONA_DB"
	EnvNoColor = "NO_COLOR"
)

// Config keeps the settings of the interpreter.
//
// Settings come from, in increasing order of priority: built-in defaults, the
// configuration file, environment variables and command-line flags.
type Config struct {
	// Primary and alternate module roots.
	Lib    string `yaml:"lib"`
	AltLib string `yaml:"alt_lib"`
	// Path of the database backing history and the store module. Empty
	// means no database.
	DB string `yaml:"db"`
	// File extensions tried when probing for a module, in order.
	Extensions []string `yaml:"extensions"`
	// Never style error messages.
	NoColor bool `yaml:"no_color"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Lib:        eval.DefaultModuleRoot,
		AltLib:     eval.DefaultAltModuleRoot,
		Extensions: append([]string(nil), eval.DefaultModuleExtensions...),
	}
}

// Can be overridden in tests.
var userConfigDir = os.UserConfigDir

// DefaultConfigPath returns the path of the configuration file used when
// neither -config nor $SONA_CONFIG is set.
func DefaultConfigPath() (string, error) {
	dir, err := userConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "sona", "config.yaml"), nil
}

// LoadConfig builds the configuration from all sources. A configuration file
// named by -config or $SONA_CONFIG must exist; the one at DefaultConfigPath
// is optional.
func LoadConfig(f *prog.Flags) (*Config, error) {
	cfg := DefaultConfig()

	path, required := f.Config, true
	if path == "" {
		path = env.Str(EnvConfig)
	}
	if path == "" {
		var err error
		path, err = DefaultConfigPath()
		if err != nil {
			logger.Debug().Err(err).Msg("no default configuration path")
		}
		required = false
	}
	if path != "" {
		err := readConfigFile(path, cfg)
		switch {
		case err == nil:
			logger.Debug().Str("path", path).Msg("configuration file loaded")
		case !required && errors.Is(err, fs.ErrNotExist):
		default:
			return nil, err
		}
	}

	overrideString(&cfg.Lib, env.Str(EnvLib), f.Lib)
	overrideString(&cfg.AltLib, env.Str(EnvAltLib), f.AltLib)
	overrideString(&cfg.DB, env.Str(EnvDB), f.DB)
	if env.Str(EnvNoColor) != "" || f.NoColor {
		cfg.NoColor = true
	}
	return cfg, nil
}

// Sets *p to the last non-empty value.
func overrideString(p *string, values ...string) {
	for _, v := range values {
		if v != "" {
			*p = v
		}
	}
}

func readConfigFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	fromFile := *cfg
	fromFile.Extensions = nil
	err = dec.Decode(&fromFile)
	if err != nil && err != io.EOF {
		return fmt.Errorf("%s: %w", path, err)
	}
	for _, ext := range fromFile.Extensions {
		if len(ext) < 2 || ext[0] != '.' {
			return fmt.Errorf("%s: bad module extension %q, should start with a dot", path, ext)
		}
	}
	if len(fromFile.Extensions) == 0 {
		fromFile.Extensions = cfg.Extensions
	}
	*cfg = fromFile
	return nil
}
