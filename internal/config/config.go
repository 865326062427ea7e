// Package config handles loading propdemo.toml configuration files.
package config

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/amonks/propdemo/alias"
	"github.com/amonks/propdemo/internal/paths"
)

// ProjectFileName is the name of the per-directory config file.
const ProjectFileName = "propdemo.toml"

// Config represents the merged propdemo configuration.
type Config struct {
	Selector Selector `toml:"selector"`

	// Properties are fallback property values, flattened to dotted names.
	Properties map[string]string `toml:"-"`
}

// Selector configures how property names are chosen from option aliases.
type Selector struct {
	// Policy names the alias policy, see alias.Policies.
	Policy string `toml:"policy"`
	// Separator is used by the separator policy.
	Separator string `toml:"separator"`
}

type file struct {
	Selector   Selector       `toml:"selector"`
	Properties map[string]any `toml:"properties"`
}

// Load loads configuration from dir and the global config file.
// Returns an empty config if no config files exist.
func Load(dir string) (*Config, error) {
	return load(filepath.Join(dir, ProjectFileName), false)
}

// LoadPath loads configuration from an explicit project file and the global
// config file. Unlike Load, the project file must exist.
func LoadPath(path string) (*Config, error) {
	return load(path, true)
}

func load(projectPath string, required bool) (*Config, error) {
	globalPath, err := paths.GlobalConfigPath()
	if err != nil {
		return nil, err
	}

	globalCfg, globalMeta, err := loadConfigFile(globalPath, false)
	if err != nil {
		return nil, err
	}

	projectCfg, projectMeta, err := loadConfigFile(projectPath, required)
	if err != nil {
		return nil, err
	}

	return mergeConfigs(globalCfg, projectCfg, globalMeta, projectMeta), nil
}

func loadConfigFile(path string, required bool) (*file, toml.MetaData, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) && !required {
		return &file{}, toml.MetaData{}, nil
	}
	if err != nil {
		return nil, toml.MetaData{}, fmt.Errorf("read config file %s: %w", path, err)
	}

	var cfg file
	meta, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, toml.MetaData{}, fmt.Errorf("parse config file %s: %w", path, err)
	}

	return &cfg, meta, nil
}

func mergeConfigs(globalCfg, projectCfg *file, globalMeta, projectMeta toml.MetaData) *Config {
	if globalCfg == nil {
		globalCfg = &file{}
	}
	if projectCfg == nil {
		projectCfg = &file{}
	}

	merged := Config{Properties: map[string]string{}}
	merged.Selector.Policy = mergeString(projectMeta.IsDefined("selector", "policy"), projectCfg.Selector.Policy, globalCfg.Selector.Policy)
	merged.Selector.Separator = mergeString(projectMeta.IsDefined("selector", "separator"), projectCfg.Selector.Separator, globalCfg.Selector.Separator)

	maps.Copy(merged.Properties, flattenProperties(globalCfg.Properties))
	maps.Copy(merged.Properties, flattenProperties(projectCfg.Properties))

	return &merged
}

func mergeString(projectDefined bool, projectValue, globalValue string) string {
	value := globalValue
	if projectDefined {
		value = projectValue
	}
	return strings.TrimSpace(value)
}

// flattenProperties turns nested tables into dotted names, so that
//
//	[properties]
//	myapp.output-charset = "UTF-8"
//
// yields "myapp.output-charset". Arrays are comma-joined.
func flattenProperties(values map[string]any) map[string]string {
	flat := map[string]string{}
	var walk func(prefix string, value any)
	walk = func(prefix string, value any) {
		switch typed := value.(type) {
		case map[string]any:
			for key, nested := range typed {
				name := key
				if prefix != "" {
					name = prefix + "." + key
				}
				walk(name, nested)
			}
		case []any:
			parts := make([]string, len(typed))
			for i, item := range typed {
				parts[i] = fmt.Sprint(item)
			}
			flat[prefix] = strings.Join(parts, ",")
		default:
			flat[prefix] = fmt.Sprint(typed)
		}
	}
	for key, value := range values {
		walk(key, value)
	}
	return flat
}

// Policy returns the configured alias policy, or alias.DefaultPolicy when none is set.
func (c *Config) Policy() (alias.Policy, error) {
	if c.Selector.Policy == "" {
		return alias.DefaultPolicy, nil
	}
	policy, err := alias.ParsePolicy(c.Selector.Policy)
	if err != nil {
		return "", fmt.Errorf("config selector.policy: %w", err)
	}
	return policy, nil
}

// Separator returns the configured separator, or alias.DefaultSeparator.
func (c *Config) Separator() string {
	if c.Selector.Separator == "" {
		return alias.DefaultSeparator
	}
	return c.Selector.Separator
}

// PropertyNames returns the configured property names in sorted order.
func (c *Config) PropertyNames() []string {
	return slices.Sorted(maps.Keys(c.Properties))
}
