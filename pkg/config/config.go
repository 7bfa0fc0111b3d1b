// Package config loads and validates the apkgraph configuration file.
//
// Configuration is a TOML file (config.toml by default) naming the package
// to audit and the repository to audit it against. [Load] applies defaults
// for the optional keys and validates the result; every failure carries a
// CONFIG_* code from [apkerrors].
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/apkgraph/apkgraph/pkg/apkerrors"
)

// Repository modes selecting how the APKINDEX is acquired.
const (
	ModeLocal  = "local"  // repo_path is a directory containing APKINDEX
	ModeRemote = "remote" // repo_path is an APKINDEX.tar.gz URL
	ModeTest   = "test"   // repo_path is a plain APKINDEX-format fixture file
)

// Output image formats.
const (
	FormatPNG = "png"
	FormatSVG = "svg"
)

// Defaults for the optional keys.
const (
	DefaultOutputFile = "deps"
	DefaultMaxDepth   = 2
	DefaultFormat     = FormatPNG
)

// Config holds the recognized configuration options.
type Config struct {
	// PackageName is the root package to audit. Required.
	PackageName string `toml:"package_name"`

	// RepoMode selects the index backing: local, remote, or test. Required.
	RepoMode string `toml:"repo_mode"`

	// RepoPath is a directory, URL, or fixture path depending on RepoMode.
	// Required.
	RepoPath string `toml:"repo_path"`

	// OutputFile is the base name (no extension) for rendered output.
	OutputFile string `toml:"output_file"`

	// ASCIIMode prints the dependency tree to stdout when set.
	ASCIIMode bool `toml:"ascii_mode"`

	// MaxDepth is the inclusive edge-count bound for the traversal.
	MaxDepth int `toml:"max_depth"`

	// FilterSubstring excludes packages whose name contains it.
	// Empty disables filtering.
	FilterSubstring string `toml:"filter_substring"`

	// Format is the rendered image format: png or svg.
	Format string `toml:"format"`
}

// Load reads the TOML file at path, applies defaults, and validates.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apkerrors.Wrap(apkerrors.ErrCodeConfigNotFound, err, "config file %q not found", path)
		}
		return nil, apkerrors.Wrap(apkerrors.ErrCodeConfigParse, err, "read config file %q", path)
	}

	// Start from defaults so absent optional keys keep them; toml only
	// overwrites fields present in the document.
	cfg := &Config{
		OutputFile: DefaultOutputFile,
		MaxDepth:   DefaultMaxDepth,
		Format:     DefaultFormat,
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, apkerrors.Wrap(apkerrors.ErrCodeConfigParse, err, "parse config file %q", path)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks required fields and value ranges.
func (c *Config) Validate() error {
	if c.PackageName == "" {
		return missingField("package_name")
	}
	if c.RepoMode == "" {
		return missingField("repo_mode")
	}
	if c.RepoPath == "" {
		return missingField("repo_path")
	}

	switch c.RepoMode {
	case ModeLocal, ModeRemote, ModeTest:
	default:
		return apkerrors.New(apkerrors.ErrCodeConfigInvalidField,
			"repo_mode must be one of local, remote, test; got %q", c.RepoMode)
	}

	if c.MaxDepth < 0 {
		return apkerrors.New(apkerrors.ErrCodeConfigInvalidField,
			"max_depth must be >= 0, got %d", c.MaxDepth)
	}

	switch c.Format {
	case FormatPNG, FormatSVG:
	default:
		return apkerrors.New(apkerrors.ErrCodeConfigInvalidField,
			"format must be png or svg, got %q", c.Format)
	}

	if ext := extOf(c.OutputFile); ext != "" {
		return apkerrors.New(apkerrors.ErrCodeConfigInvalidField,
			"output_file is a base name, drop the %q extension", ext)
	}

	return nil
}

// OutputPath returns the artifact path for the configured format,
// e.g. "deps.png".
func (c *Config) OutputPath() string {
	return fmt.Sprintf("%s.%s", c.OutputFile, c.Format)
}

func missingField(name string) error {
	return apkerrors.New(apkerrors.ErrCodeConfigMissingField, "missing required config field %q", name)
}

func extOf(base string) string {
	if i := strings.LastIndexByte(base, '.'); i > 0 {
		return base[i:]
	}
	return ""
}
