package nkdemo

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// WindowConfig describes the window and the OpenGL context it requests.
type WindowConfig struct {
	Width   int    `toml:"width"`
	Height  int    `toml:"height"`
	Title   string `toml:"title"`
	GLMajor int    `toml:"gl_major"`
	GLMinor int    `toml:"gl_minor"`
	VSync   bool   `toml:"vsync"`
}

// Config is the demo configuration. Every field has a default, so a config
// file only needs to name what it changes.
type Config struct {
	Window    WindowConfig `toml:"window"`
	ShaderDir string       `toml:"shader_dir"`
	Verbose   bool         `toml:"verbose"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Window: WindowConfig{
			Width:   1000,
			Height:  1000,
			Title:   "Hello World",
			GLMajor: 4,
			GLMinor: 1,
			VSync:   true,
		},
		ShaderDir: "shaders",
	}
}

// LoadConfig reads a TOML file over the defaults. An empty path returns the
// defaults. Unknown keys are an error so typos do not go unnoticed.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// EncodeConfig writes cfg as TOML. The output loads back with LoadConfig.
func EncodeConfig(w io.Writer, cfg Config) error {
	if err := toml.NewEncoder(w).Encode(cfg); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return nil
}

// Validate checks the values a window cannot be created with.
func (c Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	// Core profiles start at 3.2.
	if c.Window.GLMajor < 3 || (c.Window.GLMajor == 3 && c.Window.GLMinor < 2) {
		errs = append(errs, fmt.Errorf("OpenGL %d.%d has no core profile", c.Window.GLMajor, c.Window.GLMinor))
	}
	if c.ShaderDir == "" {
		errs = append(errs, errors.New("shader_dir is empty"))
	}
	return errors.Join(errs...)
}

// ResolveShaderDir turns a relative shader directory into a path that
// exists: first relative to the working directory, then relative to the
// executable. Absolute paths are returned unchanged.
func ResolveShaderDir(dir string) string {
	if filepath.IsAbs(dir) {
		return dir
	}
	if _, err := os.Stat(dir); err == nil {
		return dir
	}
	exe, err := os.Executable()
	if err != nil {
		return dir
	}
	candidate := filepath.Join(filepath.Dir(exe), dir)
	if _, err := os.Stat(candidate); err == nil {
		return candidate
	}
	return dir
}
