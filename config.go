package verso

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the recognized site options, merged from defaults and an
// optional config.yml or config.yaml in the source directory.
type Config struct {
	AssetsURL    string `yaml:"assets_url"`
	BaseURL      string `yaml:"base_url"`
	DateFormat   string `yaml:"date_format"`
	Markup       string `yaml:"markup"`
	Parser       string `yaml:"parser"`
	PostsURL     string `yaml:"posts_url"`
	Pygmentize   bool   `yaml:"pygmentize"`
	Renderer     string `yaml:"renderer"`
	TagLayout    string `yaml:"tag_layout"`
	TagsURL      string `yaml:"tags_url"`
	FeedURL      string `yaml:"feed_url"`
	TemplatesDir string `yaml:"templates_dir"`

	// Raw carries every key from the config file, including user-defined
	// ones, for exposure to templates as the site context.
	Raw map[string]any `yaml:"-"`
}

func DefaultConfig() Config {
	return Config{
		AssetsURL:    "/assets",
		BaseURL:      "/",
		DateFormat:   "%A, %B %d, %Y",
		Markup:       "markdown",
		Parser:       "blackfriday",
		PostsURL:     "/<year>/<month>/<day>/<title>/",
		Pygmentize:   true,
		Renderer:     "gotemplate",
		TagsURL:      "/",
		TemplatesDir: "_templates",
	}
}

func (c Config) rawDefaults() map[string]any {
	return map[string]any{
		"assets_url":    c.AssetsURL,
		"base_url":      c.BaseURL,
		"date_format":   c.DateFormat,
		"markup":        c.Markup,
		"parser":        c.Parser,
		"posts_url":     c.PostsURL,
		"pygmentize":    c.Pygmentize,
		"renderer":      c.Renderer,
		"tag_layout":    c.TagLayout,
		"tags_url":      c.TagsURL,
		"feed_url":      c.FeedURL,
		"templates_dir": c.TemplatesDir,
	}
}

// LoadConfig looks for config.yml or config.yaml under src and merges it
// over the defaults. A missing file is not an error; a malformed one is a
// ConfigError carrying the path.
func LoadConfig(src string) (Config, error) {
	conf := DefaultConfig()
	conf.Raw = conf.rawDefaults()

	for _, name := range []string{"config.yml", "config.yaml"} {
		path := filepath.Join(src, name)

		content, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return conf, &ConfigError{Path: path, Err: err}
		}

		slog.Debug("found config", "path", path)

		if err := yaml.Unmarshal(content, &conf); err != nil {
			return conf, &ConfigError{Path: path, Err: err}
		}
		if err := yaml.Unmarshal(content, &conf.Raw); err != nil {
			return conf, &ConfigError{Path: path, Err: err}
		}
		return conf, nil
	}

	slog.Debug("no config file found", "src", src)
	return conf, nil
}
