package verso

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig_NoFile_UsesDefaults(t *testing.T) {
	conf, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	require.Equal(t, "/<year>/<month>/<day>/<title>/", conf.PostsURL)
	require.Equal(t, "/", conf.TagsURL)
	require.True(t, conf.Pygmentize)
	require.Equal(t, "blackfriday", conf.Parser)
	require.Equal(t, "gotemplate", conf.Renderer)
	require.Equal(t, "/assets", conf.Raw["assets_url"])
}

func TestLoadConfig_MergesFileOverDefaults(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "config.yml",
		"posts_url: /posts/<title>.html\npygmentize: false\ntitle: My Site\n")

	conf, err := LoadConfig(dir)
	require.NoError(t, err)

	require.Equal(t, "/posts/<title>.html", conf.PostsURL)
	require.False(t, conf.Pygmentize)

	// Untouched options keep their defaults.
	require.Equal(t, "/", conf.BaseURL)

	// User-defined keys are visible through the raw map.
	require.Equal(t, "My Site", conf.Raw["title"])
}

func TestLoadConfig_YamlExtensionAlsoFound(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "config.yaml", "base_url: https://example.org/\n")

	conf, err := LoadConfig(dir)
	require.NoError(t, err)
	require.Equal(t, "https://example.org/", conf.BaseURL)
}

func TestLoadConfig_MalformedFile_IsConfigErrorWithPath(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.yml", "title: [unclosed\n")

	_, err := LoadConfig(dir)
	var confErr *ConfigError
	require.ErrorAs(t, err, &confErr)
	require.Equal(t, path, confErr.Path)
}
