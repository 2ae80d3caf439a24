// Package verso is a static blog generator. It reads dated posts with
// YAML frontmatter from a source tree, groups them by tag and by date,
// renders them through layout templates with a pluggable markup backend,
// highlights code blocks, and writes the finished pages to a destination
// tree.
package verso

import (
	"html/template"
	"io/fs"
	"log/slog"
	"path"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/ncruces/go-strftime"
)

// Reserved directories under the source root.
const (
	postsDir  = "_posts"
	assetsDir = "_assets"
)

// Options adjusts one generation run.
type Options struct {
	// Force deletes an existing destination instead of failing.
	Force bool

	// BaseURL overrides the configured base_url when non-empty.
	BaseURL string
}

// Site owns the state of one generation run. Nothing is shared across
// runs; create a new Site for every generation.
type Site struct {
	src   string
	dest  string
	force bool

	conf     Config
	markup   MarkupConverter
	renderer TemplateRenderer

	posts    []*Post
	tags     []*Tag
	archives []ArchiveYear
	pages    []Page
}

// NewSite validates the source/destination pair, loads the configuration
// and resolves the pluggable backends. The destination is not touched.
func NewSite(src, dest string, opts Options) (*Site, error) {
	absSrc, err := filepath.Abs(src)
	if err != nil {
		return nil, err
	}
	absDest, err := filepath.Abs(dest)
	if err != nil {
		return nil, err
	}

	if absSrc == absDest {
		return nil, &OptionError{Msg: "source and destination must differ"}
	}
	if absSrc == string(filepath.Separator) || absDest == string(filepath.Separator) {
		return nil, &OptionError{Msg: "root is not a valid source or destination"}
	}

	slog.Debug("initializing", "src", absSrc, "dest", absDest)

	conf, err := LoadConfig(absSrc)
	if err != nil {
		return nil, err
	}
	if opts.BaseURL != "" {
		conf.BaseURL = opts.BaseURL
		conf.Raw["base_url"] = opts.BaseURL
	}

	markup, err := newMarkupConverter(conf.Markup, conf.Parser)
	if err != nil {
		return nil, err
	}
	renderer, err := newTemplateRenderer(conf.Renderer, absSrc)
	if err != nil {
		return nil, err
	}

	s := &Site{
		src:      absSrc,
		dest:     absDest,
		force:    opts.Force,
		conf:     conf,
		markup:   markup,
		renderer: renderer,
	}
	s.renderer.Register(map[string]any{"Site": conf.Raw})

	return s, nil
}

// Generate runs the full pipeline. All parsing and rendering completes
// before the destination is touched, so a failing run never leaves partial
// output behind.
func (s *Site) Generate() error {
	start := time.Now()

	if err := s.render(); err != nil {
		return err
	}

	slog.Info("generating", "dest", s.dest)

	if err := prepareDest(s.dest, s.force); err != nil {
		return err
	}
	if err := writePages(s.pages); err != nil {
		return err
	}
	if err := copyAssets(filepath.Join(s.src, assetsDir), s.dest, s.conf.AssetsURL); err != nil {
		return err
	}

	slog.Info("completed", "duration", time.Since(start).Round(time.Millisecond))
	return nil
}

// parse reads every post file, derives URLs and display dates, and builds
// the tag and archive indices. Must complete before any rendering starts.
func (s *Site) parse() error {
	dir := filepath.Join(s.src, postsDir)
	slog.Info("parsing", "dir", dir)

	files, err := findPostFiles(dir)
	if err != nil {
		return err
	}

	for _, f := range files {
		p, err := readPostFile(f)
		if err != nil {
			return err
		}

		p.URL = resolvePostURL(s.conf.PostsURL, p.Date, p.Slug)
		p.DisplayDate = strftime.Format(s.conf.DateFormat, p.Date)

		s.posts = append(s.posts, p)
	}

	if len(s.posts) == 0 {
		slog.Debug("no posts found")
	}

	// Tag membership is collected over the raw list; the global sort and
	// the per-tag sorts are separate operations.
	s.tags = groupTags(s.posts, s.conf.TagsURL)
	slices.SortStableFunc(s.posts, byTimestampDesc)
	s.archives = buildArchives(s.posts)

	return nil
}

// A capture that participates only when the rendered content opens with a
// paragraph. Best effort: anything else yields an empty excerpt.
var excerptPattern = regexp.MustCompile(`(?s)\A.*?(<p>.+?</p>)?`)

// render produces the full page list: one page per post, one per
// standalone template file, one per tag when a tag layout is configured,
// and the feed when enabled.
func (s *Site) render() error {
	if err := s.parse(); err != nil {
		return err
	}

	slog.Info("rendering", "posts", len(s.posts), "tags", len(s.tags))

	s.renderer.Register(map[string]any{
		"Posts":    s.posts,
		"Tags":     s.tags,
		"Archives": s.archives,
	})

	for _, p := range s.posts {
		if err := s.renderPost(p); err != nil {
			return err
		}
	}

	templates, err := s.findSiteTemplates()
	if err != nil {
		return err
	}
	for _, name := range templates {
		out, err := s.renderer.Render(name, nil)
		if err != nil {
			return &RenderError{Layout: name, Err: err}
		}
		s.addPage(filepath.Join(s.dest, filepath.FromSlash(name)), out)
	}

	if s.conf.TagLayout != "" && len(s.tags) > 0 {
		for _, t := range s.tags {
			out, err := s.renderer.Render(s.layoutName(s.conf.TagLayout), map[string]any{"Tag": t})
			if err != nil {
				return &RenderError{Layout: s.conf.TagLayout, Err: err}
			}
			s.addPage(urlToPath(s.dest, t.URL), out)
		}
	}

	if s.conf.FeedURL != "" {
		page, err := s.buildFeed()
		if err != nil {
			return err
		}
		s.pages = append(s.pages, page)
	}

	return nil
}

// renderPost fills in the post's content and excerpt, renders it through
// its declared layout, and queues the resulting page.
func (s *Site) renderPost(p *Post) error {
	body, err := s.renderer.RenderString(p.Body, p.Meta)
	if err != nil {
		return &RenderError{Layout: p.Layout, Post: p.Title, Err: err}
	}

	content, err := s.markup.Convert(body)
	if err != nil {
		return err
	}
	p.Content = template.HTML(content)
	p.Excerpt = template.HTML(excerptPattern.FindStringSubmatch(content)[1])

	out, err := s.renderer.Render(s.layoutName(p.Layout), map[string]any{"Post": p})
	if err != nil {
		return &RenderError{Layout: p.Layout, Post: p.Title, Err: err}
	}

	s.addPage(urlToPath(s.dest, p.URL), out)
	return nil
}

// addPage runs the highlight pass, when enabled, and queues the page.
func (s *Site) addPage(path, content string) {
	if s.conf.Pygmentize {
		content = highlightCodeBlocks(content)
	}
	s.pages = append(s.pages, Page{Path: path, Content: []byte(content)})
}

// layoutName resolves a layout reference against the templates directory.
func (s *Site) layoutName(name string) string {
	return path.Join(s.conf.TemplatesDir, name)
}

// findSiteTemplates lists standalone template files in the source tree:
// .html, .htm and .xml files outside the underscore-prefixed reserved
// directories. Their paths mirror into the destination unchanged.
func (s *Site) findSiteTemplates() ([]string, error) {
	var names []string

	err := filepath.WalkDir(s.src, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if p != s.src && (strings.HasPrefix(d.Name(), "_") || strings.HasPrefix(d.Name(), ".")) {
				return filepath.SkipDir
			}
			return nil
		}
		switch filepath.Ext(p) {
		case ".html", ".htm", ".xml":
			rel, err := filepath.Rel(s.src, p)
			if err != nil {
				return err
			}
			names = append(names, filepath.ToSlash(rel))
		}
		return nil
	})

	return names, err
}
