package verso

import (
	"bytes"
	"cmp"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// The filename convention for source posts: YYYY-MM-DD-slug.ext.
const dateStampFormat = "2006-01-02"

// Post is one published content item.
type Post struct {
	Title  string
	Layout string
	Slug   string
	Date   time.Time

	// Meta holds the full frontmatter map, including user-defined keys.
	Meta map[string]any

	// Body is the raw content after the frontmatter block.
	Body string

	// Tags are sorted ascending, case-insensitively, as soon as they are
	// attached.
	Tags []string

	// Filled in during rendering. Typed template.HTML so layouts embed
	// them without re-escaping.
	Content template.HTML
	Excerpt template.HTML

	Timestamp   int64
	URL         string
	DisplayDate string
}

func byTimestampDesc(a, b *Post) int {
	return cmp.Compare(b.Timestamp, a.Timestamp)
}

// readPostFile parses one content file into a Post: date and slug from the
// filename, frontmatter into the metadata map, the rest as body.
func readPostFile(path string) (*Post, error) {
	name := filepath.Base(path)
	name = name[:len(name)-len(filepath.Ext(name))]

	date, slug, err := splitDateStamp(name)
	if err != nil {
		return nil, &MalformedFilenameError{Name: filepath.Base(path), Err: err}
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	meta, body, err := splitFrontmatter(content)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", path, err)
	}

	p := &Post{
		Slug:      slug,
		Date:      date,
		Meta:      meta,
		Body:      string(body),
		Timestamp: date.Unix(),
	}

	p.Title, _ = meta["title"].(string)
	p.Layout, _ = meta["layout"].(string)
	if p.Title == "" {
		return nil, fmt.Errorf("post %v has no title", path)
	}
	if p.Layout == "" {
		return nil, fmt.Errorf("post %v has no layout", path)
	}

	p.Tags = metaTags(meta)
	slices.SortFunc(p.Tags, func(a, b string) int {
		return cmp.Compare(strings.ToLower(a), strings.ToLower(b))
	})

	return p, nil
}

func splitDateStamp(name string) (time.Time, string, error) {
	if len(name) < len(dateStampFormat)+2 {
		return time.Time{}, "", fmt.Errorf("name too short for a date stamp")
	}
	if name[len(dateStampFormat)] != '-' {
		return time.Time{}, "", fmt.Errorf("no separator between date stamp and slug")
	}

	date, err := time.ParseInLocation(dateStampFormat, name[:len(dateStampFormat)], time.UTC)
	if err != nil {
		return time.Time{}, "", err
	}

	return date, name[len(dateStampFormat)+1:], nil
}

// splitFrontmatter separates a leading `---` delimited YAML block from the
// body. A file with no such block yields an empty metadata map and the
// whole file as body.
func splitFrontmatter(content []byte) (map[string]any, []byte, error) {
	open := []byte("---\n")
	if !bytes.HasPrefix(content, open) {
		return map[string]any{}, content, nil
	}

	closing := []byte("\n---\n")
	idx := bytes.Index(content[len(open):], closing)
	if idx < 0 {
		return nil, nil, fmt.Errorf("frontmatter opened but never closed")
	}

	raw := content[len(open) : len(open)+idx]
	body := content[len(open)+idx+len(closing):]

	var meta map[string]any
	if err := yaml.Unmarshal(raw, &meta); err != nil {
		return nil, nil, err
	}
	if meta == nil {
		meta = map[string]any{}
	}

	return meta, body, nil
}

func metaTags(meta map[string]any) []string {
	switch v := meta["tags"].(type) {
	case []any:
		tags := make([]string, 0, len(v))
		for _, t := range v {
			if s, ok := t.(string); ok {
				tags = append(tags, s)
			}
		}
		return tags
	case string:
		return []string{v}
	}
	return nil
}

// findPostFiles lists the content files under the posts directory. A
// missing directory means no posts, not an error.
func findPostFiles(dir string) ([]string, error) {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return nil, nil
	}

	files := make([]string, 0, 100)
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() && !strings.HasPrefix(info.Name(), ".") {
			files = append(files, path)
		}
		return nil
	})
	return files, err
}
