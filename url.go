package verso

import (
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/ncruces/go-strftime"
)

// resolvePostURL expands a posts_url pattern for one post. Each
// placeholder maps either to a strftime directive or to a literal value;
// the whole pattern then goes through strftime, so users can mix arbitrary
// date directives into the pattern. Literal percent characters are doubled
// first so they survive the strftime pass untouched. Unknown placeholders
// are left as literal text.
func resolvePostURL(pattern string, date time.Time, slug string) string {
	link := strings.ReplaceAll(pattern, "%", "%%")

	for _, sub := range [...][2]string{
		{"<year>", "%Y"},
		{"<month>", "%m"},
		{"<day>", "%d"},
		{"<i_month>", strconv.Itoa(int(date.Month()))},
		{"<i_day>", strconv.Itoa(date.Day())},
		{"<title>", slug},
	} {
		link = strings.ReplaceAll(link, sub[0], sub[1])
	}

	return strftime.Format(link, date)
}

// resolveTagURL appends the tag name to the tags_url pattern. A pattern
// ending in a path separator yields a directory-style URL; anything else
// gets an explicit .html suffix.
func resolveTagURL(pattern, name string) string {
	if strings.HasSuffix(pattern, "/") {
		return pattern + name + "/"
	}
	return pattern + "/" + name + ".html"
}

// urlToPath maps a resolved URL to a file path under the destination root.
// Directory-style URLs land on an index.html inside that directory.
func urlToPath(dest, url string) string {
	path := filepath.Join(dest, filepath.FromSlash(url))
	if strings.HasSuffix(url, "/") {
		path = filepath.Join(path, "index.html")
	}
	return path
}
