package verso

import (
	"strings"
	"time"

	atom "github.com/thomas11/atomgenerator"
)

// buildFeed renders an Atom feed of all posts as one extra page at the
// configured feed URL. Enabled by setting feed_url.
func (s *Site) buildFeed() (Page, error) {
	title, _ := s.conf.Raw["title"].(string)
	author, _ := s.conf.Raw["author"].(string)
	authorURI, _ := s.conf.Raw["author_uri"].(string)

	// The feed timestamp comes from the newest post, not the wall clock,
	// so unchanged input produces byte-identical output.
	var updated time.Time
	if len(s.posts) > 0 {
		updated = s.posts[0].Date
	}

	feed := atom.Feed{
		Title:   title,
		Link:    s.conf.BaseURL,
		PubDate: updated,
	}
	if author != "" {
		feed.AddAuthor(atom.Author{
			Name: author,
			Uri:  authorURI,
		})
	}

	for _, p := range s.posts {
		feed.AddEntry(s.feedEntry(p))
	}

	if errs := feed.Validate(); len(errs) > 0 {
		return Page{}, errs[0]
	}

	xml, err := feed.GenXml()
	if err != nil {
		return Page{}, err
	}

	return Page{Path: urlToPath(s.dest, s.conf.FeedURL), Content: xml}, nil
}

func (s *Site) feedEntry(p *Post) *atom.Entry {
	e := &atom.Entry{
		Title:       p.Title,
		Description: string(p.Excerpt),
		Link:        absoluteURL(s.conf.BaseURL, p.URL),
		PubDate:     p.Date,
		Content:     string(p.Content),
	}

	for _, tag := range p.Tags {
		e.AddCategory(atom.Category{Term: tag})
	}

	return e
}

func absoluteURL(base, url string) string {
	return strings.TrimSuffix(base, "/") + "/" + strings.TrimPrefix(url, "/")
}
