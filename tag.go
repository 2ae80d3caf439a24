package verso

import (
	"cmp"
	"slices"
	"strings"
)

// Tag is an aggregation key: all posts sharing one tag name. The name
// keeps the casing of the first post that introduced it; comparisons are
// case-insensitive.
type Tag struct {
	Name  string
	Posts []*Post
	Count int
	URL   string
}

// groupTags collects tag membership over the raw post list, sorts each
// member list by timestamp descending, and orders the collection by member
// count descending with a case-insensitive name tie-break, so the most
// popular tag comes first.
func groupTags(posts []*Post, tagsURL string) []*Tag {
	tags := make([]*Tag, 0, 20)
	byName := make(map[string]*Tag, 20)

	for _, p := range posts {
		for _, name := range p.Tags {
			key := strings.ToLower(name)
			t, ok := byName[key]
			if !ok {
				t = &Tag{Name: name}
				byName[key] = t
				tags = append(tags, t)
			}
			t.Posts = append(t.Posts, p)
		}
	}

	for _, t := range tags {
		slices.SortStableFunc(t.Posts, byTimestampDesc)
		t.Count = len(t.Posts)
		t.URL = resolveTagURL(tagsURL, t.Name)
	}

	slices.SortStableFunc(tags, func(a, b *Tag) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	})

	return tags
}
