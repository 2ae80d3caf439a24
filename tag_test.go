package verso

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func datedPost(title string, date time.Time, tags ...string) *Post {
	return &Post{
		Title:     title,
		Slug:      title,
		Date:      date,
		Tags:      tags,
		Timestamp: date.Unix(),
	}
}

func TestGroupTags_OrderedByCountThenName(t *testing.T) {
	posts := []*Post{
		datedPost("first", time.Date(2020, 1, 5, 0, 0, 0, 0, time.UTC), "go", "Systems"),
		datedPost("second", time.Date(2021, 3, 2, 0, 0, 0, 0, time.UTC), "go"),
		datedPost("third", time.Date(2019, 6, 1, 0, 0, 0, 0, time.UTC), "zsh", "APIs"),
	}

	tags := groupTags(posts, "/")
	require.Len(t, tags, 4)

	// go has the most members; the count-1 tags tie and fall back to
	// case-insensitive name order.
	require.Equal(t, "go", tags[0].Name)
	require.Equal(t, 2, tags[0].Count)
	require.Equal(t, "APIs", tags[1].Name)
	require.Equal(t, "Systems", tags[2].Name)
	require.Equal(t, "zsh", tags[3].Name)
}

func TestGroupTags_MembersSortedNewestFirst(t *testing.T) {
	older := datedPost("older", time.Date(2020, 1, 5, 0, 0, 0, 0, time.UTC), "go")
	newer := datedPost("newer", time.Date(2021, 3, 2, 0, 0, 0, 0, time.UTC), "go")

	// Deliberately unsorted input: membership is collected over the raw
	// list and each bucket is sorted independently.
	tags := groupTags([]*Post{older, newer}, "/")
	require.Len(t, tags, 1)
	require.Equal(t, []*Post{newer, older}, tags[0].Posts)
}

func TestGroupTags_CaseInsensitiveMergeKeepsFirstCasing(t *testing.T) {
	posts := []*Post{
		datedPost("first", time.Date(2020, 1, 5, 0, 0, 0, 0, time.UTC), "Go"),
		datedPost("second", time.Date(2021, 3, 2, 0, 0, 0, 0, time.UTC), "go"),
	}

	tags := groupTags(posts, "/")
	require.Len(t, tags, 1)
	require.Equal(t, "Go", tags[0].Name)
	require.Equal(t, 2, tags[0].Count)
}

func TestGroupTags_ResolvesTagURLs(t *testing.T) {
	posts := []*Post{datedPost("first", time.Date(2020, 1, 5, 0, 0, 0, 0, time.UTC), "go")}

	require.Equal(t, "/go/", groupTags(posts, "/")[0].URL)
	require.Equal(t, "/tags/go.html", groupTags(posts, "/tags")[0].URL)
}

func TestGroupTags_NoPosts_EmptyCollection(t *testing.T) {
	require.Empty(t, groupTags(nil, "/"))
}
