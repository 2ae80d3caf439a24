package verso

import (
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestBuildArchives_BucketsByYearNewestFirst(t *testing.T) {
	posts := []*Post{
		datedPost("second", time.Date(2021, 3, 2, 0, 0, 0, 0, time.UTC)),
		datedPost("first", time.Date(2020, 1, 5, 0, 0, 0, 0, time.UTC)),
	}
	slices.SortStableFunc(posts, byTimestampDesc)

	archives := buildArchives(posts)
	require.Len(t, archives, 2)
	require.Equal(t, 2021, archives[0].Year)
	require.Equal(t, 2020, archives[1].Year)
	require.Len(t, archives[0].Posts, 1)
	require.Len(t, archives[1].Posts, 1)
}

func TestBuildArchives_MonthBucketsWithinYear(t *testing.T) {
	posts := []*Post{
		datedPost("march", time.Date(2021, 3, 2, 0, 0, 0, 0, time.UTC)),
		datedPost("feb-late", time.Date(2021, 2, 20, 0, 0, 0, 0, time.UTC)),
		datedPost("feb-early", time.Date(2021, 2, 1, 0, 0, 0, 0, time.UTC)),
	}
	slices.SortStableFunc(posts, byTimestampDesc)

	archives := buildArchives(posts)
	require.Len(t, archives, 1)

	year := archives[0]
	require.Len(t, year.Posts, 3)
	require.Len(t, year.Months, 2)
	require.Equal(t, time.March, year.Months[0].Month)
	require.Equal(t, time.February, year.Months[1].Month)
	require.Len(t, year.Months[1].Posts, 2)
	require.Equal(t, "feb-late", year.Months[1].Posts[0].Title)
}

func TestBuildArchives_NoPosts_EmptyArchive(t *testing.T) {
	require.Empty(t, buildArchives(nil))
}
