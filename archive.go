package verso

import "time"

// ArchiveMonth groups the posts of one month within a year bucket.
type ArchiveMonth struct {
	Month time.Month
	Posts []*Post
}

// ArchiveYear groups the posts of one year, with month sub-buckets. Both
// levels come out newest first because they are built from the already
// sorted post list.
type ArchiveYear struct {
	Year   int
	Posts  []*Post
	Months []ArchiveMonth
}

// buildArchives derives the archive structure from the sorted post list.
// Zero posts yield an empty archive.
func buildArchives(sorted []*Post) []ArchiveYear {
	var years []ArchiveYear

	for _, p := range sorted {
		y := p.Date.Year()
		if len(years) == 0 || years[len(years)-1].Year != y {
			years = append(years, ArchiveYear{Year: y})
		}
		yb := &years[len(years)-1]
		yb.Posts = append(yb.Posts, p)

		m := p.Date.Month()
		if len(yb.Months) == 0 || yb.Months[len(yb.Months)-1].Month != m {
			yb.Months = append(yb.Months, ArchiveMonth{Month: m})
		}
		mb := &yb.Months[len(yb.Months)-1]
		mb.Posts = append(mb.Posts, p)
	}

	return years
}
