// Package xcomment implements the comment/metadata sidecar: a sorted list
// of newline byte offsets and a sorted list of comment spans, both
// searchable by binary search per §3 and §9 of the specification.
package xcomment

import "sort"

// Comment is one recorded `//` or `/* */` comment.
type Comment struct {
	Start, End int
	MultiLine  bool
	Text       string
}

// Sidecar accumulates line offsets and comments while a parse with
// metadata requested runs. Both slices are kept strictly increasing by
// construction (appended in source order), so lookups are a plain
// lower_bound binary search.
type Sidecar struct {
	Lines    []int
	Comments []Comment
}

// RecordNewline appends a newline offset. Callers only call this from
// whitespace/comment skipping, the sole place line counts are updated.
func (s *Sidecar) RecordNewline(offset int) {
	s.Lines = append(s.Lines, offset)
}

// RecordComment appends a completed comment span.
func (s *Sidecar) RecordComment(c Comment) {
	s.Comments = append(s.Comments, c)
}

// LineAt returns the 0-based line index containing byte offset.
func (s *Sidecar) LineAt(offset int) int {
	return sort.SearchInts(s.Lines, offset+1)
}

// CommentAt returns the comment (if any) whose span contains offset.
func (s *Sidecar) CommentAt(offset int) (Comment, bool) {
	i := sort.Search(len(s.Comments), func(i int) bool {
		return s.Comments[i].End > offset
	})
	if i < len(s.Comments) && s.Comments[i].Start <= offset {
		return s.Comments[i], true
	}
	return Comment{}, false
}
