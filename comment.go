package quickjson

import "github.com/quickjson/quickjson/internal/xcomment"

// Comment is one recorded `//` or `/* */` comment span, returned by
// ParseWithComments when AllowComments is set.
type Comment = xcomment.Comment

// Metadata bundles line-offset and comment information for editor-style
// consumers, returned by ParseWithMetadata.
type Metadata struct {
	sidecar *xcomment.Sidecar
}

// LineAt returns the 0-based line index containing byte offset.
func (m Metadata) LineAt(offset int) int { return m.sidecar.LineAt(offset) }

// CommentAt returns the comment (if any) whose span contains offset.
func (m Metadata) CommentAt(offset int) (Comment, bool) { return m.sidecar.CommentAt(offset) }

// Comments returns every recorded comment in source order.
func (m Metadata) Comments() []Comment { return m.sidecar.Comments }
