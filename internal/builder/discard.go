package builder

import "github.com/quickjson/quickjson/internal/numlex"

// Discard is a Builder that produces nothing, used when only validating a
// document's grammar (or when the parser's own skip routines already
// handle a subtree without needing builder callbacks at all).
type Discard struct{}

func (Discard) Null(int, int)                           {}
func (Discard) Bool(bool, int, int)                      {}
func (Discard) Number(numlex.Number, int, int)           {}
func (Discard) String(string, bool, int, int)            {}
func (Discard) BeginArray(int)                           {}
func (Discard) EndArray(int, int)                        {}
func (Discard) BeginObject(int)                          {}
func (Discard) Key(string, bool, int, int)               {}
func (Discard) EndObject(int, int)                       {}
