package parser

// Component is one path-descent step: either an object key or an array
// index, mirroring spec §4.8/§6's "iterable of path components".
type Component struct {
	Key     string
	Index   int
	IsIndex bool
}

// KeyComponent builds a key-typed path component.
func KeyComponent(key string) Component { return Component{Key: key} }

// IndexComponent builds an index-typed path component.
func IndexComponent(i int) Component { return Component{Index: i, IsIndex: true} }
