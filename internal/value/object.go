package value

import "sort"

// linearScanThreshold is the pair count above which Object builds a
// sorted index for O(log n) Get, per §3's "implementations may either
// linear-scan or keep the sequence sorted" choice. Below the threshold a
// linear scan over a handful of pairs beats the cost of sorting and
// bisecting.
const linearScanThreshold = 16

// Pair is one (key, value) member of an Object, in source order.
type Pair struct {
	Key string
	Val Value
}

// Object preserves JSON source order for iteration while offering Get.
// Duplicate keys are retained in full; Get returns the first match under
// the active scan order (source order for a linear scan, or the first
// match encountered during the binary search's lower-bound walk once an
// index has been built).
type Object struct {
	Pairs []Pair

	sortedIdx []int32 // Pairs[sortedIdx[i]] is in ascending key order
}

// NewObject wraps pairs (already in source order) as an Object.
func NewObject(pairs []Pair) *Object {
	return &Object{Pairs: pairs}
}

// Len returns the number of pairs, including duplicates.
func (o *Object) Len() int { return len(o.Pairs) }

// Get returns the value for key and whether it was found. For objects
// above linearScanThreshold pairs, a sorted index is built lazily on
// first call and reused thereafter.
func (o *Object) Get(key string) (Value, bool) {
	if len(o.Pairs) > linearScanThreshold {
		o.ensureIndex()
		return o.getIndexed(key)
	}
	for _, p := range o.Pairs {
		if p.Key == key {
			return p.Val, true
		}
	}
	return Value{}, false
}

func (o *Object) ensureIndex() {
	if o.sortedIdx != nil {
		return
	}
	idx := make([]int32, len(o.Pairs))
	for i := range idx {
		idx[i] = int32(i)
	}
	sort.SliceStable(idx, func(i, j int) bool {
		return o.Pairs[idx[i]].Key < o.Pairs[idx[j]].Key
	})
	o.sortedIdx = idx
}

func (o *Object) getIndexed(key string) (Value, bool) {
	idx := o.sortedIdx
	i := sort.Search(len(idx), func(i int) bool {
		return o.Pairs[idx[i]].Key >= key
	})
	// No walk over duplicates is needed: the index was built with a
	// stable sort, so the lower-bound position is the key's first
	// occurrence in source order.
	if i < len(idx) && o.Pairs[idx[i]].Key == key {
		return o.Pairs[idx[i]].Val, true
	}
	return Value{}, false
}
