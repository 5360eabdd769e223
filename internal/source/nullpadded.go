package source

// NullPadded is an owned buffer guaranteed to have NullPadTail zero bytes
// past its logical length, letting hot loops read ahead without a bounds
// check. WriteString only reallocates when the existing capacity is
// smaller than the new content plus the tail.
type NullPadded struct {
	buf []byte // logical content, len(buf) == logical length
	cap []byte // backing storage, len(cap) >= len(buf)+NullPadTail, zeroed tail
}

// NewNullPadded copies s into a freshly allocated null-padded buffer.
func NewNullPadded(s []byte) *NullPadded {
	n := &NullPadded{}
	n.WriteString(s)
	return n
}

// WriteString replaces the logical content, reallocating the backing
// array only if it is too small to hold len(s)+NullPadTail bytes.
func (n *NullPadded) WriteString(s []byte) {
	need := len(s) + NullPadTail
	if cap(n.cap) < need {
		n.cap = make([]byte, need)
	} else {
		n.cap = n.cap[:need]
		for i := range n.cap {
			n.cap[i] = 0
		}
	}
	copy(n.cap, s)
	n.buf = n.cap[:len(s)]
}

func (n *NullPadded) Byte(offset int) byte {
	if offset < 0 || offset >= len(n.cap) {
		return 0
	}
	return n.cap[offset]
}

func (n *NullPadded) Slice(start, end int) []byte  { return n.buf[start:end] }
func (n *NullPadded) Len() int                     { return len(n.buf) }
func (n *NullPadded) Trim(int)                     {}
func (n *NullPadded) UTF8Guaranteed() bool          { return false }
func (n *NullPadded) Mutable() bool                 { return false }
func (n *NullPadded) MutableSlice(_, _ int) []byte  { return nil }
func (n *NullPadded) NullPadded() bool              { return true }
func (n *NullPadded) Volatile() bool                { return false }
