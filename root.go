package flattrie

// asciiRange is the span of first bytes resolved through the direct table;
// higher bytes (e.g. UTF-8 lead bytes) go through a lazily allocated map.
const asciiRange = 128

// rootIndex maps a key's first (folded) byte to the node heading that byte's
// subtree.
type rootIndex struct {
	ascii [asciiRange]int32
	high  map[byte]int32 // nil until the first byte >= asciiRange
}

func (r *rootIndex) init() {
	for i := range r.ascii {
		r.ascii[i] = noIndex
	}
}

func (r *rootIndex) resolve(c byte) (int32, bool) {
	if c < asciiRange {
		idx := r.ascii[c]
		return idx, idx != noIndex
	}
	idx, ok := r.high[c]
	return idx, ok
}

// register binds a first byte to its subtree head. Each byte is registered
// at most once over the structure's lifetime.
func (r *rootIndex) register(c byte, nodeIndex int32) {
	if c < asciiRange {
		r.ascii[c] = nodeIndex
		return
	}
	if r.high == nil {
		r.high = make(map[byte]int32)
	}
	r.high[c] = nodeIndex
}
