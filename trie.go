package flattrie

import "fmt"

// KV is a stored key/value pair. The key keeps the exact string passed by
// the caller even in case-insensitive mode.
type KV struct {
	Key string
	Val interface{}
}

// Options pre-sizes the backing stores and fixes the case-folding mode for
// the structure's lifetime. The zero value is an empty case-sensitive trie
// with on-demand capacities.
type Options struct {
	MatchCapacity   int // key/value entries
	NodeCapacity    int // materialized key characters
	LinkCapacity    int // sibling links
	CaseInsensitive bool
}

// Trie is a flat-array prefix dictionary. It is insert-only: entries can be
// added and their values overwritten, never removed.
//
// A Trie is not safe for concurrent mutation. Concurrent read-only lookups
// are safe while no insertion is in flight; a writer must be externally
// synchronized against all readers.
type Trie struct {
	nodes    []node
	links    []int32 // sibling links, two slots each; len == capacity
	linkLen  int     // used ChildStore slots, always even
	matches  []KV
	root     rootIndex
	foldCase bool
}

// New returns an empty Trie.
func New(opt Options) *Trie {
	t := &Trie{foldCase: opt.CaseInsensitive}
	t.root.init()

	if opt.NodeCapacity > 0 {
		t.nodes = make([]node, 0, opt.NodeCapacity)
	}
	if opt.MatchCapacity > 0 {
		t.matches = make([]KV, 0, opt.MatchCapacity)
	}
	if opt.LinkCapacity > 0 {
		t.links = make([]int32, opt.LinkCapacity*2)
		for i := range t.links {
			t.links[i] = noIndex
		}
	}

	return t
}

// NewFromItems builds a Trie from existing pairs, failing on the first
// duplicate key.
func NewFromItems(opt Options, items ...KV) (*Trie, error) {
	t := New(opt)

	for _, kv := range items {
		if _, err := t.Insert(kv.Key, kv.Val, FailOnDuplicate); err != nil {
			return nil, err
		}
	}

	return t, nil
}

// Len returns the number of distinct keys.
func (t *Trie) Len() int {
	return len(t.matches)
}

// CaseInsensitive reports whether the trie folds ASCII letter case.
func (t *Trie) CaseInsensitive() bool {
	return t.foldCase
}

// At returns the i-th entry in insertion order.
func (t *Trie) At(i int) (KV, error) {
	if i < 0 || i >= len(t.matches) {
		return KV{}, fmt.Errorf("%w: %d of %d", ErrOutOfRange, i, len(t.matches))
	}
	return t.matches[i], nil
}

// Items returns a copy of all entries in insertion order.
func (t *Trie) Items() []KV {
	items := make([]KV, len(t.matches))
	copy(items, t.matches)
	return items
}

// Keys returns all keys in insertion order.
func (t *Trie) Keys() []string {
	keys := make([]string, len(t.matches))
	for i := range t.matches {
		keys[i] = t.matches[i].Key
	}
	return keys
}

// Get returns the value associated with the key.
func (t *Trie) Get(key string) (interface{}, bool) {
	kv, ok := t.ExactMatch(key)
	if !ok {
		return nil, false
	}
	return kv.Val, true
}

// Value returns the value associated with the key or ErrKeyNotFound.
func (t *Trie) Value(key string) (interface{}, error) {
	kv, ok := t.ExactMatch(key)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrKeyNotFound, key)
	}
	return kv.Val, nil
}

// Contains reports whether the exact key is present.
func (t *Trie) Contains(key string) bool {
	_, ok := t.ExactMatch(key)
	return ok
}

// fold lowercases ASCII letters in case-insensitive mode; all other bytes
// pass through verbatim.
func (t *Trie) fold(c byte) byte {
	if t.foldCase && 'A' <= c && c <= 'Z' {
		return c + 'a' - 'A'
	}
	return c
}

func (t *Trie) DebugDump() {
	for c := 0; c < asciiRange; c++ {
		if idx := t.root.ascii[c]; idx != noIndex {
			t.debugDump(idx, 0)
		}
	}
	for _, idx := range t.root.high {
		t.debugDump(idx, 0)
	}
}

func (t *Trie) debugDump(idx int32, indent int) {
	n := &t.nodes[idx]

	fmt.Printf("%*s[%d] %q", indent*2, "", idx, n.char)
	if n.match != noIndex {
		fmt.Printf(" match=%q val=%v", t.matches[n.match].Key, t.matches[n.match].Val)
	}
	fmt.Println()

	if n.childIndex != noIndex {
		t.debugDump(n.childIndex, indent+1)
	}
	for off := n.children; off != noIndex; off = t.links[off+1] {
		t.debugDump(t.links[off], indent+1)
	}
}
