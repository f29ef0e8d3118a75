package flattrie

import "math"

const (
	// noIndex marks an absent node/link/match handle. Chars are never used
	// as sentinels so any byte, including 0x00, is a legal key byte.
	noIndex int32 = -1

	// maxStoreSize caps every store's capacity at the largest value an
	// int32 handle can address.
	maxStoreSize = math.MaxInt32

	defaultNodeCap  = 16
	defaultLinkCap  = 8 // links; the backing array holds two slots per link
	defaultMatchCap = 16
)

// node is one character along some key's path. 16 bytes, stored by value in
// the NodeStore.
type node struct {
	char       byte  // folded byte this node matches
	childChar  byte  // fast-path byte, meaningful only while childIndex >= 0
	childIndex int32 // fast-path extension, or noIndex
	match      int32 // MatchStore handle, or noIndex
	children   int32 // ChildStore handle of the sibling list head, or noIndex
}

// leaf reports whether n has no continuation of any kind. A leaf always owns
// a match and its key's tail past this node is held only by the match entry.
func (n *node) leaf() bool {
	return n.childIndex == noIndex && n.children == noIndex
}

// newNode appends a match-less node with no children and returns its handle.
func (t *Trie) newNode(c byte) int32 {
	return t.appendNode(node{
		char:       c,
		childIndex: noIndex,
		match:      noIndex,
		children:   noIndex,
	})
}

// newLeaf appends a leaf node owning the given match.
func (t *Trie) newLeaf(c byte, match int32) int32 {
	return t.appendNode(node{
		char:       c,
		childIndex: noIndex,
		match:      match,
		children:   noIndex,
	})
}

func (t *Trie) appendNode(n node) int32 {
	if len(t.nodes) == cap(t.nodes) {
		buf := make([]node, len(t.nodes), grownCap(cap(t.nodes), defaultNodeCap))
		copy(buf, t.nodes)
		t.nodes = buf
	}
	idx := int32(len(t.nodes))
	t.nodes = append(t.nodes, n)
	return idx
}

// newLink appends one sibling link pointing at the given node and returns
// its handle (the even offset of its first slot). The new link has no next
// sibling: every slot past the logical size is pre-initialized to noIndex
// whenever the backing array grows.
func (t *Trie) newLink(nodeIndex int32) int32 {
	if t.linkLen == len(t.links) {
		newCap := grownCap(len(t.links), defaultLinkCap*2) &^ 1 // stays even
		buf := make([]int32, newCap)
		copy(buf, t.links)
		for i := t.linkLen; i < len(buf); i++ {
			buf[i] = noIndex
		}
		t.links = buf
	}
	off := int32(t.linkLen)
	t.links[off] = nodeIndex
	t.linkLen += 2
	return off
}

// newMatch appends a key/value entry; the returned handle equals the entry's
// insertion order and is stable forever.
func (t *Trie) newMatch(key string, val interface{}) int32 {
	if len(t.matches) == cap(t.matches) {
		buf := make([]KV, len(t.matches), grownCap(cap(t.matches), defaultMatchCap))
		copy(buf, t.matches)
		t.matches = buf
	}
	idx := int32(len(t.matches))
	t.matches = append(t.matches, KV{key, val})
	return idx
}

// grownCap doubles a capacity, clamped at maxStoreSize.
func grownCap(cur, initial int) int {
	if cur == 0 {
		return initial
	}
	if cur >= maxStoreSize/2 {
		return maxStoreSize
	}
	return cur * 2
}
