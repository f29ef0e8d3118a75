package flattrie

import "fmt"

// Policy selects what Insert does when the key is already present.
type Policy int

const (
	// FailOnDuplicate rejects the insertion with ErrDuplicateKey.
	FailOnDuplicate Policy = iota
	// SkipIfPresent keeps the existing value and reports success.
	SkipIfPresent
	// OverwriteIfPresent replaces the existing value in place; the entry's
	// position and the structure are unchanged.
	OverwriteIfPresent
)

// Set associates a value with a key, overwriting a previous value.
func (t *Trie) Set(key string, val interface{}) error {
	_, err := t.Insert(key, val, OverwriteIfPresent)
	return err
}

// Add associates a value with a key, failing if the key is already present.
func (t *Trie) Add(key string, val interface{}) error {
	_, err := t.Insert(key, val, FailOnDuplicate)
	return err
}

// Insert adds a key/value entry under the given duplicate policy. It reports
// whether a new entry was created; a duplicate handled by SkipIfPresent or
// OverwriteIfPresent reports false with a nil error. Nothing is mutated on
// failure.
//
// Appends may grow a backing array, so the walk below never holds a *node
// across a store append - every mutation re-indexes the NodeStore.
func (t *Trie) Insert(key string, val interface{}, policy Policy) (bool, error) {
	if len(key) == 0 {
		return false, ErrEmptyKey
	}

	first := t.fold(key[0])

	cur, ok := t.root.resolve(first)
	if !ok {
		// first key starting with this byte: a single leaf carries the
		// whole key, the tail stays implicit in the match entry
		t.root.register(first, t.newLeaf(first, t.newMatch(key, val)))
		return true, nil
	}

	depth := 1 // key bytes consumed, cur matches key[depth-1]

	for depth < len(key) {
		var (
			c = t.fold(key[depth])
			n = t.nodes[cur]
		)

		// fast-path extension
		if n.childIndex != noIndex {
			if n.childChar == c {
				cur = n.childIndex
				depth++
				continue
			}

			// second child: promote the fast-path extension into a fresh
			// sibling list, then append the new leaf after it
			leaf := t.newLeaf(c, t.newMatch(key, val))
			head := t.newLink(n.childIndex)
			link := t.newLink(leaf) // may grow t.links, keep the write apart
			t.links[head+1] = link

			t.nodes[cur].children = head
			t.nodes[cur].childIndex = noIndex
			t.nodes[cur].childChar = 0

			return true, nil
		}

		// sibling list
		if n.children != noIndex {
			var (
				next = noIndex
				tail = n.children
			)
			for off := tail; ; off = t.links[off+1] {
				if t.nodes[t.links[off]].char == c {
					next = t.links[off]
					break
				}
				if t.links[off+1] == noIndex {
					tail = off
					break
				}
			}
			if next != noIndex {
				cur = next
				depth++
				continue
			}

			leaf := t.newLeaf(c, t.newMatch(key, val))
			link := t.newLink(leaf)
			t.links[tail+1] = link

			return true, nil
		}

		// cur is a leaf with key bytes remaining - split its implicit tail
		return t.splitLeaf(cur, key, val, depth, policy)
	}

	// the whole key was consumed
	n := t.nodes[cur]
	if n.match == noIndex {
		t.nodes[cur].match = t.newMatch(key, val)
		return true, nil
	}

	if len(t.matches[n.match].Key) == len(key) {
		// same path and same length means an equal key
		return t.resolveDuplicate(cur, val, policy)
	}

	// cur is a leaf whose key extends past ours: displace its match one
	// level inward and claim this node for the new, shorter key
	stored := t.matches[n.match].Key
	next := t.fold(stored[len(key)])
	leaf := t.newLeaf(next, n.match)

	t.nodes[cur].childChar = next
	t.nodes[cur].childIndex = leaf
	t.nodes[cur].match = t.newMatch(key, val)

	return true, nil
}

// splitLeaf resolves an insertion that ran into a leaf before exhausting the
// key. The leaf's stored key and the new key agree on the first depth bytes;
// the shared run past that point is materialized as a chain of single-child
// nodes, terminated either by the shorter key's match with a fast path to
// the longer key's leaf, or by a branch holding both keys' leaves.
func (t *Trie) splitLeaf(cur int32, key string, val interface{}, depth int, policy Policy) (bool, error) {
	var (
		oldMatch = t.nodes[cur].match
		stored   = t.matches[oldMatch].Key
		sLen     = len(stored)
		kLen     = len(key)
		i        = depth
	)

	for i < sLen && i < kLen && t.fold(stored[i]) == t.fold(key[i]) {
		i++
	}

	if i == sLen && i == kLen {
		return t.resolveDuplicate(cur, val, policy)
	}

	// shared run: match-less intermediaries, one per byte
	last := cur
	for j := depth; j < i; j++ {
		c := t.fold(key[j])
		nn := t.newNode(c)
		t.nodes[last].childChar = c
		t.nodes[last].childIndex = nn
		last = nn
	}

	switch {
	case i == sLen:
		// stored key ends inside the shared run, ours continues
		c := t.fold(key[i])
		leaf := t.newLeaf(c, t.newMatch(key, val))
		if last != cur {
			t.nodes[cur].match = noIndex
			t.nodes[last].match = oldMatch
		}
		t.nodes[last].childChar = c
		t.nodes[last].childIndex = leaf

	case i == kLen:
		// our key ends inside the shared run, the stored one continues
		c := t.fold(stored[i])
		leaf := t.newLeaf(c, oldMatch)
		t.nodes[cur].match = noIndex
		t.nodes[last].match = t.newMatch(key, val)
		t.nodes[last].childChar = c
		t.nodes[last].childIndex = leaf

	default:
		// both keys continue with different bytes: branch out, keeping the
		// relocated original leaf first in the sibling list
		oldLeaf := t.newLeaf(t.fold(stored[i]), oldMatch)
		newLeaf := t.newLeaf(t.fold(key[i]), t.newMatch(key, val))

		head := t.newLink(oldLeaf)
		link := t.newLink(newLeaf)
		t.links[head+1] = link

		t.nodes[cur].match = noIndex
		t.nodes[last].children = head
	}

	return true, nil
}

func (t *Trie) resolveDuplicate(cur int32, val interface{}, policy Policy) (bool, error) {
	m := t.nodes[cur].match

	switch policy {
	case FailOnDuplicate:
		return false, fmt.Errorf("%w: %q", ErrDuplicateKey, t.matches[m].Key)
	case SkipIfPresent:
		return false, nil
	case OverwriteIfPresent:
		t.matches[m].Val = val
		return false, nil
	default:
		return false, fmt.Errorf("flattrie: unknown insert policy %d", policy)
	}
}
