package flattrie

import "fmt"

// ExactMatch returns the entry whose key equals the whole text.
func (t *Trie) ExactMatch(text string) (KV, bool) {
	if len(text) == 0 {
		return KV{}, false
	}

	cur, ok := t.root.resolve(t.fold(text[0]))
	if !ok {
		return KV{}, false
	}

	depth := 1

	for depth < len(text) {
		n := &t.nodes[cur]
		if n.leaf() {
			break // the rest of the leaf's key is implicit, compare below
		}

		next := t.follow(n, t.fold(text[depth]))
		if next == noIndex {
			return KV{}, false
		}
		cur = next
		depth++
	}

	match := t.nodes[cur].match
	if match == noIndex {
		return KV{}, false
	}

	stored := t.matches[match].Key
	if len(stored) != len(text) || !t.foldEqFrom(stored, text, depth) {
		return KV{}, false
	}

	return t.matches[match], true
}

// LongestMatch returns the entry with the longest key that prefixes the
// text. The whole viable path is walked and every match passed on the way
// down overwrites the previous candidate.
func (t *Trie) LongestMatch(text string) (KV, bool) {
	if len(text) == 0 {
		return KV{}, false
	}

	cur, ok := t.root.resolve(t.fold(text[0]))
	if !ok {
		return KV{}, false
	}

	var (
		best  = noIndex
		depth = 1
	)

	for {
		n := &t.nodes[cur]

		if n.leaf() {
			// the leaf's key may extend past the materialized path; it is
			// a candidate only if its implicit tail prefixes the text too
			if t.storedPrefixes(n.match, text, depth) {
				best = n.match
			}
			break
		}
		if n.match != noIndex {
			// a key ends exactly here, deeper candidates overwrite it
			best = n.match
		}

		if depth == len(text) {
			break
		}
		next := t.follow(n, t.fold(text[depth]))
		if next == noIndex {
			break
		}
		cur = next
		depth++
	}

	if best == noIndex {
		return KV{}, false
	}
	return t.matches[best], true
}

// ShortestMatch returns the entry with the shortest key that prefixes the
// text, stopping at the first match-carrying node regardless of the
// remaining input.
func (t *Trie) ShortestMatch(text string) (KV, bool) {
	if len(text) == 0 {
		return KV{}, false
	}

	cur, ok := t.root.resolve(t.fold(text[0]))
	if !ok {
		return KV{}, false
	}

	depth := 1

	for {
		n := &t.nodes[cur]

		if n.leaf() {
			if t.storedPrefixes(n.match, text, depth) {
				return t.matches[n.match], true
			}
			return KV{}, false
		}
		if n.match != noIndex {
			return t.matches[n.match], true
		}

		if depth == len(text) {
			return KV{}, false
		}
		next := t.follow(n, t.fold(text[depth]))
		if next == noIndex {
			return KV{}, false
		}
		cur = next
		depth++
	}
}

// ExactMatchIn is ExactMatch over text[offset : offset+length].
func (t *Trie) ExactMatchIn(text string, offset, length int) (KV, bool, error) {
	sub, err := bounded(text, offset, length)
	if err != nil {
		return KV{}, false, err
	}
	kv, ok := t.ExactMatch(sub)
	return kv, ok, nil
}

// LongestMatchIn is LongestMatch over text[offset : offset+length].
func (t *Trie) LongestMatchIn(text string, offset, length int) (KV, bool, error) {
	sub, err := bounded(text, offset, length)
	if err != nil {
		return KV{}, false, err
	}
	kv, ok := t.LongestMatch(sub)
	return kv, ok, nil
}

// ShortestMatchIn is ShortestMatch over text[offset : offset+length].
func (t *Trie) ShortestMatchIn(text string, offset, length int) (KV, bool, error) {
	sub, err := bounded(text, offset, length)
	if err != nil {
		return KV{}, false, err
	}
	kv, ok := t.ShortestMatch(sub)
	return kv, ok, nil
}

func bounded(text string, offset, length int) (string, error) {
	if offset < 0 || length < 0 || offset > len(text)-length {
		return "", fmt.Errorf("%w: offset %d, length %d, text %d",
			ErrInvalidRange, offset, length, len(text))
	}
	return text[offset : offset+length], nil
}

// follow returns the continuation of n matching the folded byte c: the
// fast-path extension if its byte matches, else the first sibling-list entry
// with that byte.
func (t *Trie) follow(n *node, c byte) int32 {
	if n.childIndex != noIndex && n.childChar == c {
		return n.childIndex
	}
	for off := n.children; off != noIndex; off = t.links[off+1] {
		if t.nodes[t.links[off]].char == c {
			return t.links[off]
		}
	}
	return noIndex
}

// storedPrefixes reports whether the match's stored key is a (folded) prefix
// of the text, given that the first `from` bytes are already known to agree.
func (t *Trie) storedPrefixes(match int32, text string, from int) bool {
	stored := t.matches[match].Key
	if len(stored) > len(text) {
		return false
	}
	return t.foldEqFrom(stored, text[:len(stored)], from)
}

// foldEqFrom compares equal-length strings byte-wise under folding,
// starting at `from`.
func (t *Trie) foldEqFrom(a, b string, from int) bool {
	for i := from; i < len(a); i++ {
		if t.fold(a[i]) != t.fold(b[i]) {
			return false
		}
	}
	return true
}
