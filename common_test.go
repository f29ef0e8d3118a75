package flattrie

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// checkInvariants walks the whole structure and verifies everything the
// engine promises about it: reachability, sentinel consistency, the
// one-continuation-kind rule, link well-formedness and path/key agreement.
// Engine corruption is a defect, not an error surface, so it is asserted
// here rather than checked in production code.
func checkInvariants(t *testing.T, tr *Trie) {
	t.Helper()

	var (
		seenNodes   = make([]bool, len(tr.nodes))
		seenMatches = make([]bool, len(tr.matches))
	)

	var walk func(idx int32, path []byte)
	walk = func(idx int32, path []byte) {
		require.GreaterOrEqual(t, idx, int32(0))
		require.Less(t, int(idx), len(tr.nodes))
		require.False(t, seenNodes[idx], "node %d reachable twice", idx)
		seenNodes[idx] = true

		n := &tr.nodes[idx]
		path = append(path, n.char)

		if n.childIndex != noIndex {
			require.Equal(t, noIndex, n.children,
				"node %d has both a fast-path extension and a sibling list", idx)
			require.Equal(t, n.childChar, tr.nodes[n.childIndex].char)
		}

		if n.match != noIndex {
			require.Less(t, int(n.match), len(tr.matches))
			require.False(t, seenMatches[n.match], "match %d reachable twice", n.match)
			seenMatches[n.match] = true

			stored := tr.matches[n.match].Key
			require.GreaterOrEqual(t, len(stored), len(path))
			for i, c := range path {
				require.Equal(t, c, tr.fold(stored[i]),
					"match %q disagrees with its path at byte %d", stored, i)
			}
			if !n.leaf() {
				// a key ending at an inner node terminates exactly here
				require.Equal(t, len(path), len(stored))
			}
		} else {
			require.False(t, n.leaf(), "leaf %d owns no match", idx)
		}

		if n.childIndex != noIndex {
			walk(n.childIndex, path)
		}

		chars := make(map[byte]bool)
		for off := n.children; off != noIndex; off = tr.links[off+1] {
			require.Zero(t, off%2, "link handle %d is odd", off)
			require.Less(t, int(off), tr.linkLen)
			child := tr.links[off]
			c := tr.nodes[child].char
			require.False(t, chars[c], "duplicate sibling byte %q", c)
			chars[c] = true
			walk(child, path)
		}
	}

	for c := 0; c < asciiRange; c++ {
		if idx := tr.root.ascii[c]; idx != noIndex {
			require.Equal(t, byte(c), tr.nodes[idx].char)
			walk(idx, nil)
		}
	}
	for c, idx := range tr.root.high {
		require.Equal(t, c, tr.nodes[idx].char)
		walk(idx, nil)
	}

	for i, seen := range seenNodes {
		require.True(t, seen, "node %d is orphaned", i)
	}
	for i, seen := range seenMatches {
		require.True(t, seen, "match %d (%q) is unreachable", i, tr.matches[i].Key)
	}

	require.Zero(t, tr.linkLen%2, "odd ChildStore size")
	require.Zero(t, len(tr.links)%2, "odd ChildStore capacity")
	for i := tr.linkLen; i < len(tr.links); i++ {
		require.Equal(t, noIndex, tr.links[i], "grown ChildStore slot %d not cleared", i)
	}
}

// sizes captures every store's logical size for no-mutation assertions.
type sizes struct {
	matches, nodes, links int
}

func snapshot(tr *Trie) sizes {
	return sizes{matches: len(tr.matches), nodes: len(tr.nodes), links: tr.linkLen}
}
