// Package flattrie defines an insert-only prefix dictionary for string keys
// with longest/shortest/exact match lookups.
//
// The whole structure lives in three flat growable arrays addressed by stable
// int32 handles - there are no per-node allocations and no pointers between
// nodes:
//
//   - NodeStore:  []node, one record per materialized key character;
//   - ChildStore: []int32, sibling links packed as (node index, next offset)
//     pairs forming one singly linked list per branch point;
//   - MatchStore: []KV, the stored key/value entries in insertion order.
//
// A node carries:
//
//   - char       - the (case-folded) byte this node matches;
//   - childChar  - the byte of its single fast-path extension, meaningful
//     only while childIndex >= 0;
//   - childIndex - NodeStore handle of the fast-path extension, or -1;
//   - match      - MatchStore handle of the key terminating here, or -1;
//   - children   - ChildStore handle of the sibling list head, or -1.
//
// A node with neither a fast-path extension nor a sibling list is a leaf and
// always owns a match; the tail of a leaf's key past its structural depth is
// not materialized as nodes - it lives only in the match entry and is
// compared as a substring during lookups. Splitting happens lazily when a
// second key diverges inside that tail.
//
// Example trie after inserting "cat", "car", "care", "cab":
//
//	[root 'c'] -- ['a'] --+-- [leaf 't' "cat"]
//	                      |
//	                      +-- ['r' "car"] -- [leaf 'e' "care"]
//	                      |
//	                      `-- [leaf 'b' "cab"]
//
// Entries can never be removed and handles are never invalidated; growing a
// store only replaces its backing array. The structure is safe for
// concurrent readers only while no insertion is in flight - writers must be
// externally synchronized against readers.
package flattrie
