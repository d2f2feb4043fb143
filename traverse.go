package correspondence

import (
	"iter"

	"github.com/viant/correspondence/visitor"
)

// All returns an iterator over every entry with its position, in the order Iterator visits them.
// Use Iterator when the traversal needs to be paused, skipped per group or restarted.
func (s *Structure[E]) All() iter.Seq2[Position, E] {
	return func(yield func(Position, E) bool) {
		if s == nil {
			return
		}
		for n, node := range s.nodes {
			for g, group := range node.groups {
				for e, entry := range group.entries {
					if !yield(Position{Node: n, Group: g, Entry: e}, entry) {
						return
					}
				}
			}
		}
	}
}

// Visit calls fn for every entry with its position.
// If fn returns (false, nil) the visit stops, if fn returns an error the visit stops and returns it.
func (s *Structure[E]) Visit(fn func(position Position, entry E) (bool, error)) error {
	groups := visitor.Nested(s.Nodes(), func(_ int, node *Node[E]) visitor.Visitor[int, *Group[E]] {
		return node.Groups()
	})
	entries := visitor.Nested(groups, func(_ visitor.Pair[int, int], group *Group[E]) visitor.Visitor[int, E] {
		return group.Entries()
	})
	return entries(func(key visitor.Pair[visitor.Pair[int, int], int], entry E) (bool, error) {
		return fn(Position{Node: key.Outer.Outer, Group: key.Outer.Inner, Entry: key.Inner}, entry)
	})
}
