package correspondence

import (
	"slices"

	"github.com/viant/correspondence/visitor"
)

type (
	// Structure owns an ordered sequence of nodes, each node owns an ordered
	// sequence of groups and each group owns an ordered sequence of entries.
	//
	// Any structural mutation invalidates iterators bound to the structure;
	// their subsequent operations fail with ErrUseAfterInvalidate until Reset.
	// Structure is not safe for concurrent mutation; concurrent reads are safe
	// while nobody mutates it.
	Structure[E any] struct {
		nodes      []*Node[E]
		generation uint64
	}

	// Node represents one primary entity's correspondence record
	Node[E any] struct {
		owner  *Structure[E]
		index  int
		key    any
		groups []*Group[E]
	}

	// Group represents an ordered grouping of entries within a node
	Group[E any] struct {
		owner   *Structure[E]
		index   int
		key     any
		entries []E
	}
)

// NewStructure creates an empty structure
func NewStructure[E any]() *Structure[E] {
	return &Structure[E]{}
}

// Len returns number of nodes
func (s *Structure[E]) Len() int {
	if s == nil {
		return 0
	}
	return len(s.nodes)
}

// Size returns total number of entries across all nodes and groups
func (s *Structure[E]) Size() int {
	if s == nil {
		return 0
	}
	ret := 0
	for _, node := range s.nodes {
		for _, group := range node.groups {
			ret += len(group.entries)
		}
	}
	return ret
}

// Generation returns a counter incremented by every structural mutation
func (s *Structure[E]) Generation() uint64 {
	if s == nil {
		return 0
	}
	return s.generation
}

// Node returns node at index or nil
func (s *Structure[E]) Node(index int) *Node[E] {
	if s == nil || index < 0 || index >= len(s.nodes) {
		return nil
	}
	return s.nodes[index]
}

// Nodes returns node visitor keyed by node index
func (s *Structure[E]) Nodes() visitor.Visitor[int, *Node[E]] {
	if s == nil {
		return visitor.SliceVisitorOf[*Node[E]](nil)
	}
	return visitor.SliceVisitorOf(s.nodes)
}

// AddNode appends a node with an optional opaque key
func (s *Structure[E]) AddNode(key any) *Node[E] {
	node := &Node[E]{owner: s, index: len(s.nodes), key: key}
	s.nodes = append(s.nodes, node)
	s.touch()
	return node
}

// RemoveNode removes node at index, following nodes shift down
func (s *Structure[E]) RemoveNode(index int) error {
	if index < 0 || index >= len(s.nodes) {
		return outOfRange("node", index, len(s.nodes))
	}
	removed := s.nodes[index]
	s.nodes = slices.Delete(s.nodes, index, index+1)
	for i := index; i < len(s.nodes); i++ {
		s.nodes[i].index = i
	}
	removed.detach()
	s.touch()
	return nil
}

// Clear removes all nodes
func (s *Structure[E]) Clear() {
	for _, node := range s.nodes {
		node.detach()
	}
	s.nodes = nil
	s.touch()
}

func (s *Structure[E]) touch() {
	if s != nil {
		s.generation++
	}
}

// Index returns node position in the structure
func (n *Node[E]) Index() int {
	return n.index
}

// Key returns node key
func (n *Node[E]) Key() any {
	return n.key
}

// Len returns number of groups
func (n *Node[E]) Len() int {
	return len(n.groups)
}

// Group returns group at index or nil
func (n *Node[E]) Group(index int) *Group[E] {
	if index < 0 || index >= len(n.groups) {
		return nil
	}
	return n.groups[index]
}

// Groups returns group visitor keyed by group index
func (n *Node[E]) Groups() visitor.Visitor[int, *Group[E]] {
	return visitor.SliceVisitorOf(n.groups)
}

// AddGroup appends a group with an optional opaque key
func (n *Node[E]) AddGroup(key any) *Group[E] {
	group := &Group[E]{owner: n.owner, index: len(n.groups), key: key}
	n.groups = append(n.groups, group)
	n.owner.touch()
	return group
}

// RemoveGroup removes group at index, following groups shift down
func (n *Node[E]) RemoveGroup(index int) error {
	if index < 0 || index >= len(n.groups) {
		return outOfRange("group", index, len(n.groups))
	}
	removed := n.groups[index]
	n.groups = slices.Delete(n.groups, index, index+1)
	for i := index; i < len(n.groups); i++ {
		n.groups[i].index = i
	}
	removed.owner = nil
	n.owner.touch()
	return nil
}

func (n *Node[E]) detach() {
	n.owner = nil
	for _, group := range n.groups {
		group.owner = nil
	}
}

// Index returns group position within its node
func (g *Group[E]) Index() int {
	return g.index
}

// Key returns group key
func (g *Group[E]) Key() any {
	return g.key
}

// Len returns number of entries
func (g *Group[E]) Len() int {
	return len(g.entries)
}

// Entry returns entry at index
func (g *Group[E]) Entry(index int) (E, bool) {
	if index < 0 || index >= len(g.entries) {
		var zero E
		return zero, false
	}
	return g.entries[index], true
}

// Entries returns entry visitor keyed by entry index
func (g *Group[E]) Entries() visitor.Visitor[int, E] {
	return visitor.SliceVisitorOf(g.entries)
}

// Append appends entries
func (g *Group[E]) Append(entries ...E) {
	if len(entries) == 0 {
		return
	}
	g.entries = append(g.entries, entries...)
	g.owner.touch()
}

// Remove removes entry at index, following entries shift down
func (g *Group[E]) Remove(index int) error {
	if index < 0 || index >= len(g.entries) {
		return outOfRange("entry", index, len(g.entries))
	}
	g.entries = slices.Delete(g.entries, index, index+1)
	g.owner.touch()
	return nil
}
