package correspondence

import (
	"log/slog"
)

// Iterator is a forward-only, restartable cursor over the leaf entries of a Structure,
// visited in node, group, entry order. Empty nodes and groups are skipped.
//
// Usage:
//
//	it, _ := NewIterator(structure)
//	for !it.IsAtEnd() {
//	    entry, err := it.Current()
//	    if err != nil {
//	        return err
//	    }
//	    // process entry
//	    if err := it.GoToNext(); err != nil {
//	        return err
//	    }
//	}
//
// The iterator does not own the structure. Mutating the structure while the
// iterator is bound to it is a precondition violation: every operation except
// IsAtEnd and Reset then fails with ErrUseAfterInvalidate.
// An Iterator must not be shared between goroutines.
type Iterator[E any] struct {
	structure  *Structure[E]
	position   Position
	atEnd      bool
	generation uint64
	logger     *slog.Logger
}

// NewIterator creates an iterator positioned on the first entry of structure.
// If structure has no nodes the iterator starts at end and ErrEmptyStructure is
// returned together with the usable iterator.
func NewIterator[E any](structure *Structure[E], opts ...Option) (*Iterator[E], error) {
	options := newOptions(opts)
	ret := &Iterator[E]{structure: structure, logger: options.logger}
	return ret, ret.Reset()
}

// Reset rewinds the iterator to the first entry and accepts the current structure generation.
// It returns ErrEmptyStructure when the structure has no nodes; the iterator is then at end.
func (i *Iterator[E]) Reset() error {
	i.position = Position{}
	i.atEnd = false
	i.generation = i.structure.Generation()
	if i.structure.Len() == 0 {
		i.atEnd = true
		i.logger.Debug("reset over empty structure")
		return ErrEmptyStructure
	}
	i.seek()
	return nil
}

// IsAtEnd returns true when the node position has advanced past the last node.
// It does not check the structure generation: an invalidated iterator that is not
// at end keeps returning false, and its GoToNext keeps failing with ErrUseAfterInvalidate.
func (i *Iterator[E]) IsAtEnd() bool {
	return i.atEnd
}

// Current returns the current entry
func (i *Iterator[E]) Current() (E, error) {
	if err := i.check("current"); err != nil {
		var zero E
		return zero, err
	}
	return i.group().entries[i.position.Entry], nil
}

// Node returns the node owning the current entry
func (i *Iterator[E]) Node() (*Node[E], error) {
	if err := i.check("node"); err != nil {
		return nil, err
	}
	return i.structure.nodes[i.position.Node], nil
}

// Group returns the group owning the current entry
func (i *Iterator[E]) Group() (*Group[E], error) {
	if err := i.check("group"); err != nil {
		return nil, err
	}
	return i.group(), nil
}

// Position returns the current entry position
func (i *Iterator[E]) Position() (Position, error) {
	if err := i.check("position"); err != nil {
		return Position{}, err
	}
	return i.position, nil
}

// GoToNext advances to the next entry, skipping any number of empty groups and nodes
func (i *Iterator[E]) GoToNext() error {
	if err := i.check("goToNext"); err != nil {
		return err
	}
	i.position.Entry++
	if i.position.Entry < len(i.group().entries) {
		return nil
	}
	i.position.Group++
	i.seek()
	return nil
}

// GoToNextGroup skips the remaining entries of the current group and moves to the first
// entry of the next non-empty group
func (i *Iterator[E]) GoToNextGroup() error {
	if err := i.check("goToNextGroup"); err != nil {
		return err
	}
	i.position.Group++
	i.seek()
	return nil
}

// GoToNextNode skips the remaining groups of the current node and moves to the first
// entry of the next node having one
func (i *Iterator[E]) GoToNextNode() error {
	if err := i.check("goToNextNode"); err != nil {
		return err
	}
	i.position.Node++
	i.position.Group = 0
	i.seek()
	return nil
}

// seek moves forward from position.Node/position.Group to the first group with an entry
// or sets atEnd. Emptiness is tested at every level before indexing.
func (i *Iterator[E]) seek() {
	i.position.Entry = 0
	from := i.position
	nodes := i.structure.nodes
	for i.position.Node < len(nodes) {
		groups := nodes[i.position.Node].groups
		for i.position.Group < len(groups) {
			if len(groups[i.position.Group].entries) > 0 {
				i.logSkip(from)
				return
			}
			i.position.Group++
		}
		i.position.Node++
		i.position.Group = 0
	}
	i.atEnd = true
	i.logSkip(from)
}

func (i *Iterator[E]) logSkip(from Position) {
	if from.Node == i.position.Node && from.Group == i.position.Group {
		return
	}
	i.logger.Debug("skipped empty levels", slog.String("from", from.String()), slog.String("to", i.position.String()), slog.Bool("atEnd", i.atEnd))
}

func (i *Iterator[E]) group() *Group[E] {
	return i.structure.nodes[i.position.Node].groups[i.position.Group]
}

func (i *Iterator[E]) check(op string) error {
	if i.generation != i.structure.Generation() {
		return cursorError(ErrUseAfterInvalidate, op, i.position)
	}
	if i.atEnd {
		return cursorError(ErrInvalidCursor, op, i.position)
	}
	return nil
}
