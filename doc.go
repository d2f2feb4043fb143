// Package correspondence provides a three level correspondence structure and
// a restartable cursor over its leaf entries.
//
// A Structure owns an ordered sequence of nodes; every node owns an ordered
// sequence of secondary groups and every group owns an ordered sequence of
// entries. Entries are opaque to this package.
//
// Iterator exposes the nesting as a flat traversal in document order and skips
// nodes without groups and groups without entries:
//
//	it, err := correspondence.NewIterator(structure)
//	if err != nil && !errors.Is(err, correspondence.ErrEmptyStructure) {
//	    return err
//	}
//	for !it.IsAtEnd() {
//	    entry, err := it.Current()
//	    if err != nil {
//	        return err
//	    }
//	    node, _ := it.Node()
//	    // correlate entry with node.Key()
//	    if err := it.GoToNext(); err != nil {
//	        return err
//	    }
//	}
//
// IsAtEnd does not report invalidation: after the structure is mutated, GoToNext
// fails with ErrUseAfterInvalidate without moving, so loops must check its error.
//
// Structure.All and Structure.Visit offer the same order as push style traversal,
// Builder populates a structure from flat struct tagged records.
package correspondence
