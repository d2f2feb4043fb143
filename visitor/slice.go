package visitor

// SliceVisitor implements Visitor[int, E] for []E
type SliceVisitor[E any] struct {
	data []E
}

// SliceVisitorOf creates a Visitor for []E, the key is the slice index.
// The slice is captured when the visitor is created.
func SliceVisitorOf[E any](slice []E) Visitor[int, E] {
	visitor := &SliceVisitor[E]{data: slice}
	return visitor.Visit
}

// Visit iterates over the slice, calling the provided function for each element.
func (v *SliceVisitor[E]) Visit(f func(key int, element E) (bool, error)) error {
	for i, elem := range v.data {
		continueVisit, err := f(i, elem)
		if err != nil {
			return err
		}
		if !continueVisit {
			break
		}
	}
	return nil
}
