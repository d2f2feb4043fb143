package visitor

// Pair represents a composite key of an outer and an inner visitor
type Pair[K1, K2 comparable] struct {
	Outer K1
	Inner K2
}

// Nested returns a visitor over the inner elements of every outer element, in outer order.
// Outer elements with a nil inner visitor are skipped.
// Stopping or failing the inner visit stops the outer visit too.
func Nested[K1, K2 comparable, E1, E2 any](outer Visitor[K1, E1], inner func(key K1, element E1) Visitor[K2, E2]) Visitor[Pair[K1, K2], E2] {
	return func(f func(key Pair[K1, K2], element E2) (bool, error)) error {
		return outer(func(outerKey K1, outerElement E1) (bool, error) {
			innerVisit := inner(outerKey, outerElement)
			if innerVisit == nil {
				return true, nil
			}
			continueVisit := true
			err := innerVisit(func(innerKey K2, element E2) (bool, error) {
				var err error
				continueVisit, err = f(Pair[K1, K2]{Outer: outerKey, Inner: innerKey}, element)
				return continueVisit, err
			})
			if err != nil {
				return false, err
			}
			return continueVisit, nil
		})
	}
}
