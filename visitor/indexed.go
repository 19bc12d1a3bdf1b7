package visitor

import "fmt"

// IndexedVisitor visits count elements resolved on demand by index
type IndexedVisitor[E any] struct {
	count int
	at    func(index int) (E, error)
}

// IndexedVisitorOf creates a visitor over count elements, each element is resolved right before the callback
func IndexedVisitorOf[E any](count int, at func(index int) (E, error)) Visitor[int, E] {
	if count < 0 {
		count = 0
	}
	visitor := &IndexedVisitor[E]{count: count, at: at}
	return visitor.Visit
}

// Visit resolves and visits elements in index order.
// - If f returns (false, nil), iteration stops early.
// - If element resolution or f returns an error, iteration stops with that error.
func (v *IndexedVisitor[E]) Visit(f func(index int, element E) (bool, error)) error {
	for i := 0; i < v.count; i++ {
		elem, err := v.at(i)
		if err != nil {
			return fmt.Errorf("failed to resolve element %v: %w", i, err)
		}
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
