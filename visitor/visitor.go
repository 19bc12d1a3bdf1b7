package visitor

// Visitor visits (key, element) pairs, i.e. (child index, child value).
// If the callback returns (false, nil), the Visit stops.
// If the callback returns an error, the Visit stops and returns that error.
type Visitor[K comparable, E any] func(func(key K, element E) (bool, error)) error
