package lox

func Map[T, R any](collection []T, iteratee func(item T) R) []R {
	result := make([]R, len(collection))

	for i, item := range collection {
		result[i] = iteratee(item)
	}

	return result
}

// MapPtr maps an optional value, keeping nil as nil.
func MapPtr[T, R any](value *T, iteratee func(item T) R) *R {
	if value == nil {
		return nil
	}

	result := iteratee(*value)

	return &result
}
