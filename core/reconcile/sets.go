package reconcile

// Difference returns the distinct elements of a that are not in b, keeping the order of a.
func Difference[K comparable](a, b []K) []K {
	exclude := make(map[K]struct{}, len(b))
	for _, k := range b {
		exclude[k] = struct{}{}
	}

	var out []K
	for _, k := range a {
		if _, skip := exclude[k]; skip {
			continue
		}
		exclude[k] = struct{}{}
		out = append(out, k)
	}
	return out
}

// Distinct returns the elements of a with duplicates dropped, keeping first occurrences.
func Distinct[K comparable](a []K) []K {
	return Difference(a, nil)
}
