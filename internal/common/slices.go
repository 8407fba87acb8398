package common

// UnknownStr is printed for enum values that have no name.
const UnknownStr = "unknown"

// IsEmpty returns true if the slice is empty.
func IsEmpty[S ~[]E, E any](s S) bool {
	return len(s) == 0
}

// IsSingle returns true if the slice has exactly one element.
func IsSingle[S ~[]E, E any](s S) bool {
	return len(s) == 1
}

// Duplicates returns every element that appears more than once, in order of
// its second appearance. Each duplicate is reported once.
func Duplicates[S ~[]E, E comparable](s S) []E {
	seen := make(map[E]int, len(s))

	var dups []E

	for _, e := range s {
		seen[e]++
		if seen[e] == 2 {
			dups = append(dups, e)
		}
	}

	return dups
}

// IndexOf returns the position of e in s, or -1.
func IndexOf[S ~[]E, E comparable](s S, e E) int {
	for i := range s {
		if s[i] == e {
			return i
		}
	}

	return -1
}
