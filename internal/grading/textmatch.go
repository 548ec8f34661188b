package grading

import "strings"

// collapse lower-cases s and squeezes whitespace runs to a single space.
func collapse(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// fuzzyMatch accepts an exact match after collapsing, or either side
// containing the other.
func fuzzyMatch(accepted, user string) bool {
	a, u := collapse(accepted), collapse(user)
	return a == u || strings.Contains(a, u) || strings.Contains(u, a)
}
