package appointment

// Filter narrows an appointment listing. Facets combine with AND.
// An empty From disables the date predicate.
type Filter struct {
	PersonID   *uint
	JobID      *uint
	From       string
	SortByDate bool
}

// Visibility returns the default listing filter for today.
func Visibility(today string) Filter {
	return Filter{From: today}
}
