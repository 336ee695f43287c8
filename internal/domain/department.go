package domain

// Department groups employees.
type Department struct {
	ID   int64
	Name string
}
