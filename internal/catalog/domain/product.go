package domain

// Product is seeded once at process start and never mutated afterwards.
type Product struct {
	ID          int
	Name        string
	Price       float64
	Description string
	Image       string
}
