package domain

type (
	Product struct {
		ID          string
		Name        string
		Price       float64
		Image       string
		Description string
		Badge       string
		Colors      []string
	}
)

// Sizes is the size run every product is sold in.
var Sizes = []string{"S", "M", "L", "XL", "XXL"}
