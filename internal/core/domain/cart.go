package domain

// CartLine is one purchasable variant in the cart. VariantID is the line
// key: exactly one line exists per variant at any time. Price is a snapshot
// of the product price at add time.
type CartLine struct {
	VariantID string
	ProductID string
	Name      string
	Price     float64
	Quantity  int
	Image     string
	Size      string
}

// VariantID derives the cart line key for a (product, size) pair.
// Deterministic: the same pair always yields the same key.
func VariantID(productID, size string) string {
	return productID + "_" + size
}
