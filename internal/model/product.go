package model

// ProductID identifies a product. Product ids are assigned by the caller
// when the product is added, not generated by the store.
type ProductID string

// Product is a purchasable item with a one-way availability transition:
// once sold it never becomes available again.
type Product struct {
	ID        ProductID
	Name      string
	Price     float64
	Available bool
}
