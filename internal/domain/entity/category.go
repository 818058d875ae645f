package entity

// Category representa una categoría de productos. Es create-only: el sistema
// nunca la actualiza ni la elimina.
type Category struct {
	ID           string
	CategoryName string // único, case-insensitive
	Description  string
}
