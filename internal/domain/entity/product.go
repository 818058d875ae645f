package entity

import "github.com/shopspring/decimal"

// Product representa un artículo del inventario. El nombre es único
// (case-insensitive) y la categoría se referencia, no se posee: borrar una
// categoría no cascadea sobre sus productos.
type Product struct {
	ID                     string
	ProductName            string
	CategoryID             string
	CategoryName           string // resuelto vía JOIN en listados; vacío en lecturas por ID
	Quantity               int
	ReorderLevel           int // default 10
	Price                  decimal.Decimal
	MaximumDiscountedPrice decimal.Decimal
}
