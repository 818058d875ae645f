package dto

import "github.com/shopspring/decimal"

// CreateProductRequest entrada para crear un producto. `category` es el ID de
// la categoría referenciada. El servidor NO valida price >= maximumDiscountedPrice:
// esa regla vive solo en el cliente (hueco preservado del sistema original).
type CreateProductRequest struct {
	ProductName            string          `json:"productName" validate:"required,min=1,max=200"`
	Category               string          `json:"category" validate:"required"`
	Quantity               int             `json:"quantity" validate:"min=0"`
	ReorderLevel           *int            `json:"reorderLevel"` // nil -> default 10
	Price                  decimal.Decimal `json:"price"`
	MaximumDiscountedPrice decimal.Decimal `json:"maximumDiscountedPrice"`
}

// StockAdjustment descriptor opcional de ajuste de inventario en un update.
// Su presencia cambia la acción registrada a "stock-adjustment".
type StockAdjustment struct {
	Type     string `json:"type"` // add | remove
	Quantity int    `json:"quantity"`
	Reason   string `json:"reason"`
}

// UpdateProductRequest entrada para actualizar un producto. Es un replace
// completo de los seis campos rastreados: el caller debe enviarlos todos,
// incluso los que no cambian.
type UpdateProductRequest struct {
	ProductName            string           `json:"productName" validate:"required,min=1,max=200"`
	Category               string           `json:"category" validate:"required"`
	Quantity               int              `json:"quantity" validate:"min=0"`
	ReorderLevel           int              `json:"reorderLevel" validate:"min=0"`
	Price                  decimal.Decimal  `json:"price"`
	MaximumDiscountedPrice decimal.Decimal  `json:"maximumDiscountedPrice"`
	Adjustment             *StockAdjustment `json:"adjustment"`
}

// DeleteProductRequest cuerpo opcional del delete: motivo para la bitácora.
type DeleteProductRequest struct {
	Reason string `json:"reason"`
}

// ProductResponse salida de un producto sin resolver la categoría
// (`category` es el ID), como en las lecturas individuales y mutaciones.
type ProductResponse struct {
	ID                     string          `json:"id"`
	ProductName            string          `json:"productName"`
	Category               string          `json:"category"`
	Quantity               int             `json:"quantity"`
	ReorderLevel           int             `json:"reorderLevel"`
	Price                  decimal.Decimal `json:"price"`
	MaximumDiscountedPrice decimal.Decimal `json:"maximumDiscountedPrice"`
}

// CategoryRef vista resuelta de la categoría en listados: solo el nombre,
// sin el ID (equivalente al populate "categoryName -_id" del original).
type CategoryRef struct {
	CategoryName string `json:"categoryName"`
}

// ResolvedProductResponse salida de un producto en listados, búsqueda y
// filtros: la categoría viaja resuelta por nombre.
type ResolvedProductResponse struct {
	ID                     string          `json:"id"`
	ProductName            string          `json:"productName"`
	Category               CategoryRef     `json:"category"`
	Quantity               int             `json:"quantity"`
	ReorderLevel           int             `json:"reorderLevel"`
	Price                  decimal.Decimal `json:"price"`
	MaximumDiscountedPrice decimal.Decimal `json:"maximumDiscountedPrice"`
}
