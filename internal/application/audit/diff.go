package audit

import (
	"encoding/json"
	"strconv"

	"github.com/tu-usuario/inventario-lite/internal/domain/entity"
)

// Nombres de los campos rastreados, en el orden en que se comparan y reportan.
const (
	FieldProductName            = "productName"
	FieldCategory               = "category"
	FieldQuantity               = "quantity"
	FieldReorderLevel           = "reorderLevel"
	FieldPrice                  = "price"
	FieldMaximumDiscountedPrice = "maximumDiscountedPrice"
)

// TrackedFields son los seis atributos de producto que generan diff en un update.
var TrackedFields = []string{
	FieldProductName,
	FieldCategory,
	FieldQuantity,
	FieldReorderLevel,
	FieldPrice,
	FieldMaximumDiscountedPrice,
}

// Diff compara los campos rastreados de dos versiones de un producto por su
// forma string. La categoría se compara por su ID, no por igualdad profunda
// del documento referenciado. Devuelve un cambio por cada campo cuya forma
// string difiere; slice vacío si no cambió nada.
func Diff(before, after *entity.Product) []entity.FieldChange {
	var changes []entity.FieldChange
	for _, field := range TrackedFields {
		oldVal := fieldString(before, field)
		newVal := fieldString(after, field)
		if oldVal != newVal {
			changes = append(changes, entity.FieldChange{
				Field:    field,
				OldValue: oldVal,
				NewValue: newVal,
			})
		}
	}
	return changes
}

// fieldString es la forma canónica string de cada campo rastreado: la misma
// que viaja en oldValue/newValue de la bitácora.
func fieldString(p *entity.Product, field string) string {
	switch field {
	case FieldProductName:
		return p.ProductName
	case FieldCategory:
		return p.CategoryID
	case FieldQuantity:
		return strconv.Itoa(p.Quantity)
	case FieldReorderLevel:
		return strconv.Itoa(p.ReorderLevel)
	case FieldPrice:
		return p.Price.String()
	case FieldMaximumDiscountedPrice:
		return p.MaximumDiscountedPrice.String()
	}
	return ""
}

// productSnapshot es el documento completo que se congela en la bitácora para
// create y delete. Mismos nombres de campo que el API; category como ID.
type productSnapshot struct {
	ID                     string `json:"id"`
	ProductName            string `json:"productName"`
	Category               string `json:"category"`
	Quantity               int    `json:"quantity"`
	ReorderLevel           int    `json:"reorderLevel"`
	Price                  string `json:"price"`
	MaximumDiscountedPrice string `json:"maximumDiscountedPrice"`
}

// Snapshot serializa la copia desnormalizada de un producto para una entrada
// create/delete. Sobrevive al borrado del producto.
func Snapshot(p *entity.Product) json.RawMessage {
	b, err := json.Marshal(productSnapshot{
		ID:                     p.ID,
		ProductName:            p.ProductName,
		Category:               p.CategoryID,
		Quantity:               p.Quantity,
		ReorderLevel:           p.ReorderLevel,
		Price:                  p.Price.String(),
		MaximumDiscountedPrice: p.MaximumDiscountedPrice.String(),
	})
	if err != nil {
		// Marshal de un struct plano no falla; nil deja el snapshot vacío.
		return nil
	}
	return b
}
