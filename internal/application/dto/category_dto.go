package dto

// CreateCategoryRequest entrada para crear una categoría.
type CreateCategoryRequest struct {
	CategoryName string `json:"categoryName" validate:"required,min=1,max=200"`
	Description  string `json:"description"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID           string `json:"id"`
	CategoryName string `json:"categoryName"`
	Description  string `json:"description"`
}
