package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/inventario-lite/internal/application/dto"
	"github.com/tu-usuario/inventario-lite/internal/application/usecase"
	"github.com/tu-usuario/inventario-lite/internal/domain"
)

// ProductHandler maneja las peticiones HTTP de productos.
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// List godoc
// @Summary      Listar productos
// @Tags         products
// @Produce      json
// @Success      200  {object}  map[string][]dto.ResolvedProductResponse
// @Router       /products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	products, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error"})
	}
	return c.JSON(fiber.Map{"products": products})
}

// Create godoc
// @Summary      Crear producto
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Datos del producto"
// @Success      201   {object}  map[string]dto.ProductResponse
// @Failure      400   {object}  map[string]interface{}
// @Router       /products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}
	if in.ProductName == "" || in.Category == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "productName and category are required"})
	}
	out, err := h.uc.Create(GetActor(c), in)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			// 400 con el producto existente para que el caller desambigüe.
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Product already exists in inventory.",
				"product": out,
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Error adding product"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"product": out})
}

// Search godoc
// @Summary      Buscar productos por nombre (substring, case-insensitive)
// @Tags         products
// @Produce      json
// @Param        q  query  string  false  "Texto a buscar"
// @Success      200  {object}  map[string][]dto.ResolvedProductResponse
// @Router       /products/search [get]
func (h *ProductHandler) Search(c *fiber.Ctx) error {
	results, err := h.uc.SearchByName(c.Query("q"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error"})
	}
	return c.JSON(fiber.Map{"results": results})
}

// FilterByCategory godoc
// @Summary      Filtrar productos por nombre de categoría (substring)
// @Tags         products
// @Produce      json
// @Param        c  query  string  true  "Substring del nombre de categoría"
// @Success      200  {object}  map[string][]dto.ResolvedProductResponse
// @Failure      400  {object}  map[string]string
// @Router       /products/category [get]
func (h *ProductHandler) FilterByCategory(c *fiber.Ctx) error {
	term := c.Query("c")
	if term == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid category query"})
	}
	results, err := h.uc.FilterByCategory(term)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error"})
	}
	return c.JSON(fiber.Map{"results": results})
}

// FilterByQuantity godoc
// @Summary      Filtrar productos con cantidad estrictamente menor al umbral
// @Tags         products
// @Produce      json
// @Param        qt  query  int  true  "Umbral (exclusivo)"
// @Success      200  {object}  map[string][]dto.ResolvedProductResponse
// @Failure      400  {object}  map[string]string
// @Router       /products/quantity [get]
func (h *ProductHandler) FilterByQuantity(c *fiber.Ctx) error {
	threshold, err := strconv.Atoi(c.Query("qt"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid quantity query"})
	}
	results, err := h.uc.FilterByQuantity(threshold)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error"})
	}
	return c.JSON(fiber.Map{"results": results})
}

// FilterCombined godoc
// @Summary      Filtro combinado por categoría y/o cantidad (conjunción)
// @Tags         products
// @Produce      json
// @Param        c   query  string  false  "Substring del nombre de categoría"
// @Param        qt  query  int     false  "Umbral de cantidad (exclusivo)"
// @Success      200  {object}  map[string][]dto.ResolvedProductResponse
// @Failure      400  {object}  map[string]string
// @Router       /products/filter [get]
func (h *ProductHandler) FilterCombined(c *fiber.Ctx) error {
	var term *string
	if t := c.Query("c"); t != "" {
		term = &t
	}
	// Parámetro ausente o vacío deshabilita el predicado; presente pero no
	// numérico es 400.
	var threshold *int
	if qt := c.Query("qt"); qt != "" {
		n, err := strconv.Atoi(qt)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid quantity query"})
		}
		threshold = &n
	}
	results, err := h.uc.FilterCombined(term, threshold)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error"})
	}
	return c.JSON(fiber.Map{"results": results})
}

// GetByID godoc
// @Summary      Obtener producto por ID (categoría sin resolver)
// @Tags         products
// @Produce      json
// @Param        id  path  string  true  "ID del producto"
// @Success      200  {object}  map[string]dto.ProductResponse
// @Failure      404  {object}  map[string]string
// @Router       /products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error"})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Product not found!"})
	}
	return c.JSON(fiber.Map{"product": out})
}

// Update godoc
// @Summary      Actualizar producto (replace de los seis campos, ajuste opcional)
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.UpdateProductRequest  true  "Seis campos + adjustment opcional"
// @Success      200   {object}  map[string]dto.ProductResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}
	if in.ProductName == "" || in.Category == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "productName and category are required"})
	}
	out, err := h.uc.Update(GetActor(c), c.Params("id"), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid adjustment type"})
		case errors.Is(err, domain.ErrDuplicate):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Product already exists in inventory."})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Error updating product"})
		}
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Product not found!"})
	}
	return c.JSON(fiber.Map{"product": out})
}

// Delete godoc
// @Summary      Eliminar producto (motivo opcional en el body)
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id  path  string  true  "ID del producto"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	var in dto.DeleteProductRequest
	// El body es opcional: un DELETE sin cuerpo no es un error.
	_ = c.BodyParser(&in)
	out, err := h.uc.Delete(GetActor(c), c.Params("id"), in.Reason)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Error deleting product"})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Product not found!"})
	}
	return c.JSON(fiber.Map{"message": "Product deleted successfully", "product": out})
}
