package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/inventario-lite/internal/application/audit"
	"github.com/tu-usuario/inventario-lite/internal/application/usecase"
	"github.com/tu-usuario/inventario-lite/internal/domain"
	"github.com/tu-usuario/inventario-lite/internal/domain/entity"
	httpRouter "github.com/tu-usuario/inventario-lite/internal/interfaces/http"
	"github.com/tu-usuario/inventario-lite/pkg/logger"
)

const testJWTSecret = "secreto-de-pruebas"

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria y armado del app completo (router + middleware reales)
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products   map[string]*entity.Product
	categories map[string]string
}

func (f *fakeProductRepo) Create(p *entity.Product) error {
	for _, existing := range f.products {
		if strings.EqualFold(existing.ProductName, p.ProductName) {
			return domain.ErrDuplicate
		}
	}
	cp := *p
	f.products[p.ID] = &cp
	return nil
}

func (f *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProductRepo) GetByName(name string) (*entity.Product, error) {
	for _, p := range f.products {
		if strings.EqualFold(p.ProductName, name) {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) List() ([]*entity.Product, error) {
	var list []*entity.Product
	for _, p := range f.products {
		cp := *p
		cp.CategoryName = f.categories[p.CategoryID]
		list = append(list, &cp)
	}
	return list, nil
}

func (f *fakeProductRepo) SearchByName(query string) ([]*entity.Product, error) {
	all, _ := f.List()
	var list []*entity.Product
	for _, p := range all {
		if strings.Contains(strings.ToLower(p.ProductName), strings.ToLower(query)) {
			list = append(list, p)
		}
	}
	return list, nil
}

func (f *fakeProductRepo) Update(p *entity.Product) error {
	cp := *p
	f.products[p.ID] = &cp
	return nil
}

func (f *fakeProductRepo) Delete(id string) error {
	delete(f.products, id)
	return nil
}

type fakeCategoryRepo struct {
	categories map[string]*entity.Category
}

func (f *fakeCategoryRepo) Create(c *entity.Category) error {
	for _, existing := range f.categories {
		if strings.EqualFold(existing.CategoryName, c.CategoryName) {
			return domain.ErrDuplicate
		}
	}
	cp := *c
	f.categories[c.ID] = &cp
	return nil
}

func (f *fakeCategoryRepo) GetByName(name string) (*entity.Category, error) {
	for _, c := range f.categories {
		if strings.EqualFold(c.CategoryName, name) {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeCategoryRepo) List() ([]*entity.Category, error) {
	var list []*entity.Category
	for _, c := range f.categories {
		cp := *c
		list = append(list, &cp)
	}
	return list, nil
}

type fakeLogRepo struct {
	entries []*entity.ActivityLogEntry
}

func (f *fakeLogRepo) Append(e *entity.ActivityLogEntry) error {
	cp := *e
	f.entries = append(f.entries, &cp)
	return nil
}

func (f *fakeLogRepo) ListAll() ([]*entity.ActivityLogEntry, error) {
	out := make([]*entity.ActivityLogEntry, len(f.entries))
	copy(out, f.entries)
	sort.SliceStable(out, func(i, j int) bool { return out[i].At.After(out[j].At) })
	return out, nil
}

type testEnv struct {
	app      *fiber.App
	products *fakeProductRepo
	logs     *fakeLogRepo
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	productRepo := &fakeProductRepo{
		products:   make(map[string]*entity.Product),
		categories: map[string]string{"c-1": "Electronics", "c-2": "Stationery"},
	}
	categoryRepo := &fakeCategoryRepo{categories: make(map[string]*entity.Category)}
	logRepo := &fakeLogRepo{}

	log := logger.New(logger.Config{Env: "production", Level: "error"})
	trail := audit.NewTrail(logRepo, log)

	app := fiber.New()
	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:     usecase.NewProductUseCase(productRepo, trail),
		CategoryUC:    usecase.NewCategoryUseCase(categoryRepo),
		ActivityLogUC: usecase.NewActivityLogUseCase(logRepo),
		JWTSecret:     testJWTSecret,
	})
	return &testEnv{app: app, products: productRepo, logs: logRepo}
}

func doJSON(t *testing.T, app *fiber.App, method, target string, body any) (*http.Response, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var decoded map[string]any
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp, decoded
}

func productBody(name string) map[string]any {
	return map[string]any{
		"productName":            name,
		"category":               "c-1",
		"quantity":               50,
		"reorderLevel":           10,
		"price":                  10.0,
		"maximumDiscountedPrice": 8.0,
	}
}

func createProduct(t *testing.T, env *testEnv, name string) string {
	t.Helper()
	resp, body := doJSON(t, env.app, fiber.MethodPost, "/products", productBody(name))
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	product := body["product"].(map[string]any)
	return product["id"].(string)
}

func resultNames(t *testing.T, body map[string]any) []string {
	t.Helper()
	raw, ok := body["results"].([]any)
	require.True(t, ok, "la respuesta debe llevar envelope {results}")
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		out = append(out, item.(map[string]any)["productName"].(string))
	}
	sort.Strings(out)
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// POST /products
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateProduct_201ConEnvelope(t *testing.T) {
	env := newTestEnv(t)

	resp, body := doJSON(t, env.app, fiber.MethodPost, "/products", productBody("Widget"))
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	product, ok := body["product"].(map[string]any)
	require.True(t, ok, "la respuesta debe llevar envelope {product}")
	assert.Equal(t, "Widget", product["productName"])
	assert.Equal(t, "c-1", product["category"], "en mutaciones la categoría viaja como ID")
	assert.Equal(t, float64(50), product["quantity"])
	assert.NotEmpty(t, product["id"])
}

func TestCreateProduct_Duplicado400ConProducto(t *testing.T) {
	env := newTestEnv(t)
	createProduct(t, env, "Widget")

	resp, body := doJSON(t, env.app, fiber.MethodPost, "/products", productBody("wIDGET"))
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Product already exists in inventory.", body["message"])

	product, ok := body["product"].(map[string]any)
	require.True(t, ok, "el 400 de duplicado incluye el producto existente")
	assert.Equal(t, "Widget", product["productName"])
}

func TestCreateProduct_CamposRequeridos(t *testing.T) {
	env := newTestEnv(t)

	resp, body := doJSON(t, env.app, fiber.MethodPost, "/products", map[string]any{"quantity": 1})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "productName and category are required", body["message"])
}

// ──────────────────────────────────────────────────────────────────────────────
// GET /products y /products/:id
// ──────────────────────────────────────────────────────────────────────────────

func TestListProducts_CategoriaResuelta(t *testing.T) {
	env := newTestEnv(t)
	createProduct(t, env, "Widget")

	resp, body := doJSON(t, env.app, fiber.MethodGet, "/products", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	products, ok := body["products"].([]any)
	require.True(t, ok, "la respuesta debe llevar envelope {products}")
	require.Len(t, products, 1)

	category, ok := products[0].(map[string]any)["category"].(map[string]any)
	require.True(t, ok, "en listados la categoría viaja resuelta como objeto")
	assert.Equal(t, "Electronics", category["categoryName"])
}

func TestGetProduct_CategoriaSinResolver(t *testing.T) {
	env := newTestEnv(t)
	id := createProduct(t, env, "Widget")

	resp, body := doJSON(t, env.app, fiber.MethodGet, "/products/"+id, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	product := body["product"].(map[string]any)
	assert.Equal(t, "c-1", product["category"], "el GET individual no resuelve la categoría")
}

func TestGetProduct_NoExiste404(t *testing.T) {
	env := newTestEnv(t)

	resp, body := doJSON(t, env.app, fiber.MethodGet, "/products/no-existe", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Product not found!", body["message"])
}

// ──────────────────────────────────────────────────────────────────────────────
// PUT /products/:id
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateProduct_200(t *testing.T) {
	env := newTestEnv(t)
	id := createProduct(t, env, "Widget")

	in := productBody("Widget")
	in["quantity"] = 40
	resp, body := doJSON(t, env.app, fiber.MethodPut, "/products/"+id, in)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	product := body["product"].(map[string]any)
	assert.Equal(t, float64(40), product["quantity"])
}

func TestUpdateProduct_NoExiste404(t *testing.T) {
	env := newTestEnv(t)

	resp, body := doJSON(t, env.app, fiber.MethodPut, "/products/no-existe", productBody("Widget"))
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Product not found!", body["message"])
}

func TestUpdateProduct_AjusteTipoInvalido400(t *testing.T) {
	env := newTestEnv(t)
	id := createProduct(t, env, "Widget")

	in := productBody("Widget")
	in["adjustment"] = map[string]any{"type": "smash", "quantity": 10}
	resp, body := doJSON(t, env.app, fiber.MethodPut, "/products/"+id, in)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Invalid adjustment type", body["message"])
}

// ──────────────────────────────────────────────────────────────────────────────
// DELETE /products/:id
// ──────────────────────────────────────────────────────────────────────────────

func TestDeleteProduct_200ConMensajeYProducto(t *testing.T) {
	env := newTestEnv(t)
	id := createProduct(t, env, "Widget")

	resp, body := doJSON(t, env.app, fiber.MethodDelete, "/products/"+id,
		map[string]any{"reason": "discontinued"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "Product deleted successfully", body["message"])
	assert.Equal(t, "Widget", body["product"].(map[string]any)["productName"])

	// Segundo delete sobre el mismo ID: ya no existe
	resp, _ = doJSON(t, env.app, fiber.MethodDelete, "/products/"+id, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestDeleteProduct_SinBody(t *testing.T) {
	env := newTestEnv(t)
	id := createProduct(t, env, "Widget")

	// DELETE sin cuerpo es válido: el motivo cae al default
	resp, _ := doJSON(t, env.app, fiber.MethodDelete, "/products/"+id, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	last := env.logs.entries[len(env.logs.entries)-1]
	assert.Equal(t, "Product removed from inventory", last.Reason)
}

// ──────────────────────────────────────────────────────────────────────────────
// Búsqueda y filtros
// ──────────────────────────────────────────────────────────────────────────────

func seedCatalog(t *testing.T, env *testEnv) {
	t.Helper()
	for _, p := range []struct {
		name     string
		category string
		quantity int
	}{
		{"Laptop", "c-1", 0},
		{"Mouse", "c-1", 5},
		{"Notebook", "c-2", 10},
	} {
		in := productBody(p.name)
		in["category"] = p.category
		in["quantity"] = p.quantity
		resp, _ := doJSON(t, env.app, fiber.MethodPost, "/products", in)
		require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	}
}

func TestSearch_EnvelopeResults(t *testing.T) {
	env := newTestEnv(t)
	seedCatalog(t, env)

	resp, body := doJSON(t, env.app, fiber.MethodGet, "/products/search?q=BOOK", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, []string{"Notebook"}, resultNames(t, body))

	// Sin coincidencias: 200 con lista vacía
	resp, body = doJSON(t, env.app, fiber.MethodGet, "/products/search?q=zzz", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Empty(t, body["results"])
}

func TestFilterByCategory(t *testing.T) {
	env := newTestEnv(t)
	seedCatalog(t, env)

	resp, body := doJSON(t, env.app, fiber.MethodGet, "/products/category?c=electro", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, []string{"Laptop", "Mouse"}, resultNames(t, body))

	resp, body = doJSON(t, env.app, fiber.MethodGet, "/products/category", nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Invalid category query", body["message"])
}

func TestFilterByQuantity(t *testing.T) {
	env := newTestEnv(t)
	seedCatalog(t, env)

	resp, body := doJSON(t, env.app, fiber.MethodGet, "/products/quantity?qt=10", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, []string{"Laptop", "Mouse"}, resultNames(t, body), "umbral estricto: 10 queda fuera")

	resp, body = doJSON(t, env.app, fiber.MethodGet, "/products/quantity?qt=abc", nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Invalid quantity query", body["message"])

	resp, body = doJSON(t, env.app, fiber.MethodGet, "/products/quantity", nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Invalid quantity query", body["message"])
}

func TestFilterCombined(t *testing.T) {
	env := newTestEnv(t)
	seedCatalog(t, env)

	resp, body := doJSON(t, env.app, fiber.MethodGet, "/products/filter?c=electronics&qt=5", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, []string{"Laptop"}, resultNames(t, body))

	// Sin parámetros: catálogo completo
	resp, body = doJSON(t, env.app, fiber.MethodGet, "/products/filter", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, []string{"Laptop", "Mouse", "Notebook"}, resultNames(t, body))

	// qt presente pero no numérico sí es 400
	resp, body = doJSON(t, env.app, fiber.MethodGet, "/products/filter?qt=abc", nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Invalid quantity query", body["message"])
}

// ──────────────────────────────────────────────────────────────────────────────
// GET /productActivityLog
// ──────────────────────────────────────────────────────────────────────────────

func TestActivityLog_MasRecientePrimero(t *testing.T) {
	env := newTestEnv(t)

	// Entradas sembradas con timestamps separados para un orden determinista
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	for i, action := range []string{entity.ActionCreate, entity.ActionUpdate, entity.ActionDelete} {
		require.NoError(t, env.logs.Append(&entity.ActivityLogEntry{
			ID:        "e-" + action,
			ProductID: "p-1",
			Action:    action,
			At:        base.Add(time.Duration(i) * time.Minute),
			By:        "system",
		}))
	}

	resp, body := doJSON(t, env.app, fiber.MethodGet, "/productActivityLog", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	logs, ok := body["logs"].([]any)
	require.True(t, ok, "la respuesta debe llevar envelope {logs}")
	require.Len(t, logs, 3)
	assert.Equal(t, entity.ActionDelete, logs[0].(map[string]any)["action"])
	assert.Equal(t, entity.ActionUpdate, logs[1].(map[string]any)["action"])
	assert.Equal(t, entity.ActionCreate, logs[2].(map[string]any)["action"])
}

func TestActivityLog_MutacionesDejanRastro(t *testing.T) {
	env := newTestEnv(t)
	id := createProduct(t, env, "Widget")

	in := productBody("Widget")
	in["quantity"] = 40
	in["adjustment"] = map[string]any{"type": "remove", "quantity": 10, "reason": "damaged"}
	resp, _ := doJSON(t, env.app, fiber.MethodPut, "/products/"+id, in)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, body := doJSON(t, env.app, fiber.MethodGet, "/productActivityLog", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	logs := body["logs"].([]any)
	require.Len(t, logs, 2)

	actions := map[string]bool{}
	for _, l := range logs {
		entry := l.(map[string]any)
		actions[entry["action"].(string)] = true
		assert.Equal(t, "system", entry["by"], "sin token el actor es system")
	}
	assert.True(t, actions[entity.ActionCreate])
	assert.True(t, actions[entity.ActionStockAdjustment])
}
