package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"pouchesitaly/database"
	"pouchesitaly/helper"
	"pouchesitaly/model"
	"pouchesitaly/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedProduct(t *testing.T, name string, active bool) model.Product {
	t.Helper()
	product := model.Product{
		Slug:     helper.GenerateUniqueSlug(database.DB, &model.Product{}, name),
		Name:     name,
		Brand:    "Zyn",
		Flavor:   "Mint",
		PackSize: 20,
		Price:    4.99,
		Active:   utils.Ptr(active),
	}
	require.NoError(t, database.DB.Create(&product).Error)
	return product
}

func TestGenerateUniqueSlugCountsUp(t *testing.T) {
	setupTestDB(t)

	first := seedProduct(t, "Cool Mint 6mg", true)
	second := seedProduct(t, "Cool Mint 6mg", true)
	third := seedProduct(t, "Cool Mint 6mg", true)

	assert.Equal(t, "cool-mint-6mg", first.Slug)
	assert.Equal(t, "cool-mint-6mg-1", second.Slug)
	assert.Equal(t, "cool-mint-6mg-2", third.Slug)
}

func TestPublicCatalogHidesInactive(t *testing.T) {
	setupTestDB(t)
	seedProduct(t, "Velo Ice", true)
	hidden := seedProduct(t, "Discontinued", false)

	app := newBridgeApp()
	app.Get("/product", GetProducts)
	app.Get("/product/:slug", GetProductBySlug)

	req := httptest.NewRequest(http.MethodGet, "/product", nil)
	resp, err := app.Test(req, 10000)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var count int64
	database.DB.Model(&model.Product{}).Where("active = ?", true).Count(&count)
	assert.Equal(t, int64(1), count)

	// the false flag survives the insert instead of the column default
	var stored model.Product
	require.NoError(t, database.DB.First(&stored, hidden.ID).Error)
	require.NotNil(t, stored.Active)
	assert.False(t, *stored.Active)

	// inactive product is a 404 on the public detail route
	req = httptest.NewRequest(http.MethodGet, "/product/"+hidden.Slug, nil)
	resp, err = app.Test(req, 10000)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCreateProductStartsActive(t *testing.T) {
	setupTestDB(t)

	app := newBridgeApp()
	app.Post("/product", func(c *fiber.Ctx) error {
		c.Locals("createProductInput", model.CreateProductInput{
			Name: "Loop Mint", Brand: "Loop", Flavor: "Mint",
			PackSize: 22, Price: 5.29,
		})
		return c.Next()
	}, CreateProduct)

	req := httptest.NewRequest(http.MethodPost, "/product", nil)
	resp, err := app.Test(req, 10000)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var product model.Product
	require.NoError(t, database.DB.Where("slug = ?", "loop-mint").First(&product).Error)
	require.NotNil(t, product.Active)
	assert.True(t, *product.Active)
}

func TestPublicCatalogFilters(t *testing.T) {
	setupTestDB(t)
	seedProduct(t, "Zyn Cool Mint", true)

	other := model.Product{
		Slug: "velo-berry", Name: "Velo Berry", Brand: "Velo",
		Flavor: "Berry", PackSize: 18, Price: 5.49, Active: utils.Ptr(true),
	}
	require.NoError(t, database.DB.Create(&other).Error)

	app := newBridgeApp()
	app.Get("/product", GetProducts)

	req := httptest.NewRequest(http.MethodGet, "/product?brand=Velo", nil)
	resp, err := app.Test(req, 10000)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
