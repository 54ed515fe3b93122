package shopserver

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	producthttpmapper "github.com/m4rkovic/succulent-shop/internal/domains/catalog/adapters/http/mapper"
	catalogapp "github.com/m4rkovic/succulent-shop/internal/domains/catalog/application"
	catalogtypes "github.com/m4rkovic/succulent-shop/internal/domains/catalog/application/types"
	catalogports "github.com/m4rkovic/succulent-shop/internal/domains/catalog/ports"
)

// ProductAPI wires HTTP transport with the catalog bounded context service.
type ProductAPI struct {
	service catalogports.Service
}

// NewProductAPI creates a ProductAPI backed by the provided service.
func NewProductAPI(service catalogports.Service) ProductAPI {
	return ProductAPI{service: service}
}

// Post /api/v1/products
// Add a new product to the catalog
func (api *ProductAPI) AddProduct(c *gin.Context) {
	var payload producthttpmapper.MutationProduct
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	input := catalogtypes.CreateProductInput{ProductMutationInput: producthttpmapper.ToMutationInput(payload)}
	saved, err := api.service.CreateProduct(c.Request.Context(), input)
	if err != nil {
		respondProductServiceError(c, err)
		return
	}
	c.Header("Location", fmt.Sprintf("%s/%d", c.Request.URL.Path, saved.ID))
	c.JSON(http.StatusCreated, producthttpmapper.FromDomainProduct(saved))
}

// Get /api/v1/products/:productId
// Find product by ID
func (api *ProductAPI) GetProductById(c *gin.Context) {
	id, ok := parseIDParam(c, "productId")
	if !ok {
		return
	}
	product, err := api.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondProductServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, producthttpmapper.FromDomainProduct(product))
}

// Get /api/v1/products
// List catalog products
func (api *ProductAPI) ListProducts(c *gin.Context) {
	products, err := api.service.List(c.Request.Context())
	if err != nil {
		respondProductServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, producthttpmapper.FromDomainProductList(products))
}

// Patch /api/v1/products/:productId
// Merge a partial update into an existing product
func (api *ProductAPI) UpdateProduct(c *gin.Context) {
	id, ok := parseIDParam(c, "productId")
	if !ok {
		return
	}
	var payload producthttpmapper.MutationProduct
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	mutation := producthttpmapper.ToMutationInput(payload)
	mutation.ID = id
	updated, err := api.service.UpdateProduct(c.Request.Context(), catalogtypes.UpdateProductInput{ProductMutationInput: mutation})
	if err != nil {
		respondProductServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, producthttpmapper.FromDomainProduct(updated))
}

// Delete /api/v1/products/:productId
// Delete a product
func (api *ProductAPI) DeleteProduct(c *gin.Context) {
	id, ok := parseIDParam(c, "productId")
	if !ok {
		return
	}
	if err := api.service.Delete(c.Request.Context(), id); err != nil {
		respondProductServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func respondProductServiceError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	switch {
	case errors.Is(err, catalogports.ErrNotFound), errors.Is(err, catalogports.ErrPlantNotFound):
		respondError(c, http.StatusNotFound, err)
	case errors.Is(err, catalogapp.ErrInvalidInput):
		respondError(c, http.StatusBadRequest, err)
	default:
		respondError(c, http.StatusInternalServerError, err)
	}
}
