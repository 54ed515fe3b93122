package shopserver

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	planthttpmapper "github.com/m4rkovic/succulent-shop/internal/domains/plants/adapters/http/mapper"
	plantsdomain "github.com/m4rkovic/succulent-shop/internal/domains/plants/domain"
	plantsports "github.com/m4rkovic/succulent-shop/internal/domains/plants/ports"
)

// PlantAPI wires HTTP transport with the plants bounded context service.
type PlantAPI struct {
	service plantsports.Service
}

// NewPlantAPI creates a PlantAPI backed by the provided service.
func NewPlantAPI(service plantsports.Service) PlantAPI {
	return PlantAPI{service: service}
}

// Post /api/v1/plants
// Register a plant so products can reference it
func (api *PlantAPI) AddPlant(c *gin.Context) {
	var payload planthttpmapper.Plant
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	saved, err := api.service.Create(c.Request.Context(), payload.Name, payload.Color, payload.Description)
	if err != nil {
		respondPlantServiceError(c, err)
		return
	}
	c.Header("Location", fmt.Sprintf("%s/%d", c.Request.URL.Path, saved.ID))
	c.JSON(http.StatusCreated, planthttpmapper.FromDomainPlant(saved))
}

// Get /api/v1/plants/:plantId
// Find plant by ID
func (api *PlantAPI) GetPlantById(c *gin.Context) {
	id, ok := parseIDParam(c, "plantId")
	if !ok {
		return
	}
	plant, err := api.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondPlantServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, planthttpmapper.FromDomainPlant(plant))
}

// Get /api/v1/plants
// List plants
func (api *PlantAPI) ListPlants(c *gin.Context) {
	plants, err := api.service.List(c.Request.Context())
	if err != nil {
		respondPlantServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, planthttpmapper.FromDomainPlantList(plants))
}

func respondPlantServiceError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	switch {
	case errors.Is(err, plantsports.ErrNotFound):
		respondError(c, http.StatusNotFound, err)
	case errors.Is(err, plantsdomain.ErrEmptyName):
		respondError(c, http.StatusBadRequest, err)
	default:
		respondError(c, http.StatusInternalServerError, err)
	}
}
