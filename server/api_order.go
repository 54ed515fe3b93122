package shopserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	orderhttpmapper "github.com/m4rkovic/succulent-shop/internal/domains/orders/adapters/http/mapper"
	ordersapp "github.com/m4rkovic/succulent-shop/internal/domains/orders/application"
	ordersdomain "github.com/m4rkovic/succulent-shop/internal/domains/orders/domain"
	ordersports "github.com/m4rkovic/succulent-shop/internal/domains/orders/ports"
)

// IdempotencyKeyHeader carries the client-chosen key that makes order
// placement retries replay the original result.
const IdempotencyKeyHeader = "Idempotency-Key"

// OrderAPI wires HTTP transport with the orders bounded context service and workflows.
type OrderAPI struct {
	service   ordersports.Service
	workflows ordersports.WorkflowOrchestrator
}

// NewOrderAPI creates an OrderAPI backed by the provided service.
func NewOrderAPI(service ordersports.Service, workflows ordersports.WorkflowOrchestrator) OrderAPI {
	return OrderAPI{service: service, workflows: workflows}
}

// Post /api/v1/orders
// Place a new order
func (api *OrderAPI) CreateOrder(c *gin.Context) {
	var payload orderhttpmapper.PlaceOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	input := ordersports.PlaceOrderInput{
		UserID:         payload.UserID,
		ProductIDs:     payload.ProductIDs,
		IdempotencyKey: strings.TrimSpace(c.GetHeader(IdempotencyKeyHeader)),
	}
	saved, err := api.placeOrder(c.Request.Context(), input)
	if err != nil {
		respondOrderServiceError(c, err)
		return
	}
	c.Header("Location", fmt.Sprintf("%s/%d", c.Request.URL.Path, saved.ID))
	c.JSON(http.StatusCreated, orderhttpmapper.FromDomainOrder(saved))
}

func (api *OrderAPI) placeOrder(ctx context.Context, input ordersports.PlaceOrderInput) (*ordersdomain.Order, error) {
	if api.workflows != nil {
		return api.workflows.PlaceOrder(ctx, input)
	}
	return api.service.PlaceOrder(ctx, input)
}

// Get /api/v1/orders/:orderId
// Find order by ID
func (api *OrderAPI) GetOrderById(c *gin.Context) {
	id, ok := parseIDParam(c, "orderId")
	if !ok {
		return
	}
	order, err := api.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondOrderServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, orderhttpmapper.FromDomainOrder(order))
}

// Get /api/v1/orders
// List orders, optionally scoped to a user via ?userId=
func (api *OrderAPI) ListOrders(c *gin.Context) {
	if raw := strings.TrimSpace(c.Query("userId")); raw != "" {
		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			respondError(c, http.StatusBadRequest, err)
			return
		}
		orders, err := api.service.ListByUser(c.Request.Context(), userID)
		if err != nil {
			respondOrderServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, orderhttpmapper.FromDomainOrderList(orders))
		return
	}
	orders, err := api.service.List(c.Request.Context())
	if err != nil {
		respondOrderServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, orderhttpmapper.FromDomainOrderList(orders))
}

// Patch /api/v1/orders/:orderId/status
// Update the status of an order
func (api *OrderAPI) UpdateOrderStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "orderId")
	if !ok {
		return
	}
	var payload orderhttpmapper.UpdateStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	updated, err := api.service.UpdateStatus(c.Request.Context(), id, payload.Status)
	if err != nil {
		respondOrderServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, orderhttpmapper.FromDomainOrder(updated))
}

// Delete /api/v1/orders/:orderId
// Delete an order
func (api *OrderAPI) DeleteOrder(c *gin.Context) {
	id, ok := parseIDParam(c, "orderId")
	if !ok {
		return
	}
	if err := api.service.Delete(c.Request.Context(), id); err != nil {
		respondOrderServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func parseIDParam(c *gin.Context, name string) (int64, bool) {
	value := c.Param(name)
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		respondError(c, http.StatusBadRequest, err)
		return 0, false
	}
	return id, true
}

func respondOrderServiceError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	switch {
	case errors.Is(err, ordersports.ErrNotFound):
		respondError(c, http.StatusNotFound, err)
	case errors.Is(err, ordersapp.ErrInvalidOrderData), errors.Is(err, ordersapp.ErrInvalidStatus):
		respondError(c, http.StatusBadRequest, err)
	case errors.Is(err, ordersapp.ErrInvalidTransition), errors.Is(err, ordersports.ErrIdempotencyConflict):
		respondError(c, http.StatusConflict, err)
	default:
		respondError(c, http.StatusInternalServerError, err)
	}
}
