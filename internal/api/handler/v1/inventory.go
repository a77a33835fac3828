package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/creamery-api/internal/api/handler/v1/request"
	"github.com/vietanh2810/creamery-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/creamery-api/internal/domain"
	"github.com/vietanh2810/creamery-api/internal/service"
)

type InventoryService interface {
	ListInventories(ctx context.Context) ([]domain.Inventory, error)
	GetInventory(ctx context.Context, id uint) (domain.Inventory, error)
	CreateInventory(ctx context.Context, inventory domain.Inventory) (domain.Inventory, error)
	UpdateInventory(ctx context.Context, inventory domain.Inventory) (domain.Inventory, error)
	DeleteInventory(ctx context.Context, id uint) (domain.Inventory, error)
}

type InventoryHandler struct {
	svc InventoryService
}

func NewInventoryHandler(svc InventoryService) *InventoryHandler {
	return &InventoryHandler{
		svc: svc,
	}
}

// HandleListInventories godoc
// @Summary      List inventory records
// @Tags         inventories
// @Produce      json
// @Success      200  {array}   response.Inventory
// @Failure      500  {object}  response.Err
// @Router       /inventories [get]
func (h *InventoryHandler) HandleListInventories(ctx *gin.Context) {
	inventories, err := h.svc.ListInventories(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListInventories -> h.svc.ListInventories -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.NewInventories(inventories))
}

// HandleGetInventory godoc
// @Summary      Get an inventory record
// @Tags         inventories
// @Produce      json
// @Param        inventoryID  path      int  true  "Inventory ID"
// @Success      200          {object}  response.Inventory
// @Failure      400          {object}  response.Err
// @Failure      404          {object}  response.Err
// @Failure      500          {object}  response.Err
// @Router       /inventories/{inventoryID} [get]
func (h *InventoryHandler) HandleGetInventory(ctx *gin.Context) {
	id, respErr := parseID(ctx, "inventoryID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	inventory, err := h.svc.GetInventory(ctx.Request.Context(), id)
	if err != nil {
		h.renderErr(ctx, domain.Inventory{ID: id}, fmt.Errorf("v1.HandleGetInventory -> h.svc.GetInventory -> %w", err))
		return
	}

	ctx.JSON(http.StatusOK, response.NewInventory(inventory))
}

// HandleCreateInventory godoc
// @Summary      Create an inventory record
// @Description  All six fields are required. The referenced store and employee must exist.
// @Tags         inventories
// @Accept       json
// @Produce      json
// @Param        request  body      request.InventoryRequest  true  "request body"
// @Success      201      {object}  response.Inventory
// @Failure      400      {object}  response.Err
// @Failure      422      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /inventories [post]
func (h *InventoryHandler) HandleCreateInventory(ctx *gin.Context) {
	inventory, respErr := bindInventory(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	created, err := h.svc.CreateInventory(ctx.Request.Context(), inventory)
	if err != nil {
		h.renderErr(ctx, inventory, fmt.Errorf("v1.HandleCreateInventory -> h.svc.CreateInventory -> %w", err))
		return
	}

	ctx.JSON(http.StatusCreated, response.NewInventory(created))
}

// HandleUpdateInventory godoc
// @Summary      Replace an inventory record
// @Description  All six fields are replaced. The referenced store and employee must exist.
// @Tags         inventories
// @Accept       json
// @Produce      json
// @Param        inventoryID  path      int                       true  "Inventory ID"
// @Param        request      body      request.InventoryRequest  true  "request body"
// @Success      200          {object}  response.Inventory
// @Failure      400          {object}  response.Err
// @Failure      404          {object}  response.Err
// @Failure      422          {object}  response.Err
// @Failure      500          {object}  response.Err
// @Router       /inventories/{inventoryID} [put]
func (h *InventoryHandler) HandleUpdateInventory(ctx *gin.Context) {
	id, respErr := parseID(ctx, "inventoryID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	inventory, respErr := bindInventory(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}
	inventory.ID = id

	updated, err := h.svc.UpdateInventory(ctx.Request.Context(), inventory)
	if err != nil {
		h.renderErr(ctx, inventory, fmt.Errorf("v1.HandleUpdateInventory -> h.svc.UpdateInventory -> %w", err))
		return
	}

	ctx.JSON(http.StatusOK, response.NewInventory(updated))
}

// HandleDeleteInventory godoc
// @Summary      Delete an inventory record
// @Tags         inventories
// @Produce      json
// @Param        inventoryID  path      int  true  "Inventory ID"
// @Success      200          {object}  response.Inventory
// @Failure      400          {object}  response.Err
// @Failure      404          {object}  response.Err
// @Failure      500          {object}  response.Err
// @Router       /inventories/{inventoryID} [delete]
func (h *InventoryHandler) HandleDeleteInventory(ctx *gin.Context) {
	id, respErr := parseID(ctx, "inventoryID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	deleted, err := h.svc.DeleteInventory(ctx.Request.Context(), id)
	if err != nil {
		h.renderErr(ctx, domain.Inventory{ID: id}, fmt.Errorf("v1.HandleDeleteInventory -> h.svc.DeleteInventory -> %w", err))
		return
	}

	ctx.JSON(http.StatusOK, response.NewInventory(deleted))
}

func bindInventory(ctx *gin.Context) (domain.Inventory, *response.Err) {
	var req request.InventoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return domain.Inventory{}, response.ErrBadRequest(err)
	}

	if err := req.Validate(); err != nil {
		return domain.Inventory{}, response.ErrBadRequest(err)
	}

	return domain.Inventory{
		StoreID:        *req.StoreID,
		EmployeeID:     *req.EmployeeID,
		Date:           req.ParsedDate(),
		Flavor:         req.Flavor,
		IsSeasonFlavor: *req.IsSeasonFlavor,
		Quantity:       *req.Quantity,
	}, nil
}

func (h *InventoryHandler) renderErr(ctx *gin.Context, inventory domain.Inventory, err error) {
	switch {
	case errors.Is(err, service.ErrInventoryNotFound):
		response.RenderErr(ctx, response.ErrNotFound("inventory", "id", inventory.ID))
	case errors.Is(err, service.ErrUnknownStore):
		response.RenderErr(ctx, response.ErrUnprocessableEntity(fmt.Errorf("store with id = %v does not exist", inventory.StoreID)))
	case errors.Is(err, service.ErrUnknownEmployee):
		response.RenderErr(ctx, response.ErrUnprocessableEntity(fmt.Errorf("employee with id = %v does not exist", inventory.EmployeeID)))
	case errors.Is(err, service.ErrValueTooLong):
		response.RenderErr(ctx, response.ErrBadRequest(service.ErrValueTooLong))
	default:
		response.RenderErr(ctx, response.ErrInternalServerError(err))
	}
}
