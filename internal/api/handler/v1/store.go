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

type StoreService interface {
	ListStores(ctx context.Context) ([]domain.Store, error)
	GetStore(ctx context.Context, id uint) (domain.Store, error)
	CreateStore(ctx context.Context, store domain.Store) (domain.Store, error)
	UpdateStore(ctx context.Context, store domain.Store) (domain.Store, error)
	DeleteStore(ctx context.Context, id uint) (domain.Store, error)
}

type StoreHandler struct {
	svc StoreService
}

func NewStoreHandler(svc StoreService) *StoreHandler {
	return &StoreHandler{
		svc: svc,
	}
}

// HandleListStores godoc
// @Summary      List stores
// @Tags         stores
// @Produce      json
// @Success      200  {array}   domain.Store
// @Failure      500  {object}  response.Err
// @Router       /stores/get [get]
func (h *StoreHandler) HandleListStores(ctx *gin.Context) {
	stores, err := h.svc.ListStores(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListStores -> h.svc.ListStores -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, stores)
}

// HandleGetStore godoc
// @Summary      Get a store
// @Tags         stores
// @Produce      json
// @Param        storeID  path      int  true  "Store ID"
// @Success      200      {object}  domain.Store
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /stores/get/{storeID} [get]
func (h *StoreHandler) HandleGetStore(ctx *gin.Context) {
	id, respErr := parseID(ctx, "storeID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	store, err := h.svc.GetStore(ctx.Request.Context(), id)
	if err != nil {
		h.renderErr(ctx, id, fmt.Errorf("v1.HandleGetStore -> h.svc.GetStore -> %w", err))
		return
	}

	ctx.JSON(http.StatusOK, store)
}

// HandleCreateStore godoc
// @Summary      Create a store
// @Tags         stores
// @Accept       json
// @Produce      json
// @Param        request  body      request.StoreRequest  true  "request body"
// @Success      201      {object}  domain.Store
// @Failure      400      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /stores/post [post]
func (h *StoreHandler) HandleCreateStore(ctx *gin.Context) {
	var req request.StoreRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	store, err := h.svc.CreateStore(ctx.Request.Context(), domain.Store{Name: req.Name})
	if err != nil {
		h.renderErr(ctx, 0, fmt.Errorf("v1.HandleCreateStore -> h.svc.CreateStore -> %w", err))
		return
	}

	ctx.JSON(http.StatusCreated, store)
}

// HandleUpdateStore godoc
// @Summary      Replace a store
// @Tags         stores
// @Accept       json
// @Produce      json
// @Param        storeID  path      int                   true  "Store ID"
// @Param        request  body      request.StoreRequest  true  "request body"
// @Success      200      {object}  domain.Store
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /stores/put/{storeID} [put]
func (h *StoreHandler) HandleUpdateStore(ctx *gin.Context) {
	id, respErr := parseID(ctx, "storeID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.StoreRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	store, err := h.svc.UpdateStore(ctx.Request.Context(), domain.Store{ID: id, Name: req.Name})
	if err != nil {
		h.renderErr(ctx, id, fmt.Errorf("v1.HandleUpdateStore -> h.svc.UpdateStore -> %w", err))
		return
	}

	ctx.JSON(http.StatusOK, store)
}

// HandleDeleteStore godoc
// @Summary      Delete a store
// @Description  Inventory records referencing the store are left untouched.
// @Tags         stores
// @Produce      json
// @Param        storeID  path      int  true  "Store ID"
// @Success      200      {object}  domain.Store
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /stores/delete/{storeID} [delete]
func (h *StoreHandler) HandleDeleteStore(ctx *gin.Context) {
	id, respErr := parseID(ctx, "storeID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	store, err := h.svc.DeleteStore(ctx.Request.Context(), id)
	if err != nil {
		h.renderErr(ctx, id, fmt.Errorf("v1.HandleDeleteStore -> h.svc.DeleteStore -> %w", err))
		return
	}

	ctx.JSON(http.StatusOK, store)
}

func (h *StoreHandler) renderErr(ctx *gin.Context, id uint, err error) {
	switch {
	case errors.Is(err, service.ErrStoreNotFound):
		response.RenderErr(ctx, response.ErrNotFound("store", "id", id))
	case errors.Is(err, service.ErrValueTooLong):
		response.RenderErr(ctx, response.ErrBadRequest(service.ErrValueTooLong))
	default:
		response.RenderErr(ctx, response.ErrInternalServerError(err))
	}
}
