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

type EmployeeService interface {
	ListEmployees(ctx context.Context) ([]domain.Employee, error)
	GetEmployee(ctx context.Context, id uint) (domain.Employee, error)
	CreateEmployee(ctx context.Context, employee domain.Employee) (domain.Employee, error)
	UpdateEmployee(ctx context.Context, employee domain.Employee) (domain.Employee, error)
	DeleteEmployee(ctx context.Context, id uint) (domain.Employee, error)
}

type EmployeeHandler struct {
	svc EmployeeService
}

func NewEmployeeHandler(svc EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{
		svc: svc,
	}
}

// HandleListEmployees godoc
// @Summary      List employees
// @Tags         employees
// @Produce      json
// @Success      200  {array}   domain.Employee
// @Failure      500  {object}  response.Err
// @Router       /employees [get]
func (h *EmployeeHandler) HandleListEmployees(ctx *gin.Context) {
	employees, err := h.svc.ListEmployees(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListEmployees -> h.svc.ListEmployees -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, employees)
}

// HandleGetEmployee godoc
// @Summary      Get an employee
// @Tags         employees
// @Produce      json
// @Param        employeeID  path      int  true  "Employee ID"
// @Success      200      {object}  domain.Employee
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /employees/{employeeID} [get]
func (h *EmployeeHandler) HandleGetEmployee(ctx *gin.Context) {
	id, respErr := parseID(ctx, "employeeID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	employee, err := h.svc.GetEmployee(ctx.Request.Context(), id)
	if err != nil {
		h.renderErr(ctx, id, fmt.Errorf("v1.HandleGetEmployee -> h.svc.GetEmployee -> %w", err))
		return
	}

	ctx.JSON(http.StatusOK, employee)
}

// HandleCreateEmployee godoc
// @Summary      Create an employee
// @Tags         employees
// @Accept       json
// @Produce      json
// @Param        request  body      request.EmployeeRequest  true  "request body"
// @Success      201      {object}  domain.Employee
// @Failure      400      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /employees [post]
func (h *EmployeeHandler) HandleCreateEmployee(ctx *gin.Context) {
	var req request.EmployeeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	employee, err := h.svc.CreateEmployee(ctx.Request.Context(), domain.Employee{Name: req.Name})
	if err != nil {
		h.renderErr(ctx, 0, fmt.Errorf("v1.HandleCreateEmployee -> h.svc.CreateEmployee -> %w", err))
		return
	}

	ctx.JSON(http.StatusCreated, employee)
}

// HandleUpdateEmployee godoc
// @Summary      Replace an employee
// @Tags         employees
// @Accept       json
// @Produce      json
// @Param        employeeID  path      int                   true  "Employee ID"
// @Param        request  body      request.EmployeeRequest  true  "request body"
// @Success      200      {object}  domain.Employee
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /employees/{employeeID} [put]
func (h *EmployeeHandler) HandleUpdateEmployee(ctx *gin.Context) {
	id, respErr := parseID(ctx, "employeeID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.EmployeeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	employee, err := h.svc.UpdateEmployee(ctx.Request.Context(), domain.Employee{ID: id, Name: req.Name})
	if err != nil {
		h.renderErr(ctx, id, fmt.Errorf("v1.HandleUpdateEmployee -> h.svc.UpdateEmployee -> %w", err))
		return
	}

	ctx.JSON(http.StatusOK, employee)
}

// HandleDeleteEmployee godoc
// @Summary      Delete an employee
// @Description  Inventory records referencing the employee are left untouched.
// @Tags         employees
// @Produce      json
// @Param        employeeID  path      int  true  "Employee ID"
// @Success      200      {object}  domain.Employee
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /employees/{employeeID} [delete]
func (h *EmployeeHandler) HandleDeleteEmployee(ctx *gin.Context) {
	id, respErr := parseID(ctx, "employeeID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	employee, err := h.svc.DeleteEmployee(ctx.Request.Context(), id)
	if err != nil {
		h.renderErr(ctx, id, fmt.Errorf("v1.HandleDeleteEmployee -> h.svc.DeleteEmployee -> %w", err))
		return
	}

	ctx.JSON(http.StatusOK, employee)
}

func (h *EmployeeHandler) renderErr(ctx *gin.Context, id uint, err error) {
	switch {
	case errors.Is(err, service.ErrEmployeeNotFound):
		response.RenderErr(ctx, response.ErrNotFound("employee", "id", id))
	case errors.Is(err, service.ErrValueTooLong):
		response.RenderErr(ctx, response.ErrBadRequest(service.ErrValueTooLong))
	default:
		response.RenderErr(ctx, response.ErrInternalServerError(err))
	}
}
