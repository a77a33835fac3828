package v1

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/vietanh2810/creamery-api/internal/domain"
	"github.com/vietanh2810/creamery-api/internal/service"
)

func newEmployeeRouter(svc EmployeeService) *gin.Engine {
	h := NewEmployeeHandler(svc)

	router := gin.New()
	router.GET("/employees", h.HandleListEmployees)
	router.POST("/employees", h.HandleCreateEmployee)
	router.GET("/employees/:employeeID", h.HandleGetEmployee)
	router.PUT("/employees/:employeeID", h.HandleUpdateEmployee)
	router.DELETE("/employees/:employeeID", h.HandleDeleteEmployee)

	return router
}

func TestEmployeeHandler(t *testing.T) {
	svc := &mockEmployeeService{}
	svc.On("ListEmployees", mock.Anything).Return([]domain.Employee{{ID: 4, Name: "Ana"}}, nil)
	svc.On("CreateEmployee", mock.Anything, domain.Employee{Name: "Bo"}).Return(domain.Employee{ID: 5, Name: "Bo"}, nil)
	svc.On("GetEmployee", mock.Anything, uint(4)).Return(domain.Employee{ID: 4, Name: "Ana"}, nil)
	svc.On("UpdateEmployee", mock.Anything, domain.Employee{ID: 4, Name: "Ana Maria"}).Return(domain.Employee{ID: 4, Name: "Ana Maria"}, nil)
	svc.On("DeleteEmployee", mock.Anything, uint(9)).Return(domain.Employee{}, service.ErrEmployeeNotFound)
	router := newEmployeeRouter(svc)

	w := serve(router, http.MethodGet, "/employees", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"id":4,"name":"Ana"}]`, w.Body.String())

	w = serve(router, http.MethodPost, "/employees", `{"name":"Bo"}`)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"id":5,"name":"Bo"}`, w.Body.String())

	w = serve(router, http.MethodGet, "/employees/4", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":4,"name":"Ana"}`, w.Body.String())

	w = serve(router, http.MethodPut, "/employees/4", `{"name":"Ana Maria"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":4,"name":"Ana Maria"}`, w.Body.String())

	w = serve(router, http.MethodDelete, "/employees/9", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"status_code":404,"status_text":"Not Found","message":"employee with id = 9 not found"}`, w.Body.String())

	w = serve(router, http.MethodPost, "/employees", `{"nombre":"Bo"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	svc.AssertExpectations(t)
}
