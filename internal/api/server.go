package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/vietanh2810/creamery-api/docs"
	v1 "github.com/vietanh2810/creamery-api/internal/api/handler/v1"
	"github.com/vietanh2810/creamery-api/internal/api/middleware"
	"github.com/vietanh2810/creamery-api/internal/config"
	"github.com/vietanh2810/creamery-api/internal/repository"
	"github.com/vietanh2810/creamery-api/internal/repository/dao"
	"github.com/vietanh2810/creamery-api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	storeRepo := repository.NewStoreRepository(dao.NewStoreDAO(db))
	employeeRepo := repository.NewEmployeeRepository(dao.NewEmployeeDAO(db))
	inventoryRepo := repository.NewInventoryRepository(dao.NewInventoryDAO(db))

	storeHandler := v1.NewStoreHandler(service.NewStoreService(storeRepo))
	employeeHandler := v1.NewEmployeeHandler(service.NewEmployeeService(employeeRepo))
	inventoryHandler := v1.NewInventoryHandler(service.NewInventoryService(inventoryRepo, storeRepo, employeeRepo))
	s.MountHandlers(storeHandler, employeeHandler, inventoryHandler)

	return s
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

// MountHandlers registers the v1 routes. Store paths carry the verb as a
// segment; employees and inventories are plain resource paths.
func (s *Server) MountHandlers(storeHandler *v1.StoreHandler, employeeHandler *v1.EmployeeHandler, inventoryHandler *v1.InventoryHandler) {
	stores := s.Router.Group("/stores")
	{
		stores.GET("/get", storeHandler.HandleListStores)
		stores.POST("/post", storeHandler.HandleCreateStore)
		stores.GET("/get/:storeID", storeHandler.HandleGetStore)
		stores.PUT("/put/:storeID", storeHandler.HandleUpdateStore)
		stores.DELETE("/delete/:storeID", storeHandler.HandleDeleteStore)
	}

	employees := s.Router.Group("/employees")
	{
		employees.GET("", employeeHandler.HandleListEmployees)
		employees.POST("", employeeHandler.HandleCreateEmployee)
		employees.GET("/:employeeID", employeeHandler.HandleGetEmployee)
		employees.PUT("/:employeeID", employeeHandler.HandleUpdateEmployee)
		employees.DELETE("/:employeeID", employeeHandler.HandleDeleteEmployee)
	}

	inventories := s.Router.Group("/inventories")
	{
		inventories.GET("", inventoryHandler.HandleListInventories)
		inventories.POST("", inventoryHandler.HandleCreateInventory)
		inventories.GET("/:inventoryID", inventoryHandler.HandleGetInventory)
		inventories.PUT("/:inventoryID", inventoryHandler.HandleUpdateInventory)
		inventories.DELETE("/:inventoryID", inventoryHandler.HandleDeleteInventory)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = "/"
	docs.SwaggerInfo.Title = "Creamery API"
	docs.SwaggerInfo.Description = "CRUD API over stores, employees and inventory records."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
