package router

import (
	"context"

	"employee_console_service/internal/api/handlers"
	chatapp "employee_console_service/internal/chat/app"
	"employee_console_service/pkg/middlewares"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/gofiber/websocket/v2"
)

// RegisterRoutes 注册 console 相關的路由
// @title Employee Console Service API
// @version 1.0
// @description API documentation for Employee Console Service
// @host localhost:4000
// @BasePath /
func RegisterRoutes(
	app *fiber.App,
	authHandler *handlers.AuthHandler,
	employeeHandler *handlers.EmployeeHandler,
	chatHandler *handlers.ChatHandler,
	chatWebsocket *chatapp.ChatWebsocketHandler,
) {
	app.Get("/swagger/*", swagger.HandlerDefault)
	app.Get("/", handlers.ConnectCheck)
	app.Get("/health", handlers.HealthCheck)
	app.Post("/debug", handlers.DebugLogFlag)

	ownerRoutes := app.Group("/owner")
	ownerRoutes.Post("/CreateNewAccessCode", authHandler.CreateOwnerAccessCode)
	ownerRoutes.Post("/ValidateAccessCode", authHandler.ValidateOwnerAccessCode)

	employeeRoutes := app.Group("/employee")
	employeeRoutes.Post("/LoginEmail", authHandler.EmployeeLoginEmail)
	employeeRoutes.Post("/ValidateAccessCode", authHandler.ValidateEmployeeAccessCode)

	// 驗證碼通過後的操作都要帶 token
	ownerRoutes.Use(middlewares.JWTMiddleware())
	ownerRoutes.Post("/CreateEmployee", employeeHandler.CreateEmployee)
	ownerRoutes.Post("/GetEmployee", employeeHandler.GetEmployee)
	ownerRoutes.Get("/ListEmployees", employeeHandler.ListEmployees)
	ownerRoutes.Post("/UpdateEmployee", employeeHandler.UpdateEmployee)
	ownerRoutes.Post("/DeleteEmployee", employeeHandler.DeleteEmployee)
	ownerRoutes.Get("/ChatHistory", chatHandler.ChatHistory)

	app.Use("/ws", middlewares.JWTMiddleware())
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		chatWebsocket.HandleConnection(context.Background(), c)
	}))
}
