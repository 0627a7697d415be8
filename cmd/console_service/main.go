package main

import (
	"fmt"
	"log"
	"os"

	"employee_console_service/internal/api/handlers"
	"employee_console_service/internal/api/router"
	chatapp "employee_console_service/internal/chat/app"
	chatrepo "employee_console_service/internal/chat/repository"
	employeeapp "employee_console_service/internal/employee/app"
	employeerepo "employee_console_service/internal/employee/repository"
	identityapp "employee_console_service/internal/identity/app"
	identitydomain "employee_console_service/internal/identity/domain"
	"employee_console_service/pkg/config"
	"employee_console_service/pkg/database"
	"employee_console_service/pkg/logger"
	"employee_console_service/pkg/mailer"

	"github.com/gofiber/fiber/v2"
	fiber_log "github.com/gofiber/fiber/v2/middleware/logger"
	"go.uber.org/zap"
)

func main() {
	logger.Log = logger.Initialize(config.EnvConfig.ConsoleService, config.EnvConfig.ConsoleServiceLogPath)
	cfg := config.LoadConfig[config.Console](config.EnvConfig.ConsoleService, config.EnvConfig.ConsoleServiceYAMLPath)

	// 1. 打開 flat file document store (員工資料 + 聊天 transcript)
	store, err := database.OpenDocStore(cfg.DocStore.Path)
	if err != nil {
		logger.Log.Fatal("Unable to open document store",
			zap.String("path", cfg.DocStore.Path),
			zap.Error(err),
		)
	}

	// 2. 建立 Redis 連線 (一次性驗證碼 + session)
	redisClient, err := database.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.RedisDB)
	if err != nil {
		logger.Log.Fatal(fmt.Sprintf("connect redis err : %v", err))
	}

	// 3. 初始化 Repository
	transcriptRepo := chatrepo.NewDocTranscriptRepository(store)
	employeeRepo := employeerepo.NewDocEmployeeRepository(store)
	codeRepo := database.NewRedisRepository[string](redisClient)
	sessionRepo := database.NewRedisRepository[identitydomain.ConsoleSession](redisClient)

	// 4. 初始化 UseCases
	registry := chatapp.NewConversationRegistry()
	hub := chatapp.NewBroadcastHub(registry, transcriptRepo)
	historyUC := chatapp.NewHistoryUseCase(transcriptRepo)
	directoryUC := employeeapp.NewDirectoryUseCase(employeeRepo)
	accessUC := identityapp.NewAccessUseCase(codeRepo, sessionRepo, mailer.New(cfg.SMTP), cfg.CodeTTL, cfg.SessionTTL)

	// 5. 啟動 Fiber
	r := fiber.New()
	file, err := os.OpenFile(fmt.Sprintf("%s/access.log", config.EnvConfig.ConsoleServiceLogPath), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0666)
	if err != nil {
		log.Fatalf("Failed to open log file: %v", err)
	}
	defer file.Close()

	r.Use(fiber_log.New(fiber_log.Config{
		Output: file,
	}))

	// 注册路由
	router.RegisterRoutes(r,
		handlers.NewAuthHandler(accessUC),
		handlers.NewEmployeeHandler(directoryUC),
		handlers.NewChatHandler(historyUC),
		chatapp.NewChatWebsocketHandler(registry, hub),
	)

	port := ":" + cfg.Port
	log.Printf("Console Service listening on %s", port)
	if err := r.Listen(port); err != nil {
		log.Fatalf("Failed to start Fiber: %v", err)
	}
}
