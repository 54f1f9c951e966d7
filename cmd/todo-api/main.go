package main

import (
	"context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	_ "todo-api/configs"
	"todo-api/internal/application/controller"
	"todo-api/internal/application/middleware"
	"todo-api/internal/application/schedule"
	cachegw "todo-api/internal/domain/gateway/cache"
	"todo-api/internal/domain/gateway/db"
	"todo-api/internal/domain/gateway/queue"
	"todo-api/internal/domain/usecase/health"
	"todo-api/internal/domain/usecase/reminder"
	"todo-api/internal/domain/usecase/todo"
	"todo-api/internal/infra/aws"
	"todo-api/internal/infra/cache"
	gormdb "todo-api/internal/infra/database/gorm"
	sqldb "todo-api/internal/infra/database/sql"
	"todo-api/pkg/log"
	"todo-api/pkg/msg"
	"todo-api/pkg/resource"
)

func main() {
	log.Info(msg.GetMessage("app.start"))

	// Init infra
	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{
		Generator: func() string { return uuid.New().String() },
	}))
	e.Use(echomw.CORS())
	e.Use(echomw.RateLimiter(echomw.NewRateLimiterMemoryStore(
		rate.Limit(resource.GetInt("app.rate-limit.rate")))))
	middleware.SetupRequestLogger(e)

	api := e.Group(resource.GetString("app.server.context-path"))

	// Init storage gateways by configured driver
	todoGateway, healthDBGateway := initStorage()

	// Init queue health
	queueHealthGateway := queue.NewQueueHealthGateway()

	// Init UseCase
	healthUseCase := health.NewHealthUseCase(healthDBGateway, queueHealthGateway)
	todoUseCase := todo.NewTodoUseCase(todoGateway, initCache())

	// Init Controller
	healthController := controller.NewHealthController(api, healthUseCase)
	todoController := controller.NewTodoController(api, todoUseCase)

	// Init Routes
	healthController.InitHealthRoutes()
	todoController.InitTodoRoutes()

	// Init Schedule
	if resource.GetBool("app.reminder.enabled") {
		initReminders(todoGateway, queueHealthGateway)
	}

	// Start Routes
	e.Logger.Fatal(e.Start(":" + resource.GetString("app.server.port")))
}

func initStorage() (db.TodoGateway, db.HealthDBGateway) {
	switch resource.GetString("app.db.driver") {
	case "sql":
		conn, err := sqldb.Connect()
		if err != nil {
			log.Fatalf("Fail to connect database: %v", err)
		}
		return db.NewSQLTodoGateway(conn), db.NewSQLHealthDBGateway(conn)
	default:
		conn, err := gormdb.Connect()
		if err != nil {
			log.Fatalf("Fail to connect database: %v", err)
		}
		return db.NewGormTodoGateway(conn), db.NewGormHealthDBGateway(conn)
	}
}

func initCache() cachegw.TodoCache {
	if !resource.GetBool("app.cache.enabled") {
		return nil
	}

	client, err := cache.NewClient(
		resource.GetString("app.cache.host"),
		resource.GetInt("app.cache.port"),
		resource.GetString("app.cache.password"),
		resource.GetInt("app.cache.database"))
	if err != nil {
		log.Fatalf("Fail to connect redis: %v", err)
	}

	return cache.NewTodoCache(client, resource.GetDuration("app.cache.ttl"))
}

func initReminders(todoGateway db.TodoGateway, queueHealth queue.HealthGateway) {
	cfg, err := aws.LoadConfig(context.Background())
	if err != nil {
		log.Fatalf("Fail to load AWS config: %v", err)
	}

	sender := aws.NewSQSSenderAdapter(aws.NewSqsClient(cfg))
	reminderUseCase := reminder.NewReminderUseCase(
		todoGateway, sender, queueHealth, resource.GetString("app.reminder.queue"))

	reminderScheduler := schedule.NewReminderScheduler(reminderUseCase)
	reminderScheduler.InitReminderScheduleTasks()
}
