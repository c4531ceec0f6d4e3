// Package main provides the Rice Bikes API server implementation.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/Rice-Bikes/ricebikesbackend/pkg/eventbus"
	"github.com/Rice-Bikes/ricebikesbackend/pkg/notification"
	"github.com/Rice-Bikes/ricebikesbackend/pkg/persistence"
	"github.com/Rice-Bikes/ricebikesbackend/pkg/registry"
	"github.com/Rice-Bikes/ricebikesbackend/pkg/services"
	"github.com/Rice-Bikes/ricebikesbackend/pkg/web"
	"github.com/Rice-Bikes/ricebikesbackend/pkg/workflow"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/gofiber/fiber/v3/middleware/logger"
)

type API struct {
	logger      *slog.Logger
	persistence persistence.Persistence
	registry    *registry.Registry
	eventBus    eventbus.EventBus
	engine      *workflow.Engine
	validate    *validator.Validate
}

// NewAPI wires the workflow engine and its notification pipeline. Step
// completions are published on the event bus; when a Slack webhook is
// configured, a relay consumes them and delivers to the shop channel.
func NewAPI(
	ctx context.Context,
	logger *slog.Logger,
	persistence persistence.Persistence,
	eventBus eventbus.EventBus,
	slackWebhookURL string,
) (*API, error) {
	reg := registry.NewRegistry()
	if err := reg.SelfCheck(); err != nil {
		return nil, fmt.Errorf("workflow definitions are invalid: %w", err)
	}

	engine := workflow.NewEngine(
		persistence.WorkflowSteps(),
		persistence.Transactions(),
		notification.NewBusNotifier(eventBus),
		reg,
		logger,
	)

	if slackWebhookURL != "" {
		relay := notification.NewRelay(eventBus, notification.NewSlackNotifier(slackWebhookURL, logger), logger)

		err := relay.Start(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to start notification relay: %w", err)
		}

		logger.InfoContext(ctx, "Slack notification relay started")
	}

	return &API{
		logger:      logger,
		persistence: persistence,
		registry:    reg,
		eventBus:    eventBus,
		engine:      engine,
		validate:    validator.New(validator.WithRequiredStructEnabled()),
	}, nil
}

func (a *API) App() *fiber.App {
	handlers := web.NewAPIHandlers(
		services.NewBike(a.persistence),
		services.NewCustomer(a.persistence),
		services.NewItem(a.persistence),
		services.NewRepair(a.persistence),
		services.NewTransaction(a.persistence),
		services.NewUser(a.persistence),
		a.engine,
		a.validate,
		a.registry,
	)

	app := fiber.New()
	app.Use(cors.New())
	app.Use(logger.New(logger.Config{
		DisableColors: true,
	}))

	app.Get(healthcheck.DefaultLivenessEndpoint, healthcheck.NewHealthChecker())
	app.Get(healthcheck.DefaultReadinessEndpoint, healthcheck.NewHealthChecker())

	app.Get("/", func(c fiber.Ctx) error {
		return c.SendString("Rice Bikes API")
	})

	transactions := app.Group("/transactions")
	transactions.Get("/", handlers.GetTransactions)
	transactions.Post("/", handlers.CreateTransaction)
	transactions.Get("/:id", handlers.GetTransaction)
	transactions.Patch("/:id", handlers.UpdateTransaction)
	transactions.Delete("/:id", handlers.DeleteTransaction)

	// Workflow endpoints:
	transactions.Post("/:id/workflow/:type/init", handlers.InitializeWorkflow)
	transactions.Get("/:id/workflow/:type/steps", handlers.GetWorkflowSteps)
	transactions.Get("/:id/workflow/:type/progress", handlers.GetWorkflowProgress)

	steps := app.Group("/workflow-steps")
	steps.Post("/:id/complete", handlers.CompleteStep)
	steps.Post("/:id/reopen", handlers.ReopenStep)

	bikes := app.Group("/bikes")
	bikes.Get("/", handlers.GetBikes)
	bikes.Post("/", handlers.CreateBike)
	bikes.Get("/:id", handlers.GetBike)
	bikes.Patch("/:id", handlers.UpdateBike)
	bikes.Delete("/:id", handlers.DeleteBike)

	customers := app.Group("/customers")
	customers.Get("/", handlers.GetCustomers)
	customers.Post("/", handlers.CreateCustomer)
	customers.Get("/:id", handlers.GetCustomer)
	customers.Patch("/:id", handlers.UpdateCustomer)
	customers.Delete("/:id", handlers.DeleteCustomer)

	items := app.Group("/items")
	items.Get("/", handlers.GetItems)
	items.Post("/", handlers.CreateItem)
	items.Get("/:id", handlers.GetItem)
	items.Patch("/:id", handlers.UpdateItem)
	items.Delete("/:id", handlers.DeleteItem)

	repairs := app.Group("/repairs")
	repairs.Get("/", handlers.GetRepairs)
	repairs.Post("/", handlers.CreateRepair)
	repairs.Get("/:id", handlers.GetRepair)
	repairs.Patch("/:id", handlers.UpdateRepair)
	repairs.Delete("/:id", handlers.DeleteRepair)

	users := app.Group("/users")
	users.Get("/", handlers.GetUsers)
	users.Post("/", handlers.CreateUser)
	users.Get("/:id", handlers.GetUser)
	users.Patch("/:id", handlers.UpdateUser)
	users.Delete("/:id", handlers.DeleteUser)

	app.Get("/health", handlers.HealthCheck)

	return app
}

func (a *API) Start(port int) error {
	app := a.App()

	err := app.Listen(":" + strconv.Itoa(port))

	return err
}

// Drain waits for in-flight notification work before shutdown.
func (a *API) Drain() {
	a.engine.Drain()
}
