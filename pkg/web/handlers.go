// Package web provides HTTP handlers and REST API endpoints for the bike
// shop backend.
package web

import (
	"net/http"
	"time"

	"github.com/Rice-Bikes/ricebikesbackend/pkg/models"
	"github.com/Rice-Bikes/ricebikesbackend/pkg/registry"
	"github.com/Rice-Bikes/ricebikesbackend/pkg/services"
	"github.com/Rice-Bikes/ricebikesbackend/pkg/workflow"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
)

type APIHandlers struct {
	bikeService        *services.Bike
	customerService    *services.Customer
	itemService        *services.Item
	repairService      *services.Repair
	transactionService *services.Transaction
	userService        *services.User
	engine             *workflow.Engine
	validator          *validator.Validate
	registry           *registry.Registry
}

func NewAPIHandlers(
	bikeService *services.Bike,
	customerService *services.Customer,
	itemService *services.Item,
	repairService *services.Repair,
	transactionService *services.Transaction,
	userService *services.User,
	engine *workflow.Engine,
	validator *validator.Validate,
	registry *registry.Registry,
) *APIHandlers {
	return &APIHandlers{
		bikeService:        bikeService,
		customerService:    customerService,
		itemService:        itemService,
		repairService:      repairService,
		transactionService: transactionService,
		userService:        userService,
		engine:             engine,
		validator:          validator,
		registry:           registry,
	}
}

func (h *APIHandlers) HealthCheck(c fiber.Ctx) error {
	registryCheck, regOk := h.registry.HealthCheck()
	repositoryCheck, repOk := h.transactionService.HealthCheck(c.Context())

	status := "unhealthy"
	message := "Rice Bikes API is unhealthy"
	httpStatus := http.StatusInternalServerError

	if regOk && repOk {
		status = "healthy"
		message = "Rice Bikes API is healthy"
		httpStatus = http.StatusOK
	}

	return c.Status(httpStatus).JSON(fiber.Map{
		"status":  status,
		"message": message,
		"checkers": fiber.Map{
			"registry":   registryCheck,
			"repository": repositoryCheck,
		},
		"timestamp": time.Now().UTC(),
	})
}

// Workflow endpoints

func (h *APIHandlers) InitializeWorkflow(c fiber.Ctx) error {
	transactionID := c.Params("id")
	if transactionID == "" {
		return badRequest(c, "Transaction ID is required")
	}

	var req InitializeWorkflowRequest
	if err := c.Bind().JSON(&req); err != nil {
		return badRequest(c, "Invalid JSON format")
	}

	if err := h.validator.Struct(req); err != nil {
		return badRequest(c, err.Error())
	}

	workflowType := models.WorkflowType(c.Params("type"))

	steps, err := h.engine.InitializeWorkflow(c.Context(), transactionID, workflowType, req.CreatedBy)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(steps)
}

func (h *APIHandlers) GetWorkflowSteps(c fiber.Ctx) error {
	transactionID := c.Params("id")
	if transactionID == "" {
		return badRequest(c, "Transaction ID is required")
	}

	steps, err := h.engine.ListSteps(c.Context(), transactionID, models.WorkflowType(c.Params("type")))
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(steps)
}

func (h *APIHandlers) GetWorkflowProgress(c fiber.Ctx) error {
	transactionID := c.Params("id")
	if transactionID == "" {
		return badRequest(c, "Transaction ID is required")
	}

	progress, err := h.engine.GetProgress(c.Context(), transactionID, models.WorkflowType(c.Params("type")))
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(progress)
}

func (h *APIHandlers) CompleteStep(c fiber.Ctx) error {
	stepID := c.Params("id")
	if stepID == "" {
		return badRequest(c, "Step ID is required")
	}

	var req StepActionRequest
	if err := c.Bind().JSON(&req); err != nil {
		return badRequest(c, "Invalid JSON format")
	}

	if err := h.validator.Struct(req); err != nil {
		return badRequest(c, err.Error())
	}

	step, err := h.engine.CompleteStep(c.Context(), stepID, req.ActorID)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(step)
}

func (h *APIHandlers) ReopenStep(c fiber.Ctx) error {
	stepID := c.Params("id")
	if stepID == "" {
		return badRequest(c, "Step ID is required")
	}

	var req StepActionRequest
	if err := c.Bind().JSON(&req); err != nil {
		return badRequest(c, "Invalid JSON format")
	}

	if err := h.validator.Struct(req); err != nil {
		return badRequest(c, err.Error())
	}

	step, err := h.engine.ReopenStep(c.Context(), stepID, req.ActorID)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(step)
}

// Transaction endpoints

func (h *APIHandlers) GetTransactions(c fiber.Ctx) error {
	transactions, err := h.transactionService.FetchAll(c.Context())
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(transactions)
}

func (h *APIHandlers) GetTransaction(c fiber.Ctx) error {
	transaction, err := h.transactionService.FetchByID(c.Context(), c.Params("id"))
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(transaction)
}

func (h *APIHandlers) CreateTransaction(c fiber.Ctx) error {
	var transaction models.Transaction
	if err := c.Bind().JSON(&transaction); err != nil {
		return badRequest(c, "Invalid JSON format")
	}

	if err := h.validator.Struct(transaction); err != nil {
		return badRequest(c, err.Error())
	}

	created, err := h.transactionService.Create(c.Context(), &transaction)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *APIHandlers) UpdateTransaction(c fiber.Ctx) error {
	var transaction models.Transaction
	if err := c.Bind().JSON(&transaction); err != nil {
		return badRequest(c, "Invalid JSON format")
	}

	if err := h.validator.Struct(transaction); err != nil {
		return badRequest(c, err.Error())
	}

	updated, err := h.transactionService.Update(c.Context(), c.Params("id"), &transaction)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(updated)
}

func (h *APIHandlers) DeleteTransaction(c fiber.Ctx) error {
	err := h.transactionService.Delete(c.Context(), c.Params("id"))
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// Bike endpoints

func (h *APIHandlers) GetBikes(c fiber.Ctx) error {
	bikes, err := h.bikeService.FetchAll(c.Context())
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(bikes)
}

func (h *APIHandlers) GetBike(c fiber.Ctx) error {
	bike, err := h.bikeService.FetchByID(c.Context(), c.Params("id"))
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(bike)
}

func (h *APIHandlers) CreateBike(c fiber.Ctx) error {
	var bike models.Bike
	if err := c.Bind().JSON(&bike); err != nil {
		return badRequest(c, "Invalid JSON format")
	}

	if err := h.validator.Struct(bike); err != nil {
		return badRequest(c, err.Error())
	}

	created, err := h.bikeService.Create(c.Context(), &bike)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *APIHandlers) UpdateBike(c fiber.Ctx) error {
	var bike models.Bike
	if err := c.Bind().JSON(&bike); err != nil {
		return badRequest(c, "Invalid JSON format")
	}

	if err := h.validator.Struct(bike); err != nil {
		return badRequest(c, err.Error())
	}

	updated, err := h.bikeService.Update(c.Context(), c.Params("id"), &bike)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(updated)
}

func (h *APIHandlers) DeleteBike(c fiber.Ctx) error {
	err := h.bikeService.Delete(c.Context(), c.Params("id"))
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// Customer endpoints

func (h *APIHandlers) GetCustomers(c fiber.Ctx) error {
	customers, err := h.customerService.FetchAll(c.Context())
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(customers)
}

func (h *APIHandlers) GetCustomer(c fiber.Ctx) error {
	customer, err := h.customerService.FetchByID(c.Context(), c.Params("id"))
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(customer)
}

func (h *APIHandlers) CreateCustomer(c fiber.Ctx) error {
	var customer models.Customer
	if err := c.Bind().JSON(&customer); err != nil {
		return badRequest(c, "Invalid JSON format")
	}

	if err := h.validator.Struct(customer); err != nil {
		return badRequest(c, err.Error())
	}

	created, err := h.customerService.Create(c.Context(), &customer)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *APIHandlers) UpdateCustomer(c fiber.Ctx) error {
	var customer models.Customer
	if err := c.Bind().JSON(&customer); err != nil {
		return badRequest(c, "Invalid JSON format")
	}

	if err := h.validator.Struct(customer); err != nil {
		return badRequest(c, err.Error())
	}

	updated, err := h.customerService.Update(c.Context(), c.Params("id"), &customer)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(updated)
}

func (h *APIHandlers) DeleteCustomer(c fiber.Ctx) error {
	err := h.customerService.Delete(c.Context(), c.Params("id"))
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// Item endpoints

func (h *APIHandlers) GetItems(c fiber.Ctx) error {
	items, err := h.itemService.FetchAll(c.Context())
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(items)
}

func (h *APIHandlers) GetItem(c fiber.Ctx) error {
	item, err := h.itemService.FetchByID(c.Context(), c.Params("id"))
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(item)
}

func (h *APIHandlers) CreateItem(c fiber.Ctx) error {
	var item models.Item
	if err := c.Bind().JSON(&item); err != nil {
		return badRequest(c, "Invalid JSON format")
	}

	if err := h.validator.Struct(item); err != nil {
		return badRequest(c, err.Error())
	}

	created, err := h.itemService.Create(c.Context(), &item)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *APIHandlers) UpdateItem(c fiber.Ctx) error {
	var item models.Item
	if err := c.Bind().JSON(&item); err != nil {
		return badRequest(c, "Invalid JSON format")
	}

	if err := h.validator.Struct(item); err != nil {
		return badRequest(c, err.Error())
	}

	updated, err := h.itemService.Update(c.Context(), c.Params("id"), &item)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(updated)
}

func (h *APIHandlers) DeleteItem(c fiber.Ctx) error {
	err := h.itemService.Delete(c.Context(), c.Params("id"))
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// Repair endpoints

func (h *APIHandlers) GetRepairs(c fiber.Ctx) error {
	repairs, err := h.repairService.FetchAll(c.Context())
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(repairs)
}

func (h *APIHandlers) GetRepair(c fiber.Ctx) error {
	repair, err := h.repairService.FetchByID(c.Context(), c.Params("id"))
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(repair)
}

func (h *APIHandlers) CreateRepair(c fiber.Ctx) error {
	var repair models.Repair
	if err := c.Bind().JSON(&repair); err != nil {
		return badRequest(c, "Invalid JSON format")
	}

	if err := h.validator.Struct(repair); err != nil {
		return badRequest(c, err.Error())
	}

	created, err := h.repairService.Create(c.Context(), &repair)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *APIHandlers) UpdateRepair(c fiber.Ctx) error {
	var repair models.Repair
	if err := c.Bind().JSON(&repair); err != nil {
		return badRequest(c, "Invalid JSON format")
	}

	if err := h.validator.Struct(repair); err != nil {
		return badRequest(c, err.Error())
	}

	updated, err := h.repairService.Update(c.Context(), c.Params("id"), &repair)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(updated)
}

func (h *APIHandlers) DeleteRepair(c fiber.Ctx) error {
	err := h.repairService.Delete(c.Context(), c.Params("id"))
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// User endpoints

func (h *APIHandlers) GetUsers(c fiber.Ctx) error {
	users, err := h.userService.FetchAll(c.Context())
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(users)
}

func (h *APIHandlers) GetUser(c fiber.Ctx) error {
	user, err := h.userService.FetchByID(c.Context(), c.Params("id"))
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(user)
}

func (h *APIHandlers) CreateUser(c fiber.Ctx) error {
	var user models.User
	if err := c.Bind().JSON(&user); err != nil {
		return badRequest(c, "Invalid JSON format")
	}

	if err := h.validator.Struct(user); err != nil {
		return badRequest(c, err.Error())
	}

	created, err := h.userService.Create(c.Context(), &user)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *APIHandlers) UpdateUser(c fiber.Ctx) error {
	var user models.User
	if err := c.Bind().JSON(&user); err != nil {
		return badRequest(c, "Invalid JSON format")
	}

	if err := h.validator.Struct(user); err != nil {
		return badRequest(c, err.Error())
	}

	updated, err := h.userService.Update(c.Context(), c.Params("id"), &user)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(updated)
}

func (h *APIHandlers) DeleteUser(c fiber.Ctx) error {
	err := h.userService.Delete(c.Context(), c.Params("id"))
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
