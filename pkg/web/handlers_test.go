package web_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Rice-Bikes/ricebikesbackend/pkg/models"
	"github.com/Rice-Bikes/ricebikesbackend/pkg/persistence/memory"
	"github.com/Rice-Bikes/ricebikesbackend/pkg/registry"
	"github.com/Rice-Bikes/ricebikesbackend/pkg/services"
	"github.com/Rice-Bikes/ricebikesbackend/pkg/web"
	"github.com/Rice-Bikes/ricebikesbackend/pkg/workflow"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noopNotifier struct{}

func (noopNotifier) Send(context.Context, models.NotificationRequest) error { return nil }

type testEnv struct {
	app         *fiber.App
	persistence *memory.Persistence
	engine      *workflow.Engine
}

func setupTestApp(t *testing.T) *testEnv {
	t.Helper()

	p := memory.NewPersistence()
	reg := registry.NewRegistry()
	engine := workflow.NewEngine(p.WorkflowSteps(), p.Transactions(), noopNotifier{}, reg, slog.Default())

	handlers := web.NewAPIHandlers(
		services.NewBike(p),
		services.NewCustomer(p),
		services.NewItem(p),
		services.NewRepair(p),
		services.NewTransaction(p),
		services.NewUser(p),
		engine,
		validator.New(validator.WithRequiredStructEnabled()),
		reg,
	)

	app := fiber.New()
	app.Get("/health", handlers.HealthCheck)

	transactions := app.Group("/transactions")
	transactions.Get("/", handlers.GetTransactions)
	transactions.Post("/", handlers.CreateTransaction)
	transactions.Get("/:id", handlers.GetTransaction)
	transactions.Patch("/:id", handlers.UpdateTransaction)
	transactions.Delete("/:id", handlers.DeleteTransaction)
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

	return &testEnv{app: app, persistence: p, engine: engine}
}

func (e *testEnv) request(t *testing.T, method, path string, payload any) *http.Response {
	t.Helper()

	var body []byte

	if payload != nil {
		var err error

		if str, ok := payload.(string); ok {
			body = []byte(str)
		} else {
			body, err = json.Marshal(payload)
			require.NoError(t, err)
		}
	}

	req := httptest.NewRequest(method, path, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.app.Test(req)
	require.NoError(t, err)

	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()

	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var out T
	require.NoError(t, json.Unmarshal(body, &out), "body: %s", body)

	return out
}

func (e *testEnv) createTransaction(t *testing.T) models.Transaction {
	t.Helper()

	resp := e.request(t, http.MethodPost, "/transactions", models.Transaction{
		Type:        models.TransactionTypeRetrospec,
		Description: "Refurb sale",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	return decode[models.Transaction](t, resp)
}

func TestAPIHandlers_WorkflowLifecycle(t *testing.T) {
	env := setupTestApp(t)
	transaction := env.createTransaction(t)

	// Initialize
	resp := env.request(t, http.MethodPost,
		"/transactions/"+transaction.ID+"/workflow/bike_sales/init",
		web.InitializeWorkflowRequest{CreatedBy: "u1"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	steps := decode[[]models.WorkflowStep](t, resp)
	require.Len(t, steps, 5)
	assert.Equal(t, "Bike Spec", steps[0].StepName)

	// Second initialization conflicts
	resp = env.request(t, http.MethodPost,
		"/transactions/"+transaction.ID+"/workflow/bike_sales/init",
		web.InitializeWorkflowRequest{CreatedBy: "u1"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	// Complete one step
	resp = env.request(t, http.MethodPost,
		"/workflow-steps/"+steps[1].ID+"/complete",
		web.StepActionRequest{ActorID: "u2"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	completed := decode[models.WorkflowStep](t, resp)
	assert.True(t, completed.IsCompleted)
	require.NotNil(t, completed.CompletedBy)
	assert.Equal(t, "u2", *completed.CompletedBy)

	// Progress reflects the completion
	resp = env.request(t, http.MethodGet,
		"/transactions/"+transaction.ID+"/workflow/bike_sales/progress", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	progress := decode[models.WorkflowProgress](t, resp)
	assert.Equal(t, models.WorkflowProgress{Total: 5, Completed: 1, Percentage: 20}, progress)

	// Reopen it again
	resp = env.request(t, http.MethodPost,
		"/workflow-steps/"+steps[1].ID+"/reopen",
		web.StepActionRequest{ActorID: "u2"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	reopened := decode[models.WorkflowStep](t, resp)
	assert.False(t, reopened.IsCompleted)
	assert.Nil(t, reopened.CompletedBy)

	// Step listing stays ordered
	resp = env.request(t, http.MethodGet,
		"/transactions/"+transaction.ID+"/workflow/bike_sales/steps", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	listed := decode[[]models.WorkflowStep](t, resp)
	require.Len(t, listed, 5)

	for i, step := range listed {
		assert.Equal(t, i+1, step.StepOrder)
	}

	env.engine.Drain()
}

func TestAPIHandlers_InitializeWorkflow_Errors(t *testing.T) {
	env := setupTestApp(t)
	transaction := env.createTransaction(t)

	tests := []struct {
		name           string
		path           string
		requestBody    any
		expectedStatus int
	}{
		{
			name:           "missing created_by",
			path:           "/transactions/" + transaction.ID + "/workflow/bike_sales/init",
			requestBody:    web.InitializeWorkflowRequest{},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid JSON",
			path:           "/transactions/" + transaction.ID + "/workflow/bike_sales/init",
			requestBody:    "invalid-json",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "unknown workflow type",
			path:           "/transactions/" + transaction.ID + "/workflow/paint_shop/init",
			requestBody:    web.InitializeWorkflowRequest{CreatedBy: "u1"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing transaction",
			path:           "/transactions/nope/workflow/bike_sales/init",
			requestBody:    web.InitializeWorkflowRequest{CreatedBy: "u1"},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := env.request(t, http.MethodPost, tt.path, tt.requestBody)

			defer func() { _ = resp.Body.Close() }()

			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
		})
	}
}

func TestAPIHandlers_CompleteStep_NotFound(t *testing.T) {
	env := setupTestApp(t)

	resp := env.request(t, http.MethodPost, "/workflow-steps/missing/complete",
		web.StepActionRequest{ActorID: "u1"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAPIHandlers_CreateBike(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    any
		expectedStatus int
	}{
		{
			name: "successful creation",
			requestBody: models.Bike{
				Make:      "Trek",
				Model:     "FX2",
				Condition: "Refurbished",
				Price:     350,
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "validation error - missing make",
			requestBody:    models.Bike{Model: "FX2"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid JSON",
			requestBody:    "invalid-json",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setupTestApp(t)

			resp := env.request(t, http.MethodPost, "/bikes", tt.requestBody)
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)

			if tt.expectedStatus == http.StatusCreated {
				bike := decode[models.Bike](t, resp)
				assert.NotEmpty(t, bike.ID)
				assert.Equal(t, "Trek", bike.Make)
			}
		})
	}
}

func TestAPIHandlers_DeleteBike_NotFound(t *testing.T) {
	env := setupTestApp(t)

	resp := env.request(t, http.MethodDelete, "/bikes/missing", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAPIHandlers_HealthCheck(t *testing.T) {
	env := setupTestApp(t)

	resp := env.request(t, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	payload := decode[map[string]any](t, resp)
	assert.Equal(t, "healthy", payload["status"])
}
