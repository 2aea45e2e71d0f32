package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"taskboard/domain/dto"
	"taskboard/domain/models"
	"taskboard/domain/services"
	"taskboard/interfaces/api/handlers"
	"taskboard/pkg/utils"
)

// stubTaskService keeps tasks in a map, enough to drive the handler layer.
type stubTaskService struct {
	tasks map[uuid.UUID]*models.Task
}

func newStubTaskService() *stubTaskService {
	return &stubTaskService{tasks: make(map[uuid.UUID]*models.Task)}
}

func (s *stubTaskService) CreateTask(_ context.Context, userID uuid.UUID, req *dto.CreateTaskRequest) (*models.Task, error) {
	task := &models.Task{
		ID:       uuid.New(),
		Text:     req.Text,
		Status:   req.Status,
		Priority: req.Priority,
		UserID:   userID,
	}
	if task.Status == "" {
		task.Status = "pending"
	}
	if task.Priority == "" {
		task.Priority = "normal"
	}
	s.tasks[task.ID] = task
	return task, nil
}

func (s *stubTaskService) GetTask(_ context.Context, userID, taskID uuid.UUID) (*models.Task, error) {
	task, ok := s.tasks[taskID]
	if !ok || task.UserID != userID {
		return nil, services.ErrTaskNotFound
	}
	return task, nil
}

func (s *stubTaskService) GetUserTasks(_ context.Context, userID uuid.UUID) ([]*models.Task, error) {
	var out []*models.Task
	for _, task := range s.tasks {
		if task.UserID == userID {
			out = append(out, task)
		}
	}
	return out, nil
}

func (s *stubTaskService) UpdateStatus(_ context.Context, userID, taskID uuid.UUID, status string) (*models.Task, error) {
	task, ok := s.tasks[taskID]
	if !ok || task.UserID != userID {
		return nil, services.ErrTaskNotFound
	}
	task.Status = status
	return task, nil
}

func (s *stubTaskService) UpdatePriority(_ context.Context, userID, taskID uuid.UUID, priority string) (*models.Task, error) {
	task, ok := s.tasks[taskID]
	if !ok || task.UserID != userID {
		return nil, services.ErrTaskNotFound
	}
	task.Priority = priority
	return task, nil
}

func (s *stubTaskService) DeleteTask(_ context.Context, userID, taskID uuid.UUID) error {
	task, ok := s.tasks[taskID]
	if ok && task.UserID == userID {
		delete(s.tasks, taskID)
	}
	return nil
}

// newTaskApp wires the task routes with a middleware that binds a fixed user,
// standing in for the auth gateway.
func newTaskApp(svc services.TaskService, userID uuid.UUID) *fiber.App {
	app := fiber.New()
	h := handlers.NewTaskHandler(svc)

	tasks := app.Group("/tasks")
	tasks.Use(func(c *fiber.Ctx) error {
		c.Locals("user", &utils.UserContext{ID: userID})
		return c.Next()
	})
	tasks.Get("/", h.ListTasks)
	tasks.Post("/", h.CreateTask)
	tasks.Get("/:id", h.GetTask)
	tasks.Delete("/:id", h.DeleteTask)
	tasks.Patch("/:id/status", h.UpdateStatus)
	tasks.Patch("/:id/priority", h.UpdatePriority)

	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, payload any) (int, []byte) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("failed to marshal payload: %v", err)
		}
		body = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read body: %v", err)
	}

	return resp.StatusCode, respBody
}

func TestCreateAndListTasks(t *testing.T) {
	t.Parallel()

	owner := uuid.New()
	app := newTaskApp(newStubTaskService(), owner)

	status, body := doJSON(t, app, http.MethodPost, "/tasks/", fiber.Map{"text": "buy milk"})
	if status != http.StatusOK {
		t.Fatalf("expected 200 on create, got %d (body %s)", status, body)
	}

	var created dto.TaskResponse
	if err := json.Unmarshal(body, &created); err != nil {
		t.Fatalf("failed to decode task: %v", err)
	}
	if created.Text != "buy milk" {
		t.Fatalf("expected text %q, got %q", "buy milk", created.Text)
	}
	if created.UserID != owner {
		t.Fatalf("expected owner %s, got %s", owner, created.UserID)
	}
	if created.Status != "pending" || created.Priority != "normal" {
		t.Fatalf("expected defaults, got status=%q priority=%q", created.Status, created.Priority)
	}

	status, body = doJSON(t, app, http.MethodGet, "/tasks/", nil)
	if status != http.StatusOK {
		t.Fatalf("expected 200 on list, got %d", status)
	}

	var list []dto.TaskResponse
	if err := json.Unmarshal(body, &list); err != nil {
		t.Fatalf("failed to decode task list: %v", err)
	}
	if len(list) != 1 || list[0].ID != created.ID {
		t.Fatalf("expected list with created task, got %s", body)
	}
}

func TestCreateTask_EmptyText(t *testing.T) {
	t.Parallel()

	app := newTaskApp(newStubTaskService(), uuid.New())

	status, _ := doJSON(t, app, http.MethodPost, "/tasks/", fiber.Map{"text": ""})
	if status != http.StatusBadRequest {
		t.Fatalf("expected 400 for empty text, got %d", status)
	}
}

func TestUpdateStatus_NotFoundMapping(t *testing.T) {
	t.Parallel()

	app := newTaskApp(newStubTaskService(), uuid.New())

	status, body := doJSON(t, app, http.MethodPatch, "/tasks/"+uuid.New().String()+"/status", fiber.Map{"status": "done"})
	if status != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", status)
	}

	var msg utils.MessageBody
	if err := json.Unmarshal(body, &msg); err != nil {
		t.Fatalf("failed to decode message body: %v", err)
	}
	if msg.Message != "Task not found" {
		t.Fatalf("expected not-found message, got %q", msg.Message)
	}
}

func TestUpdateStatus_ReturnsUpdatedTask(t *testing.T) {
	t.Parallel()

	owner := uuid.New()
	svc := newStubTaskService()
	app := newTaskApp(svc, owner)

	task, err := svc.CreateTask(context.Background(), owner, &dto.CreateTaskRequest{Text: "buy milk"})
	if err != nil {
		t.Fatalf("failed to seed task: %v", err)
	}

	status, body := doJSON(t, app, http.MethodPatch, "/tasks/"+task.ID.String()+"/status", fiber.Map{"status": "done"})
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}

	var updated dto.TaskResponse
	if err := json.Unmarshal(body, &updated); err != nil {
		t.Fatalf("failed to decode task: %v", err)
	}
	if updated.Status != "done" {
		t.Fatalf("expected status done, got %q", updated.Status)
	}
}

func TestDeleteTask_AlwaysAcknowledges(t *testing.T) {
	t.Parallel()

	app := newTaskApp(newStubTaskService(), uuid.New())

	// ไม่มี task นี้อยู่จริง - ยังต้องได้ 200 {message}
	status, body := doJSON(t, app, http.MethodDelete, "/tasks/"+uuid.New().String(), nil)
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}

	var msg utils.MessageBody
	if err := json.Unmarshal(body, &msg); err != nil {
		t.Fatalf("failed to decode message body: %v", err)
	}
	if msg.Message != "Task deleted" {
		t.Fatalf("expected delete acknowledgment, got %q", msg.Message)
	}
}

func TestTaskRoutes_WithoutBoundUser(t *testing.T) {
	t.Parallel()

	// ไม่มี middleware ผูก user ใน locals
	app := fiber.New()
	h := handlers.NewTaskHandler(newStubTaskService())
	app.Get("/tasks", h.ListTasks)

	status, _ := doJSON(t, app, http.MethodGet, "/tasks", nil)
	if status != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", status)
	}
}
