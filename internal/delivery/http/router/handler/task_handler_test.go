package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	deliverycontext "taskboard/internal/delivery/context"
	"taskboard/internal/domain/entity"
	domainerrors "taskboard/internal/domain/errors"
	mockUsecase "taskboard/internal/mocks/usecase"
	"taskboard/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTaskHandlerForTest(t *testing.T) (*TaskHandler, *mockUsecase.MockTaskUsecase) {
	t.Helper()

	mockUC := mockUsecase.NewMockTaskUsecase(t)

	return NewTaskHandler(mockUC, slog.New(slog.NewTextHandler(io.Discard, nil))), mockUC
}

func newAuthenticatedContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder, *entity.User) {
	c, rec := newJSONContext(method, target, body)
	user := &entity.User{ID: uuid.New(), Email: "owner@example.com"}
	deliverycontext.SetCurrentUser(c, user)

	return c, rec, user
}

func testTask(ownerID uuid.UUID) *entity.Task {
	now := time.Now().UTC()

	return &entity.Task{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Title:       "Write report",
		Description: "Quarterly numbers",
		Status:      entity.TaskStatusToDo,
		Priority:    entity.TaskPriorityMedium,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestTaskHandler_List_Success(t *testing.T) {
	h, mockUC := newTaskHandlerForTest(t)

	c, rec, user := newAuthenticatedContext(http.MethodGet, "/api/tasks?status=Done&search=report", "")
	task := testTask(user.ID)
	mockUC.EXPECT().
		ListTasks(mock.Anything, user.ID, &usecase.ListTasksInput{Status: "Done", Search: "report"}).
		Return([]*entity.Task{task}, nil).
		Once()

	require.NoError(t, h.List(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), task.ID.String())
	assert.Contains(t, rec.Body.String(), "Write report")
}

func TestTaskHandler_List_EmptyListIsNotNull(t *testing.T) {
	h, mockUC := newTaskHandlerForTest(t)

	c, rec, user := newAuthenticatedContext(http.MethodGet, "/api/tasks", "")
	mockUC.EXPECT().
		ListTasks(mock.Anything, user.ID, &usecase.ListTasksInput{}).
		Return(nil, nil).
		Once()

	require.NoError(t, h.List(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestTaskHandler_List_NoIdentity(t *testing.T) {
	h, _ := newTaskHandlerForTest(t)

	c, _ := newJSONContext(http.MethodGet, "/api/tasks", "")

	err := h.List(c)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestTaskHandler_Create_Success(t *testing.T) {
	h, mockUC := newTaskHandlerForTest(t)

	c, rec, user := newAuthenticatedContext(http.MethodPost, "/api/tasks", `{"title":"Write report","priority":"high"}`)
	task := testTask(user.ID)
	task.Priority = entity.TaskPriorityHigh
	mockUC.EXPECT().
		CreateTask(mock.Anything, user.ID, &usecase.CreateTaskInput{Title: "Write report", Priority: "high"}).
		Return(task, nil).
		Once()

	require.NoError(t, h.Create(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), task.ID.String())
	assert.Contains(t, rec.Body.String(), "high")
}

func TestTaskHandler_Create_BlankTitle(t *testing.T) {
	h, mockUC := newTaskHandlerForTest(t)

	c, _, user := newAuthenticatedContext(http.MethodPost, "/api/tasks", `{"title":"   "}`)
	mockUC.EXPECT().
		CreateTask(mock.Anything, user.ID, mock.AnythingOfType("*usecase.CreateTaskInput")).
		Return(nil, domainerrors.ErrTitleRequired.WrapMessage("title must not be blank")).
		Once()

	err := h.Create(c)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrTitleRequired)
}

func TestTaskHandler_Update_Success(t *testing.T) {
	h, mockUC := newTaskHandlerForTest(t)

	taskID := uuid.New()
	c, rec, user := newAuthenticatedContext(http.MethodPut, "/api/tasks/"+taskID.String(), `{"status":"Done"}`)
	c.SetParamNames("id")
	c.SetParamValues(taskID.String())

	task := testTask(user.ID)
	task.ID = taskID
	task.Status = entity.TaskStatusDone
	status := "Done"
	mockUC.EXPECT().
		UpdateTask(mock.Anything, user.ID, taskID, &usecase.UpdateTaskInput{Status: &status}).
		Return(task, nil).
		Once()

	require.NoError(t, h.Update(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), taskID.String())
	assert.Contains(t, rec.Body.String(), "Done")
}

func TestTaskHandler_Update_MalformedIDBehavesLikeMissingTask(t *testing.T) {
	h, _ := newTaskHandlerForTest(t)

	c, _, _ := newAuthenticatedContext(http.MethodPut, "/api/tasks/not-a-uuid", `{"status":"Done"}`)
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	err := h.Update(c)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrTaskNotFound)
}

func TestTaskHandler_Update_NotOwner(t *testing.T) {
	h, mockUC := newTaskHandlerForTest(t)

	taskID := uuid.New()
	c, _, user := newAuthenticatedContext(http.MethodPut, "/api/tasks/"+taskID.String(), `{"status":"Done"}`)
	c.SetParamNames("id")
	c.SetParamValues(taskID.String())

	mockUC.EXPECT().
		UpdateTask(mock.Anything, user.ID, taskID, mock.AnythingOfType("*usecase.UpdateTaskInput")).
		Return(nil, domainerrors.ErrNotTaskOwner.WrapMessage("task belongs to another user")).
		Once()

	err := h.Update(c)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNotTaskOwner)
}

func TestTaskHandler_Delete_Success(t *testing.T) {
	h, mockUC := newTaskHandlerForTest(t)

	taskID := uuid.New()
	c, rec, user := newAuthenticatedContext(http.MethodDelete, "/api/tasks/"+taskID.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(taskID.String())

	mockUC.EXPECT().
		DeleteTask(mock.Anything, user.ID, taskID).
		Return(nil).
		Once()

	require.NoError(t, h.Delete(c))

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, taskID.String(), body["id"])
}

func TestTaskHandler_Delete_NotFound(t *testing.T) {
	h, mockUC := newTaskHandlerForTest(t)

	taskID := uuid.New()
	c, _, user := newAuthenticatedContext(http.MethodDelete, "/api/tasks/"+taskID.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(taskID.String())

	mockUC.EXPECT().
		DeleteTask(mock.Anything, user.ID, taskID).
		Return(domainerrors.ErrTaskNotFound.WrapMessage("task does not exist")).
		Once()

	err := h.Delete(c)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrTaskNotFound)
}

func TestTaskHandler_Delete_NoIdentity(t *testing.T) {
	h, _ := newTaskHandlerForTest(t)

	c, _ := newJSONContext(http.MethodDelete, "/api/tasks/"+uuid.NewString(), "")

	err := h.Delete(c)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}
