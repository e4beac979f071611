package handler

import (
	"net/http"

	"github.com/mdupont/taskboard/internal/service"
)

// TaskHandler handles task CRUD requests. All routes run behind RequireAuth.
type TaskHandler struct {
	tasks *service.TaskService
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(tasks *service.TaskService) *TaskHandler {
	return &TaskHandler{tasks: tasks}
}

// HandleListByProject returns all tasks of one of the caller's projects.
// GET /projects/{id}/tasks
func (h *TaskHandler) HandleListByProject(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	tasks, err := h.tasks.ListByProject(r.Context(), user.ID, r.PathValue("id"))
	if err != nil {
		respondServiceError(w, err, "Project not found")
		return
	}

	writeJSON(w, http.StatusOK, toTaskDTOs(tasks))
}

// HandleCreate creates a task under one of the caller's projects.
// POST /projects/{id}/tasks
// Request: {"title":"...","description":"...","completed":...,"priority":"...","due_date":"..."}
func (h *TaskHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	var req struct {
		Title       string  `json:"title"`
		Description string  `json:"description"`
		Completed   *bool   `json:"completed"`
		Priority    *string `json:"priority"`
		DueDate     string  `json:"due_date"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	dueDate, err := parseDueDate(req.DueDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid due_date.")
		return
	}

	task, err := h.tasks.Create(r.Context(), user.ID, r.PathValue("id"), service.TaskInput{
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
		Priority:    req.Priority,
		DueDate:     dueDate,
	})
	if err != nil {
		respondServiceError(w, err, "Project not found")
		return
	}

	writeJSON(w, http.StatusCreated, toTaskDTO(task))
}

// HandleGet returns one of the caller's tasks.
// GET /tasks/{id}
func (h *TaskHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	task, err := h.tasks.GetByID(r.Context(), user.ID, r.PathValue("id"))
	if err != nil {
		respondServiceError(w, err, "Task not found")
		return
	}

	writeJSON(w, http.StatusOK, toTaskDTO(task))
}

// HandleUpdate applies a partial update to one of the caller's tasks.
// PUT /tasks/{id}
func (h *TaskHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	var req struct {
		Title       *string `json:"title"`
		Description *string `json:"description"`
		Completed   *bool   `json:"completed"`
		Priority    *string `json:"priority"`
		DueDate     *string `json:"due_date"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	upd := service.TaskUpdate{
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
		Priority:    req.Priority,
	}
	if req.DueDate != nil {
		dueDate, err := parseDueDate(*req.DueDate)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid due_date.")
			return
		}
		upd.DueDate = dueDate
	}

	task, err := h.tasks.Update(r.Context(), user.ID, r.PathValue("id"), upd)
	if err != nil {
		respondServiceError(w, err, "Task not found")
		return
	}

	writeJSON(w, http.StatusOK, toTaskDTO(task))
}

// HandleDelete removes one of the caller's tasks.
// DELETE /tasks/{id}
func (h *TaskHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	if err := h.tasks.Delete(r.Context(), user.ID, r.PathValue("id")); err != nil {
		respondServiceError(w, err, "Task not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleToggle flips the completed flag of one of the caller's tasks.
// PATCH /tasks/{id}/toggle
func (h *TaskHandler) HandleToggle(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	task, err := h.tasks.Toggle(r.Context(), user.ID, r.PathValue("id"))
	if err != nil {
		respondServiceError(w, err, "Task not found")
		return
	}

	writeJSON(w, http.StatusOK, toTaskDTO(task))
}
