package handler

import (
	"net/http"

	"github.com/mdupont/taskboard/internal/service"
)

// ProjectHandler handles project CRUD requests. All routes run behind
// RequireAuth, so UserFromContext is always set.
type ProjectHandler struct {
	projects *service.ProjectService
}

// NewProjectHandler creates a new ProjectHandler.
func NewProjectHandler(projects *service.ProjectService) *ProjectHandler {
	return &ProjectHandler{projects: projects}
}

// HandleList returns all projects owned by the caller.
// GET /projects
func (h *ProjectHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	projects, err := h.projects.ListByUser(r.Context(), user.ID)
	if err != nil {
		respondServiceError(w, err, "Project not found")
		return
	}

	writeJSON(w, http.StatusOK, toProjectDTOs(projects))
}

// HandleCreate creates a project for the caller.
// POST /projects
// Request: {"name":"...","description":"..."}
func (h *ProjectHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	project, err := h.projects.Create(r.Context(), user.ID, req.Name, req.Description)
	if err != nil {
		respondServiceError(w, err, "Project not found")
		return
	}

	writeJSON(w, http.StatusCreated, toProjectDTO(project))
}

// HandleGet returns one of the caller's projects.
// GET /projects/{id}
func (h *ProjectHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	project, err := h.projects.GetByID(r.Context(), user.ID, r.PathValue("id"))
	if err != nil {
		respondServiceError(w, err, "Project not found")
		return
	}

	writeJSON(w, http.StatusOK, toProjectDTO(project))
}

// HandleUpdate applies a partial update to one of the caller's projects.
// PUT /projects/{id}
func (h *ProjectHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	var req struct {
		Name        *string `json:"name"`
		Description *string `json:"description"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	project, err := h.projects.Update(r.Context(), user.ID, r.PathValue("id"), service.ProjectUpdate{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		respondServiceError(w, err, "Project not found")
		return
	}

	writeJSON(w, http.StatusOK, toProjectDTO(project))
}

// HandleDelete removes one of the caller's projects and its tasks.
// DELETE /projects/{id}
func (h *ProjectHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	if err := h.projects.Delete(r.Context(), user.ID, r.PathValue("id")); err != nil {
		respondServiceError(w, err, "Project not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
