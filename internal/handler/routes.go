package handler

import (
	"net/http"

	"github.com/mdupont/taskboard/internal/service"
)

// RegisterRoutes sets up all HTTP routes on the given mux. Identity-scoped
// routes run behind Authenticate and RequireAuth; the guard rejects before
// the handler ever executes, so exactly one of them writes the response.
func RegisterRoutes(mux *http.ServeMux, auth *service.AuthService, projects *service.ProjectService, tasks *service.TaskService) {
	authHandler := NewAuthHandler(auth)
	projectHandler := NewProjectHandler(projects)
	taskHandler := NewTaskHandler(tasks)

	protected := func(h http.HandlerFunc) http.Handler {
		return Authenticate(auth, RequireAuth(h))
	}

	mux.HandleFunc("GET /health", HandleHealth)

	mux.HandleFunc("POST /signup", authHandler.HandleSignup)
	mux.HandleFunc("POST /login", authHandler.HandleLogin)
	mux.Handle("GET /me", protected(authHandler.HandleMe))

	mux.Handle("GET /projects", protected(projectHandler.HandleList))
	mux.Handle("POST /projects", protected(projectHandler.HandleCreate))
	mux.Handle("GET /projects/{id}", protected(projectHandler.HandleGet))
	mux.Handle("PUT /projects/{id}", protected(projectHandler.HandleUpdate))
	mux.Handle("DELETE /projects/{id}", protected(projectHandler.HandleDelete))

	mux.Handle("GET /projects/{id}/tasks", protected(taskHandler.HandleListByProject))
	mux.Handle("POST /projects/{id}/tasks", protected(taskHandler.HandleCreate))
	mux.Handle("GET /tasks/{id}", protected(taskHandler.HandleGet))
	mux.Handle("PUT /tasks/{id}", protected(taskHandler.HandleUpdate))
	mux.Handle("DELETE /tasks/{id}", protected(taskHandler.HandleDelete))
	mux.Handle("PATCH /tasks/{id}/toggle", protected(taskHandler.HandleToggle))
}
