package transport

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rpggio/taskboard/internal/domain/todo"
)

func (s *Server) handleListTodos(w http.ResponseWriter, r *http.Request) {
	todos, err := s.svc.Todos.List(r.Context(), s.userID(r))
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"todos": todos})
}

func (s *Server) handleCreateTodo(w http.ResponseWriter, r *http.Request) {
	var fields todo.Fields
	if err := decodeJSON(w, r, &fields); err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	created, err := s.svc.Todos.Create(r.Context(), s.userID(r), fields)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleGetTodo(w http.ResponseWriter, r *http.Request) {
	t, err := s.svc.Todos.Get(r.Context(), s.userID(r), chi.URLParam(r, "id"))
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (s *Server) handleUpdateTodo(w http.ResponseWriter, r *http.Request) {
	var fields todo.Fields
	if err := decodeJSON(w, r, &fields); err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	updated, err := s.svc.Todos.Update(r.Context(), s.userID(r), chi.URLParam(r, "id"), fields)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleToggleTodo(w http.ResponseWriter, r *http.Request) {
	toggled, err := s.svc.Todos.Toggle(r.Context(), s.userID(r), chi.URLParam(r, "id"))
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toggled)
}

func (s *Server) handleDeleteTodo(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.Todos.Delete(r.Context(), s.userID(r), chi.URLParam(r, "id")); err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
