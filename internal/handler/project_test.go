package handler_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
)

func signupAndToken(t *testing.T, mux *http.ServeMux, email string) string {
	t.Helper()
	w := doJSON(t, mux, http.MethodPost, "/signup", "",
		fmt.Sprintf(`{"name":"User","email":%q,"password":"password123","password_confirmation":"password123"}`, email))
	if w.Code != http.StatusCreated {
		t.Fatalf("signup: expected 201, got %d: %s", w.Code, w.Body.String())
	}
	return decodeBody(t, w)["token"].(string)
}

func createProject(t *testing.T, mux *http.ServeMux, token, name string) string {
	t.Helper()
	w := doJSON(t, mux, http.MethodPost, "/projects", token,
		fmt.Sprintf(`{"name":%q,"description":"Test"}`, name))
	if w.Code != http.StatusCreated {
		t.Fatalf("create project: expected 201, got %d: %s", w.Code, w.Body.String())
	}
	return decodeBody(t, w)["id"].(string)
}

func TestProjects_List(t *testing.T) {
	mux := newTestMux(t)
	token := signupAndToken(t, mux, "alice@test.com")

	createProject(t, mux, token, "Project 1")
	createProject(t, mux, token, "Project 2")

	w := doJSON(t, mux, http.MethodGet, "/projects", token, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var projects []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &projects); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(projects) != 2 {
		t.Fatalf("expected 2 projects, got %d", len(projects))
	}
}

func TestProjects_ListScopedToCaller(t *testing.T) {
	mux := newTestMux(t)
	alice := signupAndToken(t, mux, "alice@test.com")
	bob := signupAndToken(t, mux, "bob@test.com")

	createProject(t, mux, alice, "Alice's Project")

	w := doJSON(t, mux, http.MethodGet, "/projects", bob, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var projects []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &projects); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(projects) != 0 {
		t.Fatalf("expected empty list for other user, got %d", len(projects))
	}
}

func TestProjects_RequireAuth(t *testing.T) {
	mux := newTestMux(t)

	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/projects"},
		{http.MethodPost, "/projects"},
		{http.MethodGet, "/projects/some-id"},
		{http.MethodPut, "/projects/some-id"},
		{http.MethodDelete, "/projects/some-id"},
	} {
		w := doJSON(t, mux, tc.method, tc.path, "", `{"name":"X"}`)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("%s %s: expected 401, got %d", tc.method, tc.path, w.Code)
		}
	}
}

func TestProjects_Create_Validation(t *testing.T) {
	mux := newTestMux(t)
	token := signupAndToken(t, mux, "alice@test.com")

	w := doJSON(t, mux, http.MethodPost, "/projects", token, `{"name":""}`)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", w.Code)
	}
	if _, ok := decodeBody(t, w)["errors"]; !ok {
		t.Fatal("expected errors key in body")
	}
}

func TestProjects_GetUpdateDelete(t *testing.T) {
	mux := newTestMux(t)
	token := signupAndToken(t, mux, "alice@test.com")
	id := createProject(t, mux, token, "Project")

	get := doJSON(t, mux, http.MethodGet, "/projects/"+id, token, "")
	if get.Code != http.StatusOK {
		t.Fatalf("get: expected 200, got %d", get.Code)
	}
	if decodeBody(t, get)["name"] != "Project" {
		t.Fatalf("unexpected project body: %s", get.Body.String())
	}

	update := doJSON(t, mux, http.MethodPut, "/projects/"+id, token, `{"name":"Renamed"}`)
	if update.Code != http.StatusOK {
		t.Fatalf("update: expected 200, got %d", update.Code)
	}
	if decodeBody(t, update)["name"] != "Renamed" {
		t.Fatalf("update not reflected: %s", update.Body.String())
	}

	del := doJSON(t, mux, http.MethodDelete, "/projects/"+id, token, "")
	if del.Code != http.StatusNoContent {
		t.Fatalf("delete: expected 204, got %d", del.Code)
	}

	gone := doJSON(t, mux, http.MethodGet, "/projects/"+id, token, "")
	if gone.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", gone.Code)
	}
}

func TestProjects_NotOwnedLooksAbsent(t *testing.T) {
	mux := newTestMux(t)
	alice := signupAndToken(t, mux, "alice@test.com")
	bob := signupAndToken(t, mux, "bob@test.com")
	id := createProject(t, mux, alice, "Private")

	// Bob's 404 must be byte-identical to the one for a nonexistent ID.
	notOwned := doJSON(t, mux, http.MethodGet, "/projects/"+id, bob, "")
	absent := doJSON(t, mux, http.MethodGet, "/projects/does-not-exist", bob, "")

	if notOwned.Code != http.StatusNotFound || absent.Code != http.StatusNotFound {
		t.Fatalf("expected 404s, got %d and %d", notOwned.Code, absent.Code)
	}
	if notOwned.Body.String() != absent.Body.String() {
		t.Fatalf("responses differ: %q vs %q", notOwned.Body.String(), absent.Body.String())
	}
}
