// Package testutils provides common utilities and helpers for testing,
// most importantly an in-memory fake of the NoteHub service.
package testutils

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/notehubapp/notehub-mcp/pkg/dto"
)

// FakeNoteHub is an in-memory stand-in for the remote service. It speaks
// the same envelope protocol, paginates listings, soft-deletes notes and
// todos, and cascades group deletes.
type FakeNoteHub struct {
	t      *testing.T
	Server *httptest.Server

	mu         sync.Mutex
	notes      map[string]*dto.Note
	groups     map[string]*dto.Group
	todos      map[string]*dto.Todo
	workspaces map[string]*dto.Workspace
	daily      map[string]string // date -> note id
	weekly     map[string]string // "week/year" -> note id

	noteOrder      []string
	groupOrder     []string
	todoOrder      []string
	workspaceOrder []string

	requests map[string]int
	failures map[string]injectedFailure
}

type injectedFailure struct {
	status  int
	code    string
	message string
}

type responseEnvelope struct {
	Success bool            `json:"success"`
	Data    any             `json:"data,omitempty"`
	Error   *envelopeError  `json:"error,omitempty"`
	Meta    *dto.Pagination `json:"meta,omitempty"`
}

type envelopeError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NewFakeNoteHub starts the fake service; it shuts down with the test.
func NewFakeNoteHub(t *testing.T) *FakeNoteHub {
	t.Helper()

	f := &FakeNoteHub{
		t:          t,
		notes:      map[string]*dto.Note{},
		groups:     map[string]*dto.Group{},
		todos:      map[string]*dto.Todo{},
		workspaces: map[string]*dto.Workspace{},
		daily:      map[string]string{},
		weekly:     map[string]string{},
		requests:   map[string]int{},
		failures:   map[string]injectedFailure{},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /note", f.listNotes)
	mux.HandleFunc("POST /note", f.createNote)
	mux.HandleFunc("GET /note/{id}", f.getNote)
	mux.HandleFunc("PUT /note/{id}", f.updateNote)
	mux.HandleFunc("DELETE /note/{id}", f.deleteNote)
	mux.HandleFunc("GET /group", f.listGroups)
	mux.HandleFunc("POST /group", f.createGroup)
	mux.HandleFunc("GET /group/{id}", f.getGroup)
	mux.HandleFunc("PUT /group/{id}", f.updateGroup)
	mux.HandleFunc("DELETE /group/{id}", f.deleteGroup)
	mux.HandleFunc("GET /todo", f.listTodos)
	mux.HandleFunc("POST /todo", f.createTodo)
	mux.HandleFunc("GET /todo/{id}", f.getTodo)
	mux.HandleFunc("PUT /todo/{id}", f.updateTodo)
	mux.HandleFunc("DELETE /todo/{id}", f.deleteTodo)
	mux.HandleFunc("GET /workspace", f.listWorkspaces)
	mux.HandleFunc("GET /workspace/{id}", f.getWorkspace)
	mux.HandleFunc("GET /daily", f.getDaily)
	mux.HandleFunc("GET /weekly", f.getWeekly)

	f.Server = httptest.NewServer(f.intercept(mux))
	t.Cleanup(f.Server.Close)

	return f
}

// URL returns the fake service's base URL.
func (f *FakeNoteHub) URL() string {
	return f.Server.URL
}

// FailNext makes the next request matching "METHOD /path" fail with the
// given status and error code. Consumed once.
func (f *FakeNoteHub) FailNext(method, path string, status int, code, message string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failures[method+" "+path] = injectedFailure{status: status, code: code, message: message}
}

// Requests reports how many times "METHOD /path" was called.
func (f *FakeNoteHub) Requests(method, path string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.requests[method+" "+path]
}

func (f *FakeNoteHub) intercept(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Method + " " + r.URL.Path

		f.mu.Lock()
		f.requests[key]++
		failure, ok := f.failures[key]
		if ok {
			delete(f.failures, key)
		}
		f.mu.Unlock()

		if ok {
			writeJSON(w, failure.status, responseEnvelope{
				Error: &envelopeError{Code: failure.code, Message: failure.message},
			})
			return
		}

		next.ServeHTTP(w, r)
	})
}

// SeedWorkspace adds a workspace directly to the store.
func (f *FakeNoteHub) SeedWorkspace(name string, isDefault bool) *dto.Workspace {
	f.mu.Lock()
	defer f.mu.Unlock()

	ws := &dto.Workspace{
		ID:        uuid.NewString(),
		Name:      name,
		UserID:    "user-1",
		IsDefault: isDefault,
	}
	f.workspaces[ws.ID] = ws
	f.workspaceOrder = append(f.workspaceOrder, ws.ID)
	return ws
}

// SeedGroup adds a group directly to the store.
func (f *FakeNoteHub) SeedGroup(workspaceID, name string, parentID *string) *dto.Group {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.insertGroup(workspaceID, name, parentID)
}

// SeedNote adds a note directly to the store.
func (f *FakeNoteHub) SeedNote(workspaceID, name, content string) *dto.Note {
	f.mu.Lock()
	defer f.mu.Unlock()

	now := time.Now().UTC()
	note := &dto.Note{
		ID:          uuid.NewString(),
		Name:        name,
		Content:     content,
		WorkspaceID: workspaceID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	f.notes[note.ID] = note
	f.noteOrder = append(f.noteOrder, note.ID)
	return note
}

// SeedTodo adds a todo directly to the store.
func (f *FakeNoteHub) SeedTodo(noteID, text string, lineNumber int) *dto.Todo {
	f.mu.Lock()
	defer f.mu.Unlock()

	now := time.Now().UTC()
	todo := &dto.Todo{
		ID:         uuid.NewString(),
		Text:       text,
		NoteID:     noteID,
		LineNumber: lineNumber,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	f.todos[todo.ID] = todo
	f.todoOrder = append(f.todoOrder, todo.ID)
	return todo
}

// GroupCount reports how many groups currently exist.
func (f *FakeNoteHub) GroupCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.groups)
}

func (f *FakeNoteHub) insertGroup(workspaceID, name string, parentID *string) *dto.Group {
	now := time.Now().UTC()
	group := &dto.Group{
		ID:          uuid.NewString(),
		Name:        name,
		WorkspaceID: workspaceID,
		UserID:      "user-1",
		ParentID:    parentID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	f.groups[group.ID] = group
	f.groupOrder = append(f.groupOrder, group.ID)
	return group
}

// ---- notes ----

func (f *FakeNoteHub) listNotes(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	query := r.URL.Query()
	var matched []dto.Note
	for _, id := range f.noteOrder {
		note := f.notes[id]
		if ws := query.Get("workspaceId"); ws != "" && note.WorkspaceID != ws {
			continue
		}
		if gid := query.Get("groupId"); gid != "" && (note.GroupID == nil || *note.GroupID != gid) {
			continue
		}
		if deleted := query.Get("isDeleted"); deleted != "" {
			want, _ := strconv.ParseBool(deleted)
			if note.IsDeleted != want {
				continue
			}
		}
		if search := query.Get("search"); search != "" &&
			!strings.Contains(strings.ToLower(note.Name+" "+note.Content), strings.ToLower(search)) {
			continue
		}
		matched = append(matched, *note)
	}

	if query.Get("sort") == "updatedAt:desc" {
		sort.SliceStable(matched, func(i, j int) bool {
			return matched[i].UpdatedAt.After(matched[j].UpdatedAt)
		})
	}

	writePage(w, r, matched)
}

func (f *FakeNoteHub) createNote(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name        string  `json:"name"`
		Content     string  `json:"content"`
		WorkspaceID string  `json:"workspaceId"`
		GroupID     *string `json:"groupId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "MalformedRequest", err.Error())
		return
	}
	if body.Name == "" {
		writeError(w, http.StatusBadRequest, "ValidationError", "name is required")
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	now := time.Now().UTC()
	note := &dto.Note{
		ID:          uuid.NewString(),
		Name:        body.Name,
		Content:     body.Content,
		WorkspaceID: body.WorkspaceID,
		GroupID:     body.GroupID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	f.notes[note.ID] = note
	f.noteOrder = append(f.noteOrder, note.ID)

	writeData(w, http.StatusCreated, note)
}

func (f *FakeNoteHub) getNote(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	note, ok := f.notes[r.PathValue("id")]
	if !ok {
		writeError(w, http.StatusNotFound, "NotFound", "note not found")
		return
	}
	writeData(w, http.StatusOK, note)
}

func (f *FakeNoteHub) updateNote(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name    *string `json:"name"`
		Content *string `json:"content"`
		GroupID *string `json:"groupId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "MalformedRequest", err.Error())
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	note, ok := f.notes[r.PathValue("id")]
	if !ok {
		writeError(w, http.StatusNotFound, "NotFound", "note not found")
		return
	}

	if body.Name != nil {
		note.Name = *body.Name
	}
	if body.Content != nil {
		note.Content = *body.Content
	}
	if body.GroupID != nil {
		note.GroupID = body.GroupID
	}
	note.UpdatedAt = time.Now().UTC()

	writeData(w, http.StatusOK, note)
}

func (f *FakeNoteHub) deleteNote(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	note, ok := f.notes[r.PathValue("id")]
	if !ok {
		writeError(w, http.StatusNotFound, "NotFound", "note not found")
		return
	}

	now := time.Now().UTC()
	note.IsDeleted = true
	note.DeletedAt = &now
	note.UpdatedAt = now

	writeData(w, http.StatusOK, note)
}

// ---- groups ----

func (f *FakeNoteHub) listGroups(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	query := r.URL.Query()
	var matched []dto.Group
	for _, id := range f.groupOrder {
		group, ok := f.groups[id]
		if !ok {
			continue
		}
		if ws := query.Get("workspaceId"); ws != "" && group.WorkspaceID != ws {
			continue
		}
		if parent := query.Get("parentId"); parent != "" {
			if parent == "null" {
				if group.ParentID != nil {
					continue
				}
			} else if group.ParentID == nil || *group.ParentID != parent {
				continue
			}
		}
		matched = append(matched, *group)
	}

	writePage(w, r, matched)
}

func (f *FakeNoteHub) createGroup(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name        string  `json:"name"`
		WorkspaceID string  `json:"workspaceId"`
		ParentID    *string `json:"parentId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "MalformedRequest", err.Error())
		return
	}
	if body.Name == "" {
		writeError(w, http.StatusBadRequest, "ValidationError", "name is required")
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	group := f.insertGroup(body.WorkspaceID, body.Name, body.ParentID)
	writeData(w, http.StatusCreated, group)
}

func (f *FakeNoteHub) getGroup(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	group, ok := f.groups[r.PathValue("id")]
	if !ok {
		writeError(w, http.StatusNotFound, "NotFound", "group not found")
		return
	}
	writeData(w, http.StatusOK, group)
}

func (f *FakeNoteHub) updateGroup(w http.ResponseWriter, r *http.Request) {
	var body map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "MalformedRequest", err.Error())
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	group, ok := f.groups[r.PathValue("id")]
	if !ok {
		writeError(w, http.StatusNotFound, "NotFound", "group not found")
		return
	}

	if raw, ok := body["name"]; ok {
		var name string
		if err := json.Unmarshal(raw, &name); err != nil || name == "" {
			writeError(w, http.StatusBadRequest, "ValidationError", "invalid name")
			return
		}
		group.Name = name
	}
	if raw, ok := body["parentId"]; ok {
		var parentID *string
		if err := json.Unmarshal(raw, &parentID); err != nil {
			writeError(w, http.StatusBadRequest, "ValidationError", "invalid parentId")
			return
		}
		if parentID != nil {
			parent, exists := f.groups[*parentID]
			if !exists {
				writeError(w, http.StatusNotFound, "NotFound", "parent group not found")
				return
			}
			if parent.WorkspaceID != group.WorkspaceID {
				writeError(w, http.StatusBadRequest, "ValidationError", "cannot move across workspaces")
				return
			}
			if f.wouldCycle(group.ID, *parentID) {
				writeError(w, http.StatusBadRequest, "ValidationError", "move would create a cycle")
				return
			}
		}
		group.ParentID = parentID
	}
	group.UpdatedAt = time.Now().UTC()

	writeData(w, http.StatusOK, group)
}

func (f *FakeNoteHub) wouldCycle(groupID, newParentID string) bool {
	current := newParentID
	for {
		if current == groupID {
			return true
		}
		parent, ok := f.groups[current]
		if !ok || parent.ParentID == nil {
			return false
		}
		current = *parent.ParentID
	}
}

func (f *FakeNoteHub) deleteGroup(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	id := r.PathValue("id")
	if _, ok := f.groups[id]; !ok {
		writeError(w, http.StatusNotFound, "NotFound", "group not found")
		return
	}

	doomed := map[string]bool{id: true}
	// Cascade: sweep until no new descendants turn up.
	for {
		grew := false
		for _, group := range f.groups {
			if group.ParentID != nil && doomed[*group.ParentID] && !doomed[group.ID] {
				doomed[group.ID] = true
				grew = true
			}
		}
		if !grew {
			break
		}
	}

	for victim := range doomed {
		delete(f.groups, victim)
	}

	writeData(w, http.StatusOK, dto.DeleteGroupResult{DeletedCount: len(doomed)})
}

// ---- todos ----

func (f *FakeNoteHub) listTodos(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	query := r.URL.Query()
	var matched []dto.Todo
	for _, id := range f.todoOrder {
		todo := f.todos[id]
		if noteID := query.Get("noteId"); noteID != "" && todo.NoteID != noteID {
			continue
		}
		if todo.IsDeleted {
			continue
		}
		matched = append(matched, *todo)
	}

	writePage(w, r, matched)
}

func (f *FakeNoteHub) createTodo(w http.ResponseWriter, r *http.Request) {
	var body struct {
		NoteID     string `json:"noteId"`
		Text       string `json:"text"`
		LineNumber int    `json:"lineNumber"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "MalformedRequest", err.Error())
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.notes[body.NoteID]; !ok {
		writeError(w, http.StatusNotFound, "NotFound", "note not found")
		return
	}

	now := time.Now().UTC()
	todo := &dto.Todo{
		ID:         uuid.NewString(),
		Text:       body.Text,
		NoteID:     body.NoteID,
		LineNumber: body.LineNumber,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	f.todos[todo.ID] = todo
	f.todoOrder = append(f.todoOrder, todo.ID)

	writeData(w, http.StatusCreated, todo)
}

func (f *FakeNoteHub) getTodo(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	todo, ok := f.todos[r.PathValue("id")]
	if !ok {
		writeError(w, http.StatusNotFound, "NotFound", "todo not found")
		return
	}
	writeData(w, http.StatusOK, todo)
}

func (f *FakeNoteHub) updateTodo(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Text       *string `json:"text"`
		Completed  *bool   `json:"completed"`
		LineNumber *int    `json:"lineNumber"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "MalformedRequest", err.Error())
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	todo, ok := f.todos[r.PathValue("id")]
	if !ok {
		writeError(w, http.StatusNotFound, "NotFound", "todo not found")
		return
	}

	now := time.Now().UTC()
	if body.Text != nil {
		todo.Text = *body.Text
	}
	if body.Completed != nil {
		todo.Completed = *body.Completed
		if *body.Completed {
			todo.CompletedAt = &now
		} else {
			todo.CompletedAt = nil
		}
	}
	if body.LineNumber != nil {
		todo.LineNumber = *body.LineNumber
	}
	todo.UpdatedAt = now

	writeData(w, http.StatusOK, todo)
}

func (f *FakeNoteHub) deleteTodo(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	todo, ok := f.todos[r.PathValue("id")]
	if !ok {
		writeError(w, http.StatusNotFound, "NotFound", "todo not found")
		return
	}

	todo.IsDeleted = true
	todo.UpdatedAt = time.Now().UTC()

	writeData(w, http.StatusOK, todo)
}

// ---- workspaces ----

func (f *FakeNoteHub) listWorkspaces(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var matched []dto.Workspace
	for _, id := range f.workspaceOrder {
		matched = append(matched, *f.workspaces[id])
	}

	writePage(w, r, matched)
}

func (f *FakeNoteHub) getWorkspace(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	ws, ok := f.workspaces[r.PathValue("id")]
	if !ok {
		writeError(w, http.StatusNotFound, "NotFound", "workspace not found")
		return
	}
	writeData(w, http.StatusOK, ws)
}

// ---- calendar ----

func (f *FakeNoteHub) getDaily(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date = time.Now().UTC().Format("2006-01-02")
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if id, ok := f.daily[date]; ok {
		writeData(w, http.StatusOK, f.notes[id])
		return
	}

	now := time.Now().UTC()
	note := &dto.Note{
		ID:        uuid.NewString(),
		Name:      date,
		CreatedAt: now,
		UpdatedAt: now,
	}
	f.notes[note.ID] = note
	f.noteOrder = append(f.noteOrder, note.ID)
	f.daily[date] = note.ID

	writeData(w, http.StatusOK, note)
}

func (f *FakeNoteHub) getWeekly(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	now := time.Now().UTC()
	isoYear, isoWeek := now.ISOWeek()

	week := query.Get("week")
	if week == "" {
		week = strconv.Itoa(isoWeek)
	}
	year := query.Get("year")
	if year == "" {
		year = strconv.Itoa(isoYear)
	}
	key := week + "/" + year

	f.mu.Lock()
	defer f.mu.Unlock()

	if id, ok := f.weekly[key]; ok {
		writeData(w, http.StatusOK, f.notes[id])
		return
	}

	note := &dto.Note{
		ID:        uuid.NewString(),
		Name:      fmt.Sprintf("Week %s, %s", week, year),
		CreatedAt: now,
		UpdatedAt: now,
	}
	f.notes[note.ID] = note
	f.noteOrder = append(f.noteOrder, note.ID)
	f.weekly[key] = note.ID

	writeData(w, http.StatusOK, note)
}

// ---- response helpers ----

func writePage[T any](w http.ResponseWriter, r *http.Request, items []T) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit < 1 {
		limit = 100
	}

	total := len(items)
	totalPages := (total + limit - 1) / limit

	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	if items == nil {
		items = []T{}
	}

	writeJSON(w, http.StatusOK, responseEnvelope{
		Success: true,
		Data:    items[start:end],
		Meta: &dto.Pagination{
			Total:      total,
			Page:       page,
			Limit:      limit,
			TotalPages: totalPages,
		},
	})
}

func writeData(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, responseEnvelope{Success: true, Data: data})
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, responseEnvelope{Error: &envelopeError{Code: code, Message: message}})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
