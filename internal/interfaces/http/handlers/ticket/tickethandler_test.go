package ticket

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/j-kappa/ticketing-system/internal/application/ticket/dto"
	"github.com/j-kappa/ticketing-system/internal/application/ticket/usecases"
	vo "github.com/j-kappa/ticketing-system/internal/domain/ticket/valueobjects"
	"github.com/j-kappa/ticketing-system/internal/shared/errors"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("ticketstatus", func(fl validator.FieldLevel) bool {
			return vo.Status(fl.Field().String()).IsValid()
		})
		v.RegisterValidation("ticketpriority", func(fl validator.FieldLevel) bool {
			return vo.Priority(fl.Field().String()).IsValid()
		})
		v.RegisterValidation("ticketcategory", func(fl validator.FieldLevel) bool {
			return vo.Category(fl.Field().String()).IsValid()
		})
	}
	os.Exit(m.Run())
}

type mockCreateTicket struct {
	ExecuteFunc func(ctx context.Context, cmd usecases.CreateTicketCommand) (*dto.TicketDTO, error)
}

func (m *mockCreateTicket) Execute(ctx context.Context, cmd usecases.CreateTicketCommand) (*dto.TicketDTO, error) {
	return m.ExecuteFunc(ctx, cmd)
}

type mockUpdateTicket struct {
	ExecuteFunc func(ctx context.Context, cmd usecases.UpdateTicketCommand) (*dto.TicketDTO, error)
}

func (m *mockUpdateTicket) Execute(ctx context.Context, cmd usecases.UpdateTicketCommand) (*dto.TicketDTO, error) {
	return m.ExecuteFunc(ctx, cmd)
}

type mockDeleteTicket struct {
	ExecuteFunc func(ctx context.Context, cmd usecases.DeleteTicketCommand) error
}

func (m *mockDeleteTicket) Execute(ctx context.Context, cmd usecases.DeleteTicketCommand) error {
	return m.ExecuteFunc(ctx, cmd)
}

type mockGetTicket struct {
	ExecuteFunc func(ctx context.Context, query usecases.GetTicketQuery) (*dto.TicketDetailDTO, error)
}

func (m *mockGetTicket) Execute(ctx context.Context, query usecases.GetTicketQuery) (*dto.TicketDetailDTO, error) {
	return m.ExecuteFunc(ctx, query)
}

type mockListTickets struct {
	ExecuteFunc func(ctx context.Context, query usecases.ListTicketsQuery) ([]dto.TicketDTO, error)
}

func (m *mockListTickets) Execute(ctx context.Context, query usecases.ListTicketsQuery) ([]dto.TicketDTO, error) {
	return m.ExecuteFunc(ctx, query)
}

type mockAddNote struct {
	ExecuteFunc func(ctx context.Context, cmd usecases.AddNoteCommand) (*dto.NoteDTO, error)
}

func (m *mockAddNote) Execute(ctx context.Context, cmd usecases.AddNoteCommand) (*dto.NoteDTO, error) {
	return m.ExecuteFunc(ctx, cmd)
}

type mockListNotes struct {
	ExecuteFunc func(ctx context.Context, query usecases.ListNotesQuery) ([]dto.NoteDTO, error)
}

func (m *mockListNotes) Execute(ctx context.Context, query usecases.ListNotesQuery) ([]dto.NoteDTO, error) {
	return m.ExecuteFunc(ctx, query)
}

type handlerMocks struct {
	create  *mockCreateTicket
	update  *mockUpdateTicket
	delete  *mockDeleteTicket
	get     *mockGetTicket
	list    *mockListTickets
	addNote *mockAddNote
	notes   *mockListNotes
}

func newTestEngine(t *testing.T) (*gin.Engine, *handlerMocks) {
	t.Helper()
	mocks := &handlerMocks{
		create:  &mockCreateTicket{},
		update:  &mockUpdateTicket{},
		delete:  &mockDeleteTicket{},
		get:     &mockGetTicket{},
		list:    &mockListTickets{},
		addNote: &mockAddNote{},
		notes:   &mockListNotes{},
	}
	h := NewTicketHandler(mocks.create, mocks.update, mocks.delete, mocks.get, mocks.list, mocks.addNote, mocks.notes)

	engine := gin.New()
	engine.GET("/tickets", h.ListTickets)
	engine.POST("/tickets", h.CreateTicket)
	engine.GET("/tickets/:id", h.GetTicket)
	engine.PUT("/tickets/:id", h.UpdateTicket)
	engine.DELETE("/tickets/:id", h.DeleteTicket)
	engine.POST("/tickets/:id/notes", h.AddNote)
	engine.GET("/tickets/:id/notes", h.ListNotes)
	return engine, mocks
}

func doJSON(t *testing.T, engine *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body == "" {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
		Details string `json:"details"`
	} `json:"error"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func TestTicketHandler_CreateTicket(t *testing.T) {
	engine, mocks := newTestEngine(t)

	var captured usecases.CreateTicketCommand
	mocks.create.ExecuteFunc = func(_ context.Context, cmd usecases.CreateTicketCommand) (*dto.TicketDTO, error) {
		captured = cmd
		return &dto.TicketDTO{ID: 7, Title: cmd.Title, Status: "new"}, nil
	}

	w := doJSON(t, engine, http.MethodPost, "/tickets",
		`{"title":"VPN broken","reporter_name":"Dana Cruz","priority":"high"}`)

	require.Equal(t, http.StatusCreated, w.Code)
	env := decodeEnvelope(t, w)
	assert.True(t, env.Success)
	assert.Equal(t, "Ticket created successfully", env.Message)
	assert.Equal(t, "VPN broken", captured.Title)
	assert.Equal(t, "high", captured.Priority)
	assert.Nil(t, captured.AssigneeID)
}

func TestTicketHandler_CreateTicket_MissingTitle(t *testing.T) {
	engine, mocks := newTestEngine(t)
	mocks.create.ExecuteFunc = func(context.Context, usecases.CreateTicketCommand) (*dto.TicketDTO, error) {
		t.Fatal("use case must not run on invalid body")
		return nil, nil
	}

	w := doJSON(t, engine, http.MethodPost, "/tickets", `{"reporter_name":"Dana Cruz"}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	env := decodeEnvelope(t, w)
	assert.False(t, env.Success)
	require.NotNil(t, env.Error)
	assert.Equal(t, "validation", env.Error.Type)
}

func TestTicketHandler_CreateTicket_InvalidStatus(t *testing.T) {
	engine, _ := newTestEngine(t)

	w := doJSON(t, engine, http.MethodPost, "/tickets",
		`{"title":"x","reporter_name":"Dana Cruz","status":"reopened"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTicketHandler_GetTicket_NotFound(t *testing.T) {
	engine, mocks := newTestEngine(t)
	mocks.get.ExecuteFunc = func(context.Context, usecases.GetTicketQuery) (*dto.TicketDetailDTO, error) {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	w := doJSON(t, engine, http.MethodGet, "/tickets/42", "")

	require.Equal(t, http.StatusNotFound, w.Code)
	env := decodeEnvelope(t, w)
	require.NotNil(t, env.Error)
	assert.Equal(t, "not_found", env.Error.Type)
	assert.Equal(t, "ticket not found", env.Error.Message)
}

func TestTicketHandler_GetTicket_BadID(t *testing.T) {
	engine, _ := newTestEngine(t)

	for _, id := range []string{"abc", "0", "-1"} {
		w := doJSON(t, engine, http.MethodGet, "/tickets/"+id, "")
		assert.Equal(t, http.StatusBadRequest, w.Code, "id %q", id)
	}
}

func TestTicketHandler_ListTickets_ForwardsFilters(t *testing.T) {
	engine, mocks := newTestEngine(t)

	var captured usecases.ListTicketsQuery
	mocks.list.ExecuteFunc = func(_ context.Context, query usecases.ListTicketsQuery) ([]dto.TicketDTO, error) {
		captured = query
		return []dto.TicketDTO{}, nil
	}

	w := doJSON(t, engine, http.MethodGet,
		"/tickets?status=new&priority=high&search=vpn&sort=priority&order=asc&assignee_id=3", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "new", captured.Status)
	assert.Equal(t, "high", captured.Priority)
	assert.Equal(t, "vpn", captured.Search)
	assert.Equal(t, "priority", captured.SortBy)
	assert.Equal(t, "asc", captured.SortOrder)
	require.NotNil(t, captured.AssigneeID)
	assert.Equal(t, uint(3), *captured.AssigneeID)
}

func TestTicketHandler_ListTickets_BadAssigneeFilter(t *testing.T) {
	engine, _ := newTestEngine(t)

	w := doJSON(t, engine, http.MethodGet, "/tickets?assignee_id=bob", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTicketHandler_UpdateTicket_AbsentAssigneeKeptNil(t *testing.T) {
	engine, mocks := newTestEngine(t)

	var captured usecases.UpdateTicketCommand
	mocks.update.ExecuteFunc = func(_ context.Context, cmd usecases.UpdateTicketCommand) (*dto.TicketDTO, error) {
		captured = cmd
		return &dto.TicketDTO{ID: cmd.TicketID}, nil
	}

	w := doJSON(t, engine, http.MethodPut, "/tickets/5", `{"status":"resolved"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(5), captured.TicketID)
	require.NotNil(t, captured.Status)
	assert.Equal(t, "resolved", *captured.Status)
	assert.Nil(t, captured.Title)
	assert.Nil(t, captured.AssigneeID)
}

func TestTicketHandler_DeleteTicket(t *testing.T) {
	engine, mocks := newTestEngine(t)

	var deleted uint
	mocks.delete.ExecuteFunc = func(_ context.Context, cmd usecases.DeleteTicketCommand) error {
		deleted = cmd.TicketID
		return nil
	}

	w := doJSON(t, engine, http.MethodDelete, "/tickets/9", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(9), deleted)
	env := decodeEnvelope(t, w)
	assert.Equal(t, "Ticket deleted successfully", env.Message)
}

func TestTicketHandler_AddNote(t *testing.T) {
	engine, mocks := newTestEngine(t)

	var captured usecases.AddNoteCommand
	mocks.addNote.ExecuteFunc = func(_ context.Context, cmd usecases.AddNoteCommand) (*dto.NoteDTO, error) {
		captured = cmd
		return &dto.NoteDTO{ID: 1, TicketID: cmd.TicketID}, nil
	}

	w := doJSON(t, engine, http.MethodPost, "/tickets/4/notes",
		`{"author_name":"Jane Doe","content":"Rebooted the router"}`)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, uint(4), captured.TicketID)
	assert.Equal(t, "Jane Doe", captured.AuthorName)
	assert.Equal(t, "Rebooted the router", captured.Content)
}

func TestTicketHandler_AddNote_MissingContent(t *testing.T) {
	engine, _ := newTestEngine(t)

	w := doJSON(t, engine, http.MethodPost, "/tickets/4/notes", `{"author_name":"Jane Doe"}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	env := decodeEnvelope(t, w)
	require.NotNil(t, env.Error)
	assert.True(t, strings.Contains(env.Error.Details, "Content"))
}
