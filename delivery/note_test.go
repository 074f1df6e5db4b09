package delivery

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/amit-3245/Secure-Notes-API/domain"
	"github.com/amit-3245/Secure-Notes-API/utils"
	"github.com/gin-gonic/gin"
)

type stubNoteUseCase struct {
	notes   []domain.Note
	getErr  error
	lastFor uint
}

func (s *stubNoteUseCase) CreateNote(_ context.Context, userID uint, title, content string) (*domain.Note, error) {
	s.lastFor = userID
	return &domain.Note{ID: 1, UserID: userID, Title: title, Content: content}, nil
}

func (s *stubNoteUseCase) GetNotes(_ context.Context, userID uint) ([]domain.Note, error) {
	s.lastFor = userID
	return s.notes, nil
}

func (s *stubNoteUseCase) GetNote(_ context.Context, userID, noteID uint) (*domain.Note, error) {
	s.lastFor = userID
	if s.getErr != nil {
		return nil, s.getErr
	}
	return &domain.Note{ID: noteID, UserID: userID}, nil
}

func (s *stubNoteUseCase) UpdateNote(_ context.Context, userID, noteID uint, title, content string) (*domain.Note, error) {
	return &domain.Note{ID: noteID, UserID: userID, Title: title, Content: content}, nil
}

func (s *stubNoteUseCase) DeleteNote(_ context.Context, userID, _ uint) error {
	s.lastFor = userID
	return nil
}

func newNoteRouter(stub *stubNoteUseCase) (*gin.Engine, string) {
	gin.SetMode(gin.TestMode)
	manager := utils.NewJWTManager("test-secret-key-of-sufficient-len", 30*time.Minute)
	r := gin.New()
	NewNoteHandler(r, stub, manager)

	tok, err := manager.GenerateToken(7)
	if err != nil {
		panic(err)
	}
	return r, tok
}

func TestNotes_RequireBearer(t *testing.T) {
	r, _ := newNoteRouter(&stubNoteUseCase{})

	req := httptest.NewRequest(http.MethodGet, "/notes", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestNotes_CreateScopedToTokenUser(t *testing.T) {
	stub := &stubNoteUseCase{}
	r, tok := newNoteRouter(stub)

	w := postJSON(r, "/notes", `{"title":"groceries","content":"milk, eggs"}`,
		map[string]string{"Authorization": "Bearer " + tok})

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201; body = %s", w.Code, w.Body.String())
	}
	if stub.lastFor != 7 {
		t.Fatalf("note created for user %d, want 7", stub.lastFor)
	}
}

func TestNotes_ForeignNoteLooksMissing(t *testing.T) {
	stub := &stubNoteUseCase{getErr: domain.ErrNoteNotFound}
	r, tok := newNoteRouter(stub)

	req := httptest.NewRequest(http.MethodGet, "/notes/99", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestNotes_InvalidID(t *testing.T) {
	r, tok := newNoteRouter(&stubNoteUseCase{})

	req := httptest.NewRequest(http.MethodGet, "/notes/abc", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}
