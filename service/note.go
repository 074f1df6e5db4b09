package service

import (
	"context"

	"github.com/amit-3245/Secure-Notes-API/domain"
)

type noteService struct {
	noteRepo domain.NoteRepository
}

func NewNoteService(noteRepo domain.NoteRepository) domain.NoteUseCase {
	return &noteService{noteRepo: noteRepo}
}

func (s *noteService) CreateNote(ctx context.Context, userID uint, title, content string) (*domain.Note, error) {
	note := &domain.Note{
		Title:   title,
		Content: content,
		UserID:  userID,
	}
	if err := s.noteRepo.CreateNote(ctx, note); err != nil {
		return nil, err
	}
	return note, nil
}

func (s *noteService) GetNotes(ctx context.Context, userID uint) ([]domain.Note, error) {
	return s.noteRepo.GetNotesByUser(ctx, userID)
}

func (s *noteService) GetNote(ctx context.Context, userID, noteID uint) (*domain.Note, error) {
	return s.noteRepo.GetNoteByID(ctx, userID, noteID)
}

func (s *noteService) UpdateNote(ctx context.Context, userID, noteID uint, title, content string) (*domain.Note, error) {
	note := &domain.Note{
		ID:      noteID,
		UserID:  userID,
		Title:   title,
		Content: content,
	}
	if err := s.noteRepo.UpdateNote(ctx, note); err != nil {
		return nil, err
	}
	return s.noteRepo.GetNoteByID(ctx, userID, noteID)
}

func (s *noteService) DeleteNote(ctx context.Context, userID, noteID uint) error {
	return s.noteRepo.DeleteNote(ctx, userID, noteID)
}
