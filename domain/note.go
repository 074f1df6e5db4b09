package domain

import (
	"context"
	"time"
)

type Note struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"size:200;not null" json:"title"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// NoteRepository is always scoped by the owning user; a note belonging to
// someone else behaves exactly like a missing note.
type NoteRepository interface {
	CreateNote(ctx context.Context, note *Note) error
	GetNotesByUser(ctx context.Context, userID uint) ([]Note, error)
	GetNoteByID(ctx context.Context, userID, noteID uint) (*Note, error)
	UpdateNote(ctx context.Context, note *Note) error
	DeleteNote(ctx context.Context, userID, noteID uint) error
}

type NoteUseCase interface {
	CreateNote(ctx context.Context, userID uint, title, content string) (*Note, error)
	GetNotes(ctx context.Context, userID uint) ([]Note, error)
	GetNote(ctx context.Context, userID, noteID uint) (*Note, error)
	UpdateNote(ctx context.Context, userID, noteID uint, title, content string) (*Note, error)
	DeleteNote(ctx context.Context, userID, noteID uint) error
}
