package repository

import (
	"context"

	"github.com/amit-3245/Secure-Notes-API/domain"
	"gorm.io/gorm"
)

type noteRepository struct {
	db *gorm.DB
}

func NewNoteRepository(db *gorm.DB) domain.NoteRepository {
	return &noteRepository{db: db}
}

func (r *noteRepository) CreateNote(ctx context.Context, note *domain.Note) error {
	if err := r.db.WithContext(ctx).Create(note).Error; err != nil {
		return translateDBError(err, domain.ErrNoteNotFound)
	}
	return nil
}

func (r *noteRepository) GetNotesByUser(ctx context.Context, userID uint) ([]domain.Note, error) {
	var notes []domain.Note
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&notes).Error; err != nil {
		return nil, translateDBError(err, domain.ErrNoteNotFound)
	}
	return notes, nil
}

func (r *noteRepository) GetNoteByID(ctx context.Context, userID, noteID uint) (*domain.Note, error) {
	var note domain.Note
	if err := r.db.WithContext(ctx).
		First(&note, "id = ? AND user_id = ?", noteID, userID).Error; err != nil {
		return nil, translateDBError(err, domain.ErrNoteNotFound)
	}
	return &note, nil
}

func (r *noteRepository) UpdateNote(ctx context.Context, note *domain.Note) error {
	res := r.db.WithContext(ctx).
		Model(&domain.Note{}).
		Where("id = ? AND user_id = ?", note.ID, note.UserID).
		Updates(map[string]interface{}{"title": note.Title, "content": note.Content})
	if res.Error != nil {
		return translateDBError(res.Error, domain.ErrNoteNotFound)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNoteNotFound
	}
	return nil
}

func (r *noteRepository) DeleteNote(ctx context.Context, userID, noteID uint) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", noteID, userID).
		Delete(&domain.Note{})
	if res.Error != nil {
		return translateDBError(res.Error, domain.ErrNoteNotFound)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNoteNotFound
	}
	return nil
}
