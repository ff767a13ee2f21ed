package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"go-personals-service/internal/domain"
)

// SatellitePtr constrains PT to a pointer to a satellite record type.
type SatellitePtr[T any] interface {
	*T
	domain.Satellite
}

// SatelliteStore is the shared gorm store for person-owned records.
// One instantiation per satellite kind.
type SatelliteStore[T any, PT SatellitePtr[T]] struct {
	db *gorm.DB
}

func NewSatelliteStore[T any, PT SatellitePtr[T]](db *gorm.DB) *SatelliteStore[T, PT] {
	return &SatelliteStore[T, PT]{db: db}
}

func (s *SatelliteStore[T, PT]) Create(ctx context.Context, rec PT) error {
	if rec.PersonRef() == "" {
		return &domain.ValidationError{Field: "personId", Reason: "must not be empty"}
	}
	rec.EnsureID()
	if err := rec.Validate(); err != nil {
		return err
	}
	return s.db.WithContext(ctx).Create(rec).Error
}

func (s *SatelliteStore[T, PT]) FindByID(ctx context.Context, id string, includeTrashed bool) (PT, error) {
	var out T
	err := visible(s.db.WithContext(ctx), includeTrashed).First(&out, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return PT(&out), nil
}

func (s *SatelliteStore[T, PT]) ListByPerson(ctx context.Context, personID string, includeTrashed bool) ([]T, error) {
	var items []T
	err := visible(s.db.WithContext(ctx), includeTrashed).
		Where("person_id = ?", personID).
		Order("created_at").
		Find(&items).Error
	return items, err
}

// Update persists field changes on a live record. The owning
// reference is immutable; reparenting attempts are rejected.
func (s *SatelliteStore[T, PT]) Update(ctx context.Context, rec PT) error {
	if err := rec.Validate(); err != nil {
		return err
	}
	current, err := s.FindByID(ctx, rec.RecordID(), false)
	if err != nil {
		return err
	}
	if rec.PersonRef() != "" && rec.PersonRef() != current.PersonRef() {
		return &domain.ValidationError{Field: "personId", Reason: "cannot be changed"}
	}
	return s.db.WithContext(ctx).Save(rec).Error
}

// Trash soft-deletes a live record on behalf of actor (empty = anonymous).
func (s *SatelliteStore[T, PT]) Trash(ctx context.Context, id, actor string) error {
	rec, err := s.FindByID(ctx, id, false)
	if err != nil {
		return err
	}
	if err := guardTrash(any(rec)); err != nil {
		return err
	}
	return trashByID[T](s.db.WithContext(ctx), id, actor)
}

func (s *SatelliteStore[T, PT]) Restore(ctx context.Context, id string) error {
	rec, err := s.FindByID(ctx, id, true)
	if err != nil {
		return err
	}
	if !rec.Trashed() {
		return domain.ErrRestorationForbidden
	}
	return restoreByID[T](s.db.WithContext(ctx), id)
}

// HardDelete removes the record permanently, trashed or not.
func (s *SatelliteStore[T, PT]) HardDelete(ctx context.Context, id string) error {
	return hardDeleteByID[T](s.db.WithContext(ctx), id)
}
