package repo

import (
	"time"

	"gorm.io/gorm"

	"go-personals-service/internal/domain"
)

// visible applies the read scope. Trashed records are hidden unless
// the caller explicitly opts in; there is no implicit global filter.
func visible(q *gorm.DB, includeTrashed bool) *gorm.DB {
	if !includeTrashed {
		q = q.Where("is_trashed = ?", false)
	}
	return q
}

// trashByID marks a live record trashed. The three ledger columns are
// written in a single UPDATE guarded on is_trashed = false, so two
// racing deletes serialize in the storage engine and the loser sees
// ErrNotFound.
func trashByID[T any](db *gorm.DB, id, actor string) error {
	now := time.Now().UTC()
	vals := map[string]any{
		"is_trashed": true,
		"trashed_at": now,
		"trashed_by": nil,
	}
	if actor != "" {
		vals["trashed_by"] = actor
	}
	res := db.Model(new(T)).
		Where("id = ? AND is_trashed = ?", id, false).
		Updates(vals)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// restoreByID clears the ledger columns of a trashed record in one
// UPDATE. Restoring a record that is not trashed is forbidden.
func restoreByID[T any](db *gorm.DB, id string) error {
	res := db.Model(new(T)).
		Where("id = ? AND is_trashed = ?", id, true).
		Updates(map[string]any{
			"is_trashed": false,
			"trashed_by": nil,
			"trashed_at": nil,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrRestorationForbidden
	}
	return nil
}

// hardDeleteByID removes the row permanently.
func hardDeleteByID[T any](db *gorm.DB, id string) error {
	res := db.Delete(new(T), "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// guardTrash runs the per-type delete predicate, when the record has one.
func guardTrash(rec any) error {
	if g, ok := rec.(domain.DeleteGuard); ok {
		return g.CanTrash()
	}
	return nil
}
