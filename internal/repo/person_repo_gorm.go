package repo

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"go-personals-service/internal/domain"
)

type PersonRepo struct {
	db *gorm.DB
}

func NewPersonRepo(db *gorm.DB) *PersonRepo { return &PersonRepo{db: db} }

type ListOptions struct {
	Offset         int
	Limit          int
	Query          string // fullname/nickname substring
	IncludeTrashed bool
}

func (r *PersonRepo) Create(ctx context.Context, p *domain.Person) error {
	p.EnsureID()
	if p.Gender == "" {
		p.Gender = domain.GenderMale
	}
	if err := p.Validate(); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PersonRepo) FindByID(ctx context.Context, id string, includeTrashed bool) (*domain.Person, error) {
	var p domain.Person
	err := visible(r.db.WithContext(ctx), includeTrashed).First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PersonRepo) FindByAccount(ctx context.Context, accountID string) (*domain.Person, error) {
	var p domain.Person
	err := visible(r.db.WithContext(ctx), false).First(&p, "account_id = ?", accountID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PersonRepo) List(ctx context.Context, opts ListOptions) ([]domain.Person, int64, error) {
	if opts.Limit <= 0 || opts.Limit > 100 {
		opts.Limit = 20
	}
	q := visible(r.db.WithContext(ctx).Model(&domain.Person{}), opts.IncludeTrashed)
	if s := strings.TrimSpace(opts.Query); s != "" {
		like := "%" + s + "%"
		q = q.Where("full_name LIKE ? OR nick_name LIKE ?", like, like)
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var persons []domain.Person
	if err := q.Order("created_at DESC").Limit(opts.Limit).Offset(opts.Offset).Find(&persons).Error; err != nil {
		return nil, 0, err
	}
	return persons, total, nil
}

func (r *PersonRepo) Update(ctx context.Context, p *domain.Person) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if _, err := r.FindByID(ctx, p.ID, false); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Save(p).Error
}

// Trash soft-deletes the person. Satellites are not cascaded; they
// stay visible unless separately trashed.
func (r *PersonRepo) Trash(ctx context.Context, id, actor string) error {
	p, err := r.FindByID(ctx, id, false)
	if err != nil {
		return err
	}
	if err := p.CanTrash(); err != nil {
		return err
	}
	return trashByID[domain.Person](r.db.WithContext(ctx), id, actor)
}

func (r *PersonRepo) Restore(ctx context.Context, id string) error {
	p, err := r.FindByID(ctx, id, true)
	if err != nil {
		return err
	}
	if !p.Trashed() {
		return domain.ErrRestorationForbidden
	}
	return restoreByID[domain.Person](r.db.WithContext(ctx), id)
}

// Purge removes the person permanently together with every satellite
// that references it, inside one transaction. Either all rows go or
// none do.
func (r *PersonRepo) Purge(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, m := range domain.SatelliteModels() {
			if err := tx.Where("person_id = ?", id).Delete(m).Error; err != nil {
				return err
			}
		}
		res := tx.Delete(&domain.Person{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrNotFound
		}
		return nil
	})
}
