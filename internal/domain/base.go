package domain

import (
	"time"

	"github.com/google/uuid"
)

// Record is embedded by every persisted entity.
type Record struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (r Record) RecordID() string { return r.ID }

func (r *Record) SetRecordID(id string) { r.ID = id }

// EnsureID assigns a fresh UUID when the record has none yet.
func (r *Record) EnsureID() {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
}

// TrashMark carries the soft-delete bookkeeping. The three fields are
// set and cleared together; no half-applied state is ever persisted.
type TrashMark struct {
	IsTrashed bool       `gorm:"not null;default:false;index" json:"isTrashed"`
	TrashedBy *string    `gorm:"size:36" json:"trashedBy,omitempty"`
	TrashedAt *time.Time `json:"trashedAt,omitempty"`
}

func (m *TrashMark) Trashed() bool { return m.IsTrashed }

// MarkTrashed flips the record into the trash. An empty actor stands
// for an anonymous principal and leaves TrashedBy NULL.
func (m *TrashMark) MarkTrashed(actor string, at time.Time) {
	m.IsTrashed = true
	m.TrashedAt = &at
	m.TrashedBy = nil
	if actor != "" {
		m.TrashedBy = &actor
	}
}

func (m *TrashMark) ClearTrash() {
	m.IsTrashed = false
	m.TrashedBy = nil
	m.TrashedAt = nil
}

// Owned is the owning reference a satellite holds back to its person.
// A satellite cannot be reparented: the column never changes after create.
type Owned struct {
	PersonID string `gorm:"size:36;not null;index" json:"personId"`
}

func (o Owned) PersonRef() string { return o.PersonID }

// SetPersonRef binds a new satellite to its owner. Stores refuse to
// change it afterwards.
func (o *Owned) SetPersonRef(id string) { o.PersonID = id }

// Trashable is satisfied by every record embedding TrashMark.
type Trashable interface {
	Trashed() bool
	MarkTrashed(actor string, at time.Time)
	ClearTrash()
}

// Satellite is a dependent record owned by exactly one person.
type Satellite interface {
	Trashable
	EnsureID()
	RecordID() string
	SetRecordID(id string)
	PersonRef() string
	SetPersonRef(id string)
	Validate() error
}

// DeleteGuard lets a record veto its own soft deletion. Records that
// do not implement it can always be trashed.
type DeleteGuard interface {
	CanTrash() error
}

// Models lists every persisted type for migration, in FK order.
func Models() []any {
	return []any{
		&Account{},
		&Person{},
		&PersonContact{},
		&SocialMedia{},
		&PersonAddress{},
		&Skill{},
		&Award{},
		&FormalEducation{},
		&NonFormalEducation{},
		&Employment{},
		&Volunteer{},
		&Publication{},
		&FamilyMember{},
	}
}

// SatelliteModels lists the record types cascaded by a person purge.
func SatelliteModels() []any {
	return []any{
		&PersonContact{},
		&SocialMedia{},
		&PersonAddress{},
		&Skill{},
		&Award{},
		&FormalEducation{},
		&NonFormalEducation{},
		&Employment{},
		&Volunteer{},
		&Publication{},
		&FamilyMember{},
	}
}
