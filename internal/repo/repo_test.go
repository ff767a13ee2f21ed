package repo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"go-personals-service/internal/domain"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// one connection, or every pooled conn gets its own :memory: db
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(domain.Models()...))
	return db
}

func seedPerson(t *testing.T, persons *PersonRepo, name string) *domain.Person {
	t.Helper()
	p := &domain.Person{FullName: name}
	require.NoError(t, persons.Create(context.Background(), p))
	return p
}

func TestPersonCreateDefaults(t *testing.T) {
	persons := NewPersonRepo(newTestDB(t))
	p := seedPerson(t, persons, "Jane Doe")

	assert.NotEmpty(t, p.ID)
	assert.Equal(t, domain.GenderMale, p.Gender)
	assert.False(t, p.Trashed())
	assert.False(t, p.CreatedAt.IsZero())
}

func TestPersonSoftDeleteScoping(t *testing.T) {
	ctx := context.Background()
	persons := NewPersonRepo(newTestDB(t))
	p := seedPerson(t, persons, "Jane Doe")

	require.NoError(t, persons.Trash(ctx, p.ID, "admin-1"))

	_, err := persons.FindByID(ctx, p.ID, false)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	got, err := persons.FindByID(ctx, p.ID, true)
	require.NoError(t, err)
	assert.True(t, got.Trashed())
	require.NotNil(t, got.TrashedBy)
	assert.Equal(t, "admin-1", *got.TrashedBy)
	assert.NotNil(t, got.TrashedAt)

	list, total, err := persons.List(ctx, ListOptions{})
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, list)

	list, total, err = persons.List(ctx, ListOptions{IncludeTrashed: true})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Len(t, list, 1)
}

func TestPersonTrashTwice(t *testing.T) {
	ctx := context.Background()
	persons := NewPersonRepo(newTestDB(t))
	p := seedPerson(t, persons, "Jane Doe")

	require.NoError(t, persons.Trash(ctx, p.ID, ""))
	assert.ErrorIs(t, persons.Trash(ctx, p.ID, ""), domain.ErrNotFound)
}

func TestPersonTrashAnonymousActor(t *testing.T) {
	ctx := context.Background()
	persons := NewPersonRepo(newTestDB(t))
	p := seedPerson(t, persons, "Jane Doe")

	require.NoError(t, persons.Trash(ctx, p.ID, ""))
	got, err := persons.FindByID(ctx, p.ID, true)
	require.NoError(t, err)
	assert.Nil(t, got.TrashedBy)
	assert.NotNil(t, got.TrashedAt)
}

func TestPersonRestore(t *testing.T) {
	ctx := context.Background()
	persons := NewPersonRepo(newTestDB(t))
	p := seedPerson(t, persons, "Jane Doe")

	require.NoError(t, persons.Trash(ctx, p.ID, "admin-1"))
	require.NoError(t, persons.Restore(ctx, p.ID))

	got, err := persons.FindByID(ctx, p.ID, false)
	require.NoError(t, err)
	assert.False(t, got.Trashed())
	assert.Nil(t, got.TrashedBy)
	assert.Nil(t, got.TrashedAt)
}

func TestPersonRestoreLive(t *testing.T) {
	ctx := context.Background()
	persons := NewPersonRepo(newTestDB(t))
	p := seedPerson(t, persons, "Jane Doe")

	assert.ErrorIs(t, persons.Restore(ctx, p.ID), domain.ErrRestorationForbidden)
}

func TestPersonTrashGuard(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	persons := NewPersonRepo(db)
	accounts := NewAccountRepo(db)

	acc := &domain.Account{ID: "acc-1", Email: "jane@example.com", Name: "Jane"}
	require.NoError(t, accounts.Create(ctx, acc))

	p := seedPerson(t, persons, "Jane Doe")
	p.AccountID = &acc.ID
	require.NoError(t, persons.Update(ctx, p))

	err := persons.Trash(ctx, p.ID, "admin-1")
	require.Error(t, err)
	assert.True(t, domain.IsDeletionForbidden(err))

	// still live
	_, err = persons.FindByID(ctx, p.ID, false)
	assert.NoError(t, err)
}

func TestPersonPurgeCascades(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	persons := NewPersonRepo(db)
	sat := NewSatellites(db)

	p := seedPerson(t, persons, "Jane Doe")
	other := seedPerson(t, persons, "John Roe")

	for _, name := range []string{"Go", "SQL"} {
		s := &domain.Skill{Owned: domain.Owned{PersonID: p.ID}, Name: name, Level: 7}
		require.NoError(t, sat.Skills.Create(ctx, s))
	}
	a := &domain.PersonAddress{Owned: domain.Owned{PersonID: p.ID}, Street: "1 Main St"}
	require.NoError(t, sat.Addresses.Create(ctx, a))
	keep := &domain.Skill{Owned: domain.Owned{PersonID: other.ID}, Name: "Rust", Level: 3}
	require.NoError(t, sat.Skills.Create(ctx, keep))

	require.NoError(t, persons.Purge(ctx, p.ID))

	_, err := persons.FindByID(ctx, p.ID, true)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	gone, err := sat.Skills.ListByPerson(ctx, p.ID, true)
	require.NoError(t, err)
	assert.Empty(t, gone)

	_, err = sat.Addresses.FindByID(ctx, a.ID, true)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// other people's rows survive
	left, err := sat.Skills.ListByPerson(ctx, other.ID, true)
	require.NoError(t, err)
	assert.Len(t, left, 1)

	assert.ErrorIs(t, persons.Purge(ctx, "no-such-id"), domain.ErrNotFound)
}

func TestPersonListQuery(t *testing.T) {
	ctx := context.Background()
	persons := NewPersonRepo(newTestDB(t))
	seedPerson(t, persons, "Jane Doe")
	seedPerson(t, persons, "John Roe")

	list, total, err := persons.List(ctx, ListOptions{Query: "Jane"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, list, 1)
	assert.Equal(t, "Jane Doe", list[0].FullName)
}

func TestSatelliteCreateRequiresOwner(t *testing.T) {
	sat := NewSatellites(newTestDB(t))
	err := sat.Skills.Create(context.Background(), &domain.Skill{Name: "Go", Level: 5})
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
}

func TestSatelliteTrashRestore(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	persons := NewPersonRepo(db)
	sat := NewSatellites(db)
	p := seedPerson(t, persons, "Jane Doe")

	s := &domain.Skill{Owned: domain.Owned{PersonID: p.ID}, Name: "Go", Level: 7}
	require.NoError(t, sat.Skills.Create(ctx, s))

	require.NoError(t, sat.Skills.Trash(ctx, s.ID, "admin-1"))

	_, err := sat.Skills.FindByID(ctx, s.ID, false)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	live, err := sat.Skills.ListByPerson(ctx, p.ID, false)
	require.NoError(t, err)
	assert.Empty(t, live)

	all, err := sat.Skills.ListByPerson(ctx, p.ID, true)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	assert.ErrorIs(t, sat.Skills.Restore(ctx, "no-such-id"), domain.ErrNotFound)
	require.NoError(t, sat.Skills.Restore(ctx, s.ID))
	assert.ErrorIs(t, sat.Skills.Restore(ctx, s.ID), domain.ErrRestorationForbidden)

	got, err := sat.Skills.FindByID(ctx, s.ID, false)
	require.NoError(t, err)
	assert.False(t, got.Trashed())
}

func TestSatelliteUpdateRejectsReparent(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	persons := NewPersonRepo(db)
	sat := NewSatellites(db)
	p1 := seedPerson(t, persons, "Jane Doe")
	p2 := seedPerson(t, persons, "John Roe")

	s := &domain.Skill{Owned: domain.Owned{PersonID: p1.ID}, Name: "Go", Level: 7}
	require.NoError(t, sat.Skills.Create(ctx, s))

	s.PersonID = p2.ID
	err := sat.Skills.Update(ctx, s)
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
}

func TestSatelliteUpdateTrashedHidden(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	persons := NewPersonRepo(db)
	sat := NewSatellites(db)
	p := seedPerson(t, persons, "Jane Doe")

	s := &domain.Skill{Owned: domain.Owned{PersonID: p.ID}, Name: "Go", Level: 7}
	require.NoError(t, sat.Skills.Create(ctx, s))
	require.NoError(t, sat.Skills.Trash(ctx, s.ID, ""))

	s.Level = 9
	assert.ErrorIs(t, sat.Skills.Update(ctx, s), domain.ErrNotFound)

	assert.ErrorIs(t, sat.Skills.Trash(ctx, s.ID, ""), domain.ErrNotFound)
}

func TestSatelliteHardDelete(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	persons := NewPersonRepo(db)
	sat := NewSatellites(db)
	p := seedPerson(t, persons, "Jane Doe")

	s := &domain.Skill{Owned: domain.Owned{PersonID: p.ID}, Name: "Go", Level: 7}
	require.NoError(t, sat.Skills.Create(ctx, s))
	require.NoError(t, sat.Skills.Trash(ctx, s.ID, ""))

	require.NoError(t, sat.Skills.HardDelete(ctx, s.ID))
	_, err := sat.Skills.FindByID(ctx, s.ID, true)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
