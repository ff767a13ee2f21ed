package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"go-personals-service/internal/domain"
	"go-personals-service/internal/repo"
)

func newTestService(t *testing.T) (*PersonService, *repo.PersonRepo, *repo.Satellites) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(domain.Models()...))

	persons := repo.NewPersonRepo(db)
	accounts := repo.NewAccountRepo(db)
	sat := repo.NewSatellites(db)
	svc := NewPersonService(persons, accounts, sat, nil, 0, zap.NewNop())
	return svc, persons, sat
}

func TestGetProfileAggregates(t *testing.T) {
	ctx := context.Background()
	svc, _, sat := newTestService(t)

	p := &domain.Person{FullName: "Jane Doe", FrontTitle: "Dr"}
	require.NoError(t, svc.Create(ctx, p))

	require.NoError(t, sat.Contacts.Create(ctx, &domain.PersonContact{
		Owned: domain.Owned{PersonID: p.ID}, Email: "jane@example.com",
	}))
	require.NoError(t, sat.Addresses.Create(ctx, &domain.PersonAddress{
		Owned: domain.Owned{PersonID: p.ID}, Street: "1 Main St", City: "Springfield",
	}))
	require.NoError(t, sat.Skills.Create(ctx, &domain.Skill{
		Owned: domain.Owned{PersonID: p.ID}, Name: "Go", Level: 7,
	}))

	// trashed rows never reach the profile
	hidden := &domain.Skill{Owned: domain.Owned{PersonID: p.ID}, Name: "COBOL", Level: 2}
	require.NoError(t, sat.Skills.Create(ctx, hidden))
	require.NoError(t, sat.Skills.Trash(ctx, hidden.ID, ""))

	prof, err := svc.GetProfile(ctx, p.ID)
	require.NoError(t, err)

	assert.Equal(t, "Dr. Jane Doe", prof.DisplayName)
	require.NotNil(t, prof.Contact)
	assert.Equal(t, "jane@example.com", prof.Contact.Email)
	require.Len(t, prof.Addresses, 1)
	assert.Equal(t, "1 Main St, Springfield", prof.Addresses[0].FullAddress())
	require.Len(t, prof.Skills, 1)
	assert.Equal(t, 70, prof.Skills[0].LevelPercent())
	assert.Nil(t, prof.SocialMedia)
	assert.Empty(t, prof.Awards)
}

func TestGetProfileTrashedPerson(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t)

	p := &domain.Person{FullName: "Jane Doe"}
	require.NoError(t, svc.Create(ctx, p))
	require.NoError(t, svc.Trash(ctx, p.ID, "admin-1"))

	_, err := svc.GetProfile(ctx, p.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBindAccount(t *testing.T) {
	ctx := context.Background()
	svc, persons, _ := newTestService(t)

	p := &domain.Person{FullName: "Jane Doe"}
	require.NoError(t, svc.Create(ctx, p))

	acc, err := svc.BindAccount(ctx, p.ID, "Jane@Example.com", "", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", acc.Email)
	assert.Equal(t, "jane", acc.Name, "name falls back to the mailbox part")

	got, err := persons.FindByID(ctx, p.ID, false)
	require.NoError(t, err)
	require.NotNil(t, got.AccountID)
	assert.Equal(t, acc.ID, *got.AccountID)

	// a bound person cannot be bound again
	_, err = svc.BindAccount(ctx, p.ID, "other@example.com", "", "pw")
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
}

func TestBindAccountReusesExisting(t *testing.T) {
	ctx := context.Background()
	svc, persons, _ := newTestService(t)

	p1 := &domain.Person{FullName: "Jane Doe"}
	require.NoError(t, svc.Create(ctx, p1))
	first, err := svc.BindAccount(ctx, p1.ID, "jane@example.com", "Jane", "s3cret")
	require.NoError(t, err)

	// release and rebind: same email must resolve to the same account
	got, err := persons.FindByID(ctx, p1.ID, false)
	require.NoError(t, err)
	got.AccountID = nil
	require.NoError(t, persons.Update(ctx, got))

	second, err := svc.BindAccount(ctx, p1.ID, "jane@example.com", "", "ignored")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
}

func TestTrashGuardThroughService(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t)

	p := &domain.Person{FullName: "Jane Doe"}
	require.NoError(t, svc.Create(ctx, p))
	_, err := svc.BindAccount(ctx, p.ID, "jane@example.com", "", "pw")
	require.NoError(t, err)

	err = svc.Trash(ctx, p.ID, "admin-1")
	require.Error(t, err)
	assert.True(t, domain.IsDeletionForbidden(err))
}

func TestPurgeRemovesEverything(t *testing.T) {
	ctx := context.Background()
	svc, persons, sat := newTestService(t)

	p := &domain.Person{FullName: "Jane Doe"}
	require.NoError(t, svc.Create(ctx, p))
	require.NoError(t, sat.Skills.Create(ctx, &domain.Skill{
		Owned: domain.Owned{PersonID: p.ID}, Name: "Go", Level: 7,
	}))

	require.NoError(t, svc.Purge(ctx, p.ID))

	_, err := persons.FindByID(ctx, p.ID, true)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	rows, err := sat.Skills.ListByPerson(ctx, p.ID, true)
	require.NoError(t, err)
	assert.Empty(t, rows)
}
