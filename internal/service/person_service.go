package service

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"go-personals-service/internal/core/cache"
	"go-personals-service/internal/domain"
	"go-personals-service/internal/repo"
	"go-personals-service/pkg/utils"
)

// Profile is the aggregated read model: the person plus its live
// satellites. Privacy tags are exposed as-is; filtering by audience
// is the consumer's concern.
type Profile struct {
	Person        domain.Person               `json:"person"`
	DisplayName   string                      `json:"displayName"`
	Contact       *domain.PersonContact       `json:"contact,omitempty"`
	SocialMedia   *domain.SocialMedia         `json:"socialMedia,omitempty"`
	Addresses     []domain.PersonAddress      `json:"addresses"`
	Skills        []domain.Skill              `json:"skills"`
	Awards        []domain.Award              `json:"awards"`
	FormalEdu     []domain.FormalEducation    `json:"formalEducations"`
	NonFormalEdu  []domain.NonFormalEducation `json:"nonFormalEducations"`
	WorkHistories []domain.Employment         `json:"workHistories"`
	Volunteers    []domain.Volunteer          `json:"volunteers"`
	Publications  []domain.Publication        `json:"publications"`
	FamilyMembers []domain.FamilyMember       `json:"familyMembers"`
}

type PersonService struct {
	persons  *repo.PersonRepo
	accounts *repo.AccountRepo
	sat      *repo.Satellites
	cache    *cache.Cache // nil disables caching
	ttl      time.Duration
	log      *zap.Logger
}

func NewPersonService(persons *repo.PersonRepo, accounts *repo.AccountRepo, sat *repo.Satellites, c *cache.Cache, ttl time.Duration, l *zap.Logger) *PersonService {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if l == nil {
		l = zap.NewNop()
	}
	return &PersonService{persons: persons, accounts: accounts, sat: sat, cache: c, ttl: ttl, log: l}
}

func profileKey(id string) string { return "personals:profile:" + id }

// GetProfile reads through the cache; concurrent misses for one id
// collapse into a single DB load.
func (s *PersonService) GetProfile(ctx context.Context, id string) (*Profile, error) {
	if s.cache == nil {
		return s.loadProfile(ctx, id)
	}
	return cache.GetOrLoadJSON[Profile](s.cache, ctx, profileKey(id), s.ttl,
		func(ctx context.Context) (*Profile, error) {
			return s.loadProfile(ctx, id)
		})
}

func (s *PersonService) loadProfile(ctx context.Context, id string) (*Profile, error) {
	p, err := s.persons.FindByID(ctx, id, false)
	if err != nil {
		return nil, err
	}
	out := &Profile{Person: *p, DisplayName: p.FullNameWithTitle()}

	if contacts, err := s.sat.Contacts.ListByPerson(ctx, id, false); err != nil {
		return nil, err
	} else if len(contacts) > 0 {
		out.Contact = &contacts[0]
	}
	if socials, err := s.sat.SocialMedia.ListByPerson(ctx, id, false); err != nil {
		return nil, err
	} else if len(socials) > 0 {
		out.SocialMedia = &socials[0]
	}
	if out.Addresses, err = s.sat.Addresses.ListByPerson(ctx, id, false); err != nil {
		return nil, err
	}
	if out.Skills, err = s.sat.Skills.ListByPerson(ctx, id, false); err != nil {
		return nil, err
	}
	if out.Awards, err = s.sat.Awards.ListByPerson(ctx, id, false); err != nil {
		return nil, err
	}
	if out.FormalEdu, err = s.sat.FormalEdu.ListByPerson(ctx, id, false); err != nil {
		return nil, err
	}
	if out.NonFormalEdu, err = s.sat.NonFormalEdu.ListByPerson(ctx, id, false); err != nil {
		return nil, err
	}
	if out.WorkHistories, err = s.sat.Employments.ListByPerson(ctx, id, false); err != nil {
		return nil, err
	}
	if out.Volunteers, err = s.sat.Volunteers.ListByPerson(ctx, id, false); err != nil {
		return nil, err
	}
	if out.Publications, err = s.sat.Publications.ListByPerson(ctx, id, false); err != nil {
		return nil, err
	}
	if out.FamilyMembers, err = s.sat.FamilyMembers.ListByPerson(ctx, id, false); err != nil {
		return nil, err
	}
	return out, nil
}

// InvalidateProfile drops the cached profile; satellite writes outside
// this service call it to keep reads fresh.
func (s *PersonService) InvalidateProfile(ctx context.Context, personID string) {
	s.invalidate(ctx, personID)
}

func (s *PersonService) invalidate(ctx context.Context, id string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.RDB.Del(ctx, profileKey(id)).Err(); err != nil {
		s.log.Warn("profile cache invalidate failed", zap.String("person", id), zap.Error(err))
	}
}

func (s *PersonService) Create(ctx context.Context, p *domain.Person) error {
	return s.persons.Create(ctx, p)
}

func (s *PersonService) Update(ctx context.Context, p *domain.Person) error {
	if err := s.persons.Update(ctx, p); err != nil {
		return err
	}
	s.invalidate(ctx, p.ID)
	return nil
}

// Trash soft-deletes the person on behalf of actor. Satellites are
// left untouched.
func (s *PersonService) Trash(ctx context.Context, id, actor string) error {
	if err := s.persons.Trash(ctx, id, actor); err != nil {
		return err
	}
	s.invalidate(ctx, id)
	s.log.Info("person trashed", zap.String("person", id), zap.String("actor", actor))
	return nil
}

func (s *PersonService) Restore(ctx context.Context, id string) error {
	if err := s.persons.Restore(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, id)
	s.log.Info("person restored", zap.String("person", id))
	return nil
}

// Purge permanently removes the person and cascades to every
// satellite. Irreversible.
func (s *PersonService) Purge(ctx context.Context, id string) error {
	if err := s.persons.Purge(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, id)
	s.log.Info("person purged", zap.String("person", id))
	return nil
}

// BindAccount attaches a login account to the person, reusing an
// account with the same email or registering a fresh one.
func (s *PersonService) BindAccount(ctx context.Context, personID, email, name, password string) (*domain.Account, error) {
	p, err := s.persons.FindByID(ctx, personID, false)
	if err != nil {
		return nil, err
	}
	if p.HasAccount() {
		return nil, &domain.ValidationError{Field: "account", Reason: "person is already bound to an account"}
	}

	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" {
		return nil, &domain.ValidationError{Field: "email", Reason: "must not be empty"}
	}

	acc, err := s.accounts.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if acc == nil {
		if name == "" {
			if at := strings.IndexByte(email, '@'); at > 0 {
				name = email[:at]
			} else {
				name = "user"
			}
		}
		acc = &domain.Account{
			ID:           utils.NewID(),
			Email:        email,
			Name:         name,
			PasswordHash: utils.HashPassword(password),
			Role:         "user",
		}
		if err := s.accounts.Create(ctx, acc); err != nil {
			return nil, err
		}
		s.log.Info("account registered", zap.String("account", acc.ID))
	}

	p.AccountID = &acc.ID
	if err := s.persons.Update(ctx, p); err != nil {
		return nil, err
	}
	s.invalidate(ctx, personID)
	return acc, nil
}
