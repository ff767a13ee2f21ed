package router

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"go-personals-service/internal/core/auth"
	"go-personals-service/internal/domain"
	"go-personals-service/internal/repo"
	httpez "go-personals-service/internal/transport/http/ez"
	"go-personals-service/pkg/utils"
)

// mountAuthActions wires /auth/login (public, registers on first
// login) and /me (authenticated).
func mountAuthActions(api, authed *gin.RouterGroup, db *gorm.DB, jwter *auth.JWTer) {
	accounts := repo.NewAccountRepo(db)
	persons := repo.NewPersonRepo(db)

	ezPublic := httpez.New(api)

	type loginIn struct {
		Email    string `json:"email"    binding:"required,email"`
		Password string `json:"password" binding:"required"`
		Name     string `json:"name"     binding:"omitempty,max=64"` // used on first login only
	}
	type loginOut struct {
		Token   string `json:"token"`
		IsNew   bool   `json:"isNew"`
		Account any    `json:"account"`
	}
	httpez.RegisterAction[loginIn, loginOut](ezPublic, db, httpez.Action[loginIn, loginOut]{
		Method: http.MethodPost,
		Path:   "/auth/login",
		Binder: httpez.BindJSON,
		Handler: func(c *gin.Context, tx *gorm.DB, in *loginIn) (loginOut, error) {
			ctx := c.Request.Context()
			email := strings.TrimSpace(strings.ToLower(in.Email))
			name := strings.TrimSpace(in.Name)

			acc, err := accounts.FindByEmail(ctx, email)
			if err != nil {
				return loginOut{}, httpez.Internal("db error", err)
			}

			isNew := false
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
					PasswordHash: utils.HashPassword(in.Password),
					Role:         "user",
				}
				if e := accounts.Create(ctx, acc); e != nil {
					// concurrent first login: unique clash, re-read the winner
					if isDupKey(e) {
						if acc, e = accounts.FindByEmail(ctx, email); e != nil || acc == nil {
							return loginOut{}, httpez.Internal("login failed", e)
						}
					} else {
						return loginOut{}, httpez.BadRequest(e.Error())
					}
				} else {
					isNew = true
				}
			}

			if !isNew && !utils.CheckPassword(in.Password, acc.PasswordHash) {
				return loginOut{}, httpez.Unauthorized("invalid credentials")
			}
			tok, e := jwter.Issue(acc.ID, acc.Role)
			if e != nil || tok == "" {
				return loginOut{}, httpez.Internal("issue token failed", e)
			}
			return loginOut{
				Token: tok, IsNew: isNew,
				Account: gin.H{"id": acc.ID, "email": acc.Email, "name": acc.Name, "role": acc.Role},
			}, nil
		},
	})

	ezAuth := httpez.New(authed)

	type meOut struct {
		ID       string `json:"id"`
		Email    string `json:"email"`
		Name     string `json:"name"`
		Role     string `json:"role"`
		PersonID string `json:"personId,omitempty"`
	}
	httpez.RegisterAction[struct{}, meOut](ezAuth, db, httpez.Action[struct{}, meOut]{
		Method: http.MethodGet,
		Path:   "/me",
		Binder: httpez.BindNone,
		Auth:   true,
		Handler: func(c *gin.Context, tx *gorm.DB, _ *struct{}) (meOut, error) {
			ctx := c.Request.Context()
			acc, err := accounts.FindByID(ctx, c.GetString("userId"))
			if err != nil {
				return meOut{}, httpez.Internal("db error", err)
			}
			if acc == nil {
				return meOut{}, httpez.NotFound("account not found")
			}
			out := meOut{ID: acc.ID, Email: acc.Email, Name: acc.Name, Role: acc.Role}
			if p, err := persons.FindByAccount(ctx, acc.ID); err == nil {
				out.PersonID = p.ID
			}
			return out, nil
		},
	})
}

func isDupKey(err error) bool {
	// driver-agnostic check, gorm.ErrDuplicatedKey is not reliable
	// across dialectors
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "unique violation") ||
		strings.Contains(msg, "duplicate key")
}
