package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"go-personals-service/internal/core/auth"
	"go-personals-service/internal/core/server"
	"go-personals-service/internal/domain"
	"go-personals-service/internal/repo"
	"go-personals-service/internal/service"
	httpez "go-personals-service/internal/transport/http/ez"
	mdw "go-personals-service/internal/transport/http/middleware"
)

// NewAdminEngine builds the trash-console engine. Every route under
// /admin/v1 requires the admin role.
func NewAdminEngine(l *zap.Logger, db *gorm.DB, jwter *auth.JWTer, svc *service.PersonService) *gin.Engine {
	r := server.NewRouter(l)

	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(16<<20),
		mdw.Timeout(10*time.Second),
		mdw.Metrics(),
		mdw.AccessLog(l),
	)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })

	admin := r.Group("/admin/v1")
	admin.Use(mdw.AuthJWT(jwter, "admin"))

	MountAllAdmin(admin)
	mountTrashConsole(admin, db, svc)

	return r
}

// mountTrashConsole exposes what the user API hides: trashed rows,
// restoration, and permanent removal.
func mountTrashConsole(g *gin.RouterGroup, db *gorm.DB, svc *service.PersonService) {
	e := httpez.New(g)
	persons := repo.NewPersonRepo(db)
	sat := repo.NewSatellites(db)

	type listIn struct {
		Q           string `form:"q"`
		Offset      int    `form:"offset"`
		Limit       int    `form:"limit"`
		WithTrashed bool   `form:"with_trashed"`
	}
	type listOut struct {
		List  []domain.Person `json:"list"`
		Total int64           `json:"total"`
	}
	httpez.RegisterAction[listIn, listOut](e, db, httpez.Action[listIn, listOut]{
		Method: http.MethodGet,
		Path:   "/persons",
		Binder: httpez.BindQuery,
		Handler: func(c *gin.Context, _ *gorm.DB, in *listIn) (listOut, error) {
			items, total, err := persons.List(c.Request.Context(), repo.ListOptions{
				Offset: in.Offset, Limit: in.Limit, Query: in.Q, IncludeTrashed: in.WithTrashed,
			})
			if err != nil {
				return listOut{}, err
			}
			return listOut{List: items, Total: total}, nil
		},
	})

	httpez.RegisterAction[struct{}, *domain.Person](e, db, httpez.Action[struct{}, *domain.Person]{
		Method: http.MethodGet,
		Path:   "/persons/:personId",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, _ *gorm.DB, _ *struct{}) (*domain.Person, error) {
			return persons.FindByID(c.Request.Context(), c.Param("personId"), true)
		},
	})

	httpez.RegisterAction[struct{}, gin.H](e, db, httpez.Action[struct{}, gin.H]{
		Method: http.MethodPost,
		Path:   "/persons/:personId/restore",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, _ *gorm.DB, _ *struct{}) (gin.H, error) {
			id := c.Param("personId")
			if err := svc.Restore(c.Request.Context(), id); err != nil {
				return nil, err
			}
			return gin.H{"id": id}, nil
		},
	})

	httpez.RegisterAction[struct{}, gin.H](e, db, httpez.Action[struct{}, gin.H]{
		Method: http.MethodDelete,
		Path:   "/persons/:personId/purge",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, _ *gorm.DB, _ *struct{}) (gin.H, error) {
			id := c.Param("personId")
			if err := svc.Purge(c.Request.Context(), id); err != nil {
				return nil, err
			}
			return gin.H{"id": id}, nil
		},
	})

	httpez.AdminSatellites(e, sat.Contacts, "contacts", svc.InvalidateProfile)
	httpez.AdminSatellites(e, sat.SocialMedia, "social-media", svc.InvalidateProfile)
	httpez.AdminSatellites(e, sat.Addresses, "addresses", svc.InvalidateProfile)
	httpez.AdminSatellites(e, sat.Skills, "skills", svc.InvalidateProfile)
	httpez.AdminSatellites(e, sat.Awards, "awards", svc.InvalidateProfile)
	httpez.AdminSatellites(e, sat.FormalEdu, "formal-educations", svc.InvalidateProfile)
	httpez.AdminSatellites(e, sat.NonFormalEdu, "non-formal-educations", svc.InvalidateProfile)
	httpez.AdminSatellites(e, sat.Employments, "work-histories", svc.InvalidateProfile)
	httpez.AdminSatellites(e, sat.Volunteers, "volunteers", svc.InvalidateProfile)
	httpez.AdminSatellites(e, sat.Publications, "publications", svc.InvalidateProfile)
	httpez.AdminSatellites(e, sat.FamilyMembers, "family-members", svc.InvalidateProfile)
}
