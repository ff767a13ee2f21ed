package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"go-personals-service/internal/domain"
	"go-personals-service/internal/repo"
	"go-personals-service/internal/service"
	httpez "go-personals-service/internal/transport/http/ez"
)

// mountPersonRoutes wires the person CRUD plus one CRUD block per
// satellite kind. All routes sit behind AuthJWT.
func mountPersonRoutes(g *gin.RouterGroup, db *gorm.DB, svc *service.PersonService) {
	e := httpez.New(g)
	persons := repo.NewPersonRepo(db)
	sat := repo.NewSatellites(db)

	type listIn struct {
		Q      string `form:"q"`
		Offset int    `form:"offset"`
		Limit  int    `form:"limit"`
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
				Offset: in.Offset, Limit: in.Limit, Query: in.Q,
			})
			if err != nil {
				return listOut{}, err
			}
			return listOut{List: items, Total: total}, nil
		},
	})

	httpez.RegisterAction[domain.Person, *domain.Person](e, db, httpez.Action[domain.Person, *domain.Person]{
		Method: http.MethodPost,
		Path:   "/persons",
		Binder: httpez.BindJSON,
		Handler: func(c *gin.Context, _ *gorm.DB, in *domain.Person) (*domain.Person, error) {
			// identity, trash mark and account binding are server-side
			in.SetRecordID("")
			in.ClearTrash()
			in.AccountID = nil
			if err := svc.Create(c.Request.Context(), in); err != nil {
				return nil, err
			}
			return in, nil
		},
	})

	httpez.RegisterAction[struct{}, *service.Profile](e, db, httpez.Action[struct{}, *service.Profile]{
		Method: http.MethodGet,
		Path:   "/persons/:personId",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, _ *gorm.DB, _ *struct{}) (*service.Profile, error) {
			return svc.GetProfile(c.Request.Context(), c.Param("personId"))
		},
	})

	httpez.RegisterAction[struct{}, gin.H](e, db, httpez.Action[struct{}, gin.H]{
		Method: http.MethodPut,
		Path:   "/persons/:personId",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, _ *gorm.DB, _ *struct{}) (gin.H, error) {
			ctx := c.Request.Context()
			id := c.Param("personId")
			cur, err := persons.FindByID(ctx, id, false)
			if err != nil {
				return nil, err
			}
			bound := cur.AccountID
			if err := c.ShouldBindJSON(cur); err != nil {
				return nil, httpez.BadRequest(err.Error())
			}
			cur.SetRecordID(id)
			cur.AccountID = bound
			cur.ClearTrash()
			if err := svc.Update(ctx, cur); err != nil {
				return nil, err
			}
			return gin.H{"id": id}, nil
		},
	})

	httpez.RegisterAction[struct{}, gin.H](e, db, httpez.Action[struct{}, gin.H]{
		Method: http.MethodDelete,
		Path:   "/persons/:personId",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, _ *gorm.DB, _ *struct{}) (gin.H, error) {
			id := c.Param("personId")
			if err := svc.Trash(c.Request.Context(), id, c.GetString("userId")); err != nil {
				return nil, err
			}
			return gin.H{"id": id}, nil
		},
	})

	type bindIn struct {
		Email    string `json:"email"    binding:"required,email"`
		Password string `json:"password" binding:"required"`
		Name     string `json:"name"     binding:"omitempty,max=64"`
	}
	httpez.RegisterAction[bindIn, gin.H](e, db, httpez.Action[bindIn, gin.H]{
		Method: http.MethodPost,
		Path:   "/persons/:personId/account",
		Binder: httpez.BindJSON,
		Handler: func(c *gin.Context, _ *gorm.DB, in *bindIn) (gin.H, error) {
			acc, err := svc.BindAccount(c.Request.Context(), c.Param("personId"), in.Email, in.Name, in.Password)
			if err != nil {
				return nil, err
			}
			return gin.H{"accountId": acc.ID, "email": acc.Email}, nil
		},
	})

	httpez.Satellites(e, sat.Contacts, "contacts", svc.InvalidateProfile)
	httpez.Satellites(e, sat.SocialMedia, "social-media", svc.InvalidateProfile)
	httpez.Satellites(e, sat.Addresses, "addresses", svc.InvalidateProfile)
	httpez.Satellites(e, sat.Skills, "skills", svc.InvalidateProfile)
	httpez.Satellites(e, sat.Awards, "awards", svc.InvalidateProfile)
	httpez.Satellites(e, sat.FormalEdu, "formal-educations", svc.InvalidateProfile)
	httpez.Satellites(e, sat.NonFormalEdu, "non-formal-educations", svc.InvalidateProfile)
	httpez.Satellites(e, sat.Employments, "work-histories", svc.InvalidateProfile)
	httpez.Satellites(e, sat.Volunteers, "volunteers", svc.InvalidateProfile)
	httpez.Satellites(e, sat.Publications, "publications", svc.InvalidateProfile)
	httpez.Satellites(e, sat.FamilyMembers, "family-members", svc.InvalidateProfile)
}
