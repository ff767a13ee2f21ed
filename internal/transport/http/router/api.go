package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"go-personals-service/internal/core/auth"
	"go-personals-service/internal/core/server"
	"go-personals-service/internal/service"
	mdw "go-personals-service/internal/transport/http/middleware"
)

// NewAPIEngine builds the user-facing engine: auth endpoints are
// public, everything under /persons requires a valid token.
func NewAPIEngine(l *zap.Logger, db *gorm.DB, jwter *auth.JWTer, svc *service.PersonService) *gin.Engine {
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
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api/v1")
	MountAllAPI(api)

	authed := api.Group("")
	authed.Use(mdw.AuthJWT(jwter, ""))

	mountAuthActions(api, authed, db, jwter)
	mountPersonRoutes(authed, db, svc)

	return r
}
