package ez

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"go-personals-service/internal/domain"
	"go-personals-service/internal/repo"
	resp "go-personals-service/internal/transport/http/response"
)

type testEnv struct {
	r       *gin.Engine
	persons *repo.PersonRepo
	sat     *repo.Satellites
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(domain.Models()...))

	r := gin.New()
	// stand-in for AuthJWT
	r.Use(func(c *gin.Context) {
		c.Set("userId", "tester-1")
		c.Set("role", "admin")
	})
	sat := repo.NewSatellites(db)

	api := New(r.Group("/api/v1"))
	Satellites(api, sat.Skills, "skills", nil)

	admin := New(r.Group("/admin/v1"))
	AdminSatellites(admin, sat.Skills, "skills", nil)

	return &testEnv{r: r, persons: repo.NewPersonRepo(db), sat: sat}
}

func (e *testEnv) do(t *testing.T, method, path string, body any) resp.Resp {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	e.r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var out resp.Resp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func seedPerson(t *testing.T, env *testEnv) *domain.Person {
	t.Helper()
	p := &domain.Person{FullName: "Jane Doe"}
	require.NoError(t, env.persons.Create(context.Background(), p))
	return p
}

func TestSatelliteCRUDOverHTTP(t *testing.T) {
	env := newTestEnv(t)
	p := seedPerson(t, env)
	base := "/api/v1/persons/" + p.ID + "/skills"

	out := env.do(t, http.MethodPost, base, gin.H{"name": "Go", "level": 7})
	require.Equal(t, resp.CodeOK, out.Code, out.Msg)
	created := out.Data.(map[string]any)
	id := created["id"].(string)
	require.NotEmpty(t, id)
	assert.Equal(t, p.ID, created["personId"])

	out = env.do(t, http.MethodGet, base, nil)
	require.Equal(t, resp.CodeOK, out.Code)
	assert.EqualValues(t, 1, out.Data.(map[string]any)["total"])

	out = env.do(t, http.MethodGet, base+"/"+id, nil)
	require.Equal(t, resp.CodeOK, out.Code)

	out = env.do(t, http.MethodPut, base+"/"+id, gin.H{"name": "Go", "level": 9, "personId": "someone-else"})
	require.Equal(t, resp.CodeOK, out.Code, "owner in the body is ignored, not an error")

	got, err := env.sat.Skills.FindByID(context.Background(), id, false)
	require.NoError(t, err)
	assert.Equal(t, 9, got.Level)
	assert.Equal(t, p.ID, got.PersonID)
}

func TestSatelliteSoftDeleteOverHTTP(t *testing.T) {
	env := newTestEnv(t)
	p := seedPerson(t, env)
	base := "/api/v1/persons/" + p.ID + "/skills"

	out := env.do(t, http.MethodPost, base, gin.H{"name": "Go", "level": 7})
	id := out.Data.(map[string]any)["id"].(string)

	out = env.do(t, http.MethodDelete, base+"/"+id, nil)
	require.Equal(t, resp.CodeOK, out.Code)

	out = env.do(t, http.MethodGet, base+"/"+id, nil)
	assert.Equal(t, resp.CodeNotFound, out.Code)

	// actor recorded from the request principal
	got, err := env.sat.Skills.FindByID(context.Background(), id, true)
	require.NoError(t, err)
	require.NotNil(t, got.TrashedBy)
	assert.Equal(t, "tester-1", *got.TrashedBy)

	out = env.do(t, http.MethodDelete, base+"/"+id, nil)
	assert.Equal(t, resp.CodeNotFound, out.Code, "already trashed reads as absent")
}

func TestSatelliteForeignRecordReadsAsAbsent(t *testing.T) {
	env := newTestEnv(t)
	p1 := seedPerson(t, env)
	p2 := &domain.Person{FullName: "John Roe"}
	require.NoError(t, env.persons.Create(context.Background(), p2))

	out := env.do(t, http.MethodPost, "/api/v1/persons/"+p1.ID+"/skills", gin.H{"name": "Go", "level": 7})
	id := out.Data.(map[string]any)["id"].(string)

	out = env.do(t, http.MethodGet, "/api/v1/persons/"+p2.ID+"/skills/"+id, nil)
	assert.Equal(t, resp.CodeNotFound, out.Code)
}

func TestAdminTrashConsoleOverHTTP(t *testing.T) {
	env := newTestEnv(t)
	p := seedPerson(t, env)
	base := "/api/v1/persons/" + p.ID + "/skills"
	adminBase := "/admin/v1/persons/" + p.ID + "/skills"

	out := env.do(t, http.MethodPost, base, gin.H{"name": "Go", "level": 7})
	id := out.Data.(map[string]any)["id"].(string)
	env.do(t, http.MethodDelete, base+"/"+id, nil)

	out = env.do(t, http.MethodGet, adminBase, nil)
	assert.EqualValues(t, 0, out.Data.(map[string]any)["total"])

	out = env.do(t, http.MethodGet, adminBase+"?with_trashed=true", nil)
	assert.EqualValues(t, 1, out.Data.(map[string]any)["total"])

	out = env.do(t, http.MethodPost, adminBase+"/"+id+"/restore", nil)
	require.Equal(t, resp.CodeOK, out.Code)

	out = env.do(t, http.MethodPost, adminBase+"/"+id+"/restore", nil)
	assert.Equal(t, resp.CodeConflict, out.Code, "restoring a live record is refused")

	out = env.do(t, http.MethodDelete, adminBase+"/"+id+"/purge", nil)
	require.Equal(t, resp.CodeOK, out.Code)

	out = env.do(t, http.MethodGet, adminBase+"?with_trashed=true", nil)
	assert.EqualValues(t, 0, out.Data.(map[string]any)["total"])
}

func TestValidationErrorOverHTTP(t *testing.T) {
	env := newTestEnv(t)
	p := seedPerson(t, env)

	out := env.do(t, http.MethodPost, "/api/v1/persons/"+p.ID+"/skills", gin.H{"name": "Go", "level": 11})
	assert.Equal(t, resp.CodeBadRequest, out.Code)
}
