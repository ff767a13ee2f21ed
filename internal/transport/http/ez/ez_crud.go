package ez

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"go-personals-service/internal/domain"
	"go-personals-service/internal/repo"
	resp "go-personals-service/internal/transport/http/response"
)

// Satellites mounts the CRUD surface for one satellite kind under
// /persons/:personId/<path>. Delete is always a soft delete; the
// acting principal is taken from the JWT context. onChange, when set,
// runs after every successful write with the owning person id.
func Satellites[T any, PT repo.SatellitePtr[T]](e EZ, store *repo.SatelliteStore[T, PT], path string, onChange func(ctx context.Context, personID string)) {
	changed := func(c *gin.Context) {
		if onChange != nil {
			onChange(c.Request.Context(), c.Param("personId"))
		}
	}
	base := "/persons/:personId/" + path
	item := base + "/:id"

	e.g.POST(base, func(c *gin.Context) {
		rec := PT(new(T))
		if err := c.ShouldBindJSON(rec); err != nil {
			c.JSON(http.StatusOK, resp.Error(resp.CodeBadRequest, err.Error()))
			return
		}
		rec.SetPersonRef(c.Param("personId"))
		rec.SetRecordID("")
		rec.ClearTrash()
		if err := store.Create(c.Request.Context(), rec); err != nil {
			fail(c, err)
			return
		}
		changed(c)
		c.JSON(http.StatusOK, resp.OK(rec))
	})

	e.g.GET(base, func(c *gin.Context) {
		items, err := store.ListByPerson(c.Request.Context(), c.Param("personId"), false)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, resp.OK(gin.H{"list": items, "total": len(items)}))
	})

	e.g.GET(item, func(c *gin.Context) {
		rec, err := findOwned(c, store)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, resp.OK(rec))
	})

	e.g.PUT(item, func(c *gin.Context) {
		current, err := findOwned(c, store)
		if err != nil {
			fail(c, err)
			return
		}
		pid, rid := current.PersonRef(), current.RecordID()
		if err := c.ShouldBindJSON(current); err != nil {
			c.JSON(http.StatusOK, resp.Error(resp.CodeBadRequest, err.Error()))
			return
		}
		// identity, ownership and the trash mark are not client-writable
		current.SetPersonRef(pid)
		current.SetRecordID(rid)
		current.ClearTrash()
		if err := store.Update(c.Request.Context(), current); err != nil {
			fail(c, err)
			return
		}
		changed(c)
		c.JSON(http.StatusOK, resp.OK(gin.H{"id": current.RecordID()}))
	})

	e.g.DELETE(item, func(c *gin.Context) {
		if _, err := findOwned(c, store); err != nil {
			fail(c, err)
			return
		}
		if err := store.Trash(c.Request.Context(), c.Param("id"), c.GetString("userId")); err != nil {
			fail(c, err)
			return
		}
		changed(c)
		c.JSON(http.StatusOK, resp.OK(gin.H{"id": c.Param("id")}))
	})
}

// AdminSatellites mounts the trash console for one satellite kind:
// unscoped listing, restore, and permanent removal.
func AdminSatellites[T any, PT repo.SatellitePtr[T]](e EZ, store *repo.SatelliteStore[T, PT], path string, onChange func(ctx context.Context, personID string)) {
	changed := func(c *gin.Context) {
		if onChange != nil {
			onChange(c.Request.Context(), c.Param("personId"))
		}
	}
	base := "/persons/:personId/" + path
	item := base + "/:id"

	e.g.GET(base, func(c *gin.Context) {
		withTrashed := c.Query("with_trashed") == "true"
		items, err := store.ListByPerson(c.Request.Context(), c.Param("personId"), withTrashed)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, resp.OK(gin.H{"list": items, "total": len(items)}))
	})

	e.g.POST(item+"/restore", func(c *gin.Context) {
		if err := store.Restore(c.Request.Context(), c.Param("id")); err != nil {
			fail(c, err)
			return
		}
		changed(c)
		c.JSON(http.StatusOK, resp.OK(gin.H{"id": c.Param("id")}))
	})

	e.g.DELETE(item+"/purge", func(c *gin.Context) {
		if err := store.HardDelete(c.Request.Context(), c.Param("id")); err != nil {
			fail(c, err)
			return
		}
		changed(c)
		c.JSON(http.StatusOK, resp.OK(gin.H{"id": c.Param("id")}))
	})
}

// findOwned fetches the addressed record and checks it belongs to the
// person in the path; a foreign record reads as absent.
func findOwned[T any, PT repo.SatellitePtr[T]](c *gin.Context, store *repo.SatelliteStore[T, PT]) (PT, error) {
	rec, err := store.FindByID(c.Request.Context(), c.Param("id"), false)
	if err != nil {
		return nil, err
	}
	if rec.PersonRef() != c.Param("personId") {
		return nil, domain.ErrNotFound
	}
	return rec, nil
}

func fail(c *gin.Context, err error) {
	var ae *AErr
	if errors.As(FromDomain(err), &ae) {
		c.JSON(http.StatusOK, resp.Error(ae.Code, ae.Error()))
		return
	}
	c.JSON(http.StatusOK, resp.Error(resp.CodeServerError, err.Error()))
}
