package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dravedigitals/careerguard/server/store"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func mockStore(mt *mtest.T) *store.DB {
	return &store.DB{Client: mt.Client, Database: mt.DB}
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestCreateHeroDeactivatesExistingFirst(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("at most one active", func(mt *mtest.T) {
		h := &ContentHandler{DB: mockStore(mt)}
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1}),
			mtest.CreateSuccessResponse(),
		)

		body := `{"title":"T","subtitle":"S"}`
		req := httptest.NewRequest(http.MethodPost, "/api/hero-content", strings.NewReader(body))
		rec := httptest.NewRecorder()
		h.CreateHero(rec, req)
		require.Equal(mt, http.StatusCreated, rec.Code)

		// Every existing instance is deactivated before the active insert.
		update := mt.GetStartedEvent()
		require.NotNil(mt, update)
		assert.Equal(mt, "update", update.CommandName)
		multi, _ := update.Command.Lookup("updates", "0", "multi").BooleanOK()
		assert.True(mt, multi)
		active, ok := update.Command.Lookup("updates", "0", "u", "$set", "active").BooleanOK()
		require.True(mt, ok)
		assert.False(mt, active)

		insert := mt.GetStartedEvent()
		require.NotNil(mt, insert)
		assert.Equal(mt, "insert", insert.CommandName)
		inserted, ok := insert.Command.Lookup("documents", "0", "active").BooleanOK()
		require.True(mt, ok)
		assert.True(mt, inserted)
	})
}

func TestUpdateSectionHeroRepliesUpdated(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("hero section", func(mt *mtest.T) {
		h := &ContentHandler{DB: mockStore(mt)}
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1}),
			mtest.CreateSuccessResponse(),
		)

		body := `{"title":"T","subtitle":"S"}`
		req := httptest.NewRequest(http.MethodPut, "/api/website-content/hero", strings.NewReader(body))
		rec := httptest.NewRecorder()
		h.UpdateSection(rec, withURLParam(req, "section", "hero"))

		// The section path replies like an update, not like a create.
		assert.Equal(mt, http.StatusOK, rec.Code)
		var resp map[string]string
		require.NoError(mt, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(mt, "Content updated successfully", resp["message"])
	})
}

func TestUpdateSectionUnknownSection(t *testing.T) {
	h := &ContentHandler{}
	req := httptest.NewRequest(http.MethodPut, "/api/website-content/footer", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	h.UpdateSection(rec, withURLParam(req, "section", "footer"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
