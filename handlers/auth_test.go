package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dravedigitals/careerguard/server/middleware"
	"github.com/dravedigitals/careerguard/server/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
	"golang.org/x/crypto/bcrypt"
)

func TestCreateTokenRoundTrip(t *testing.T) {
	h := &AuthHandler{JWTSecret: "test-secret"}
	user := &models.User{
		ID:    primitive.NewObjectID(),
		Email: "admin@careerguard.com",
		Role:  models.RoleAdmin,
	}
	signed, err := h.createToken(user)
	require.NoError(t, err)

	token, err := jwt.ParseWithClaims(signed, &middleware.Claims{}, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims := token.Claims.(*middleware.Claims)
	assert.Equal(t, user.ID.Hex(), claims.UserID)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, models.RoleAdmin, claims.Role)

	// Time-boxed to 24 hours.
	remaining := time.Until(claims.ExpiresAt.Time)
	assert.InDelta(t, tokenTTL.Seconds(), remaining.Seconds(), 60)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("existing email is a 400", func(mt *mtest.T) {
		h := &AuthHandler{DB: mockStore(mt), JWTSecret: "test-secret"}
		existing := bson.D{
			{Key: "_id", Value: primitive.NewObjectID()},
			{Key: "name", Value: "A"},
			{Key: "email", Value: "a@b.com"},
			{Key: "password", Value: "x"},
			{Key: "role", Value: models.RoleUser},
		}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, mt.DB.Name()+".users", mtest.FirstBatch, existing))

		body := `{"name":"A","email":"a@b.com","password":"secret"}`
		req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
		rec := httptest.NewRecorder()
		h.Register(rec, req)

		assert.Equal(mt, http.StatusBadRequest, rec.Code)
		var resp map[string]string
		require.NoError(mt, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(mt, "User already exists", resp["message"])
	})
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("unknown email vs wrong password", func(mt *mtest.T) {
		h := &AuthHandler{DB: mockStore(mt), JWTSecret: "test-secret"}
		ns := mt.DB.Name() + ".users"
		body := `{"email":"a@b.com","password":"secret"}`

		// Unknown email.
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))
		unknown := httptest.NewRecorder()
		h.Login(unknown, httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body)))

		// Known email, wrong password.
		hash, err := bcrypt.GenerateFromPassword([]byte("different"), bcrypt.DefaultCost)
		require.NoError(mt, err)
		user := bson.D{
			{Key: "_id", Value: primitive.NewObjectID()},
			{Key: "name", Value: "A"},
			{Key: "email", Value: "a@b.com"},
			{Key: "password", Value: string(hash)},
			{Key: "role", Value: models.RoleUser},
		}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, user))
		wrong := httptest.NewRecorder()
		h.Login(wrong, httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body)))

		// Callers cannot tell the two failure modes apart.
		assert.Equal(mt, http.StatusBadRequest, unknown.Code)
		assert.Equal(mt, http.StatusBadRequest, wrong.Code)
		assert.Equal(mt, unknown.Body.String(), wrong.Body.String())
	})
}
