package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"remindly/models"
	"remindly/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

// stubUserRepo resolves only the users it was seeded with. Only the lookup
// methods the middleware touches are meaningful.
type stubUserRepo struct {
	users map[string]*models.User
}

func (s *stubUserRepo) GetByID(id string) (*models.User, error) { return s.users[id], nil }

func (s *stubUserRepo) GetByEmail(string) (*models.User, error) { return nil, nil }

func (s *stubUserRepo) GetByGoogleID(string) (*models.User, error) { return nil, nil }

func (s *stubUserRepo) GetByPersonalToken(string) (*models.User, error) { return nil, nil }

func (s *stubUserRepo) Create(*models.User) error { return nil }

func (s *stubUserRepo) UpdateWithDocument(string, bson.M) error { return nil }

func (s *stubUserRepo) GetByIDWithProjection(id string, _ bson.M) (*models.User, error) {
	return s.users[id], nil
}

func newAuthTestRouter(repo *stubUserRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", JWTAuthUserMiddleware(repo), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userID": c.GetString("userID")})
	})
	return r
}

func TestJWTAuthUserMiddleware_NoToken(t *testing.T) {
	r := newAuthTestRouter(&stubUserRepo{users: map[string]*models.User{}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Basic abc")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthUserMiddleware_InvalidToken(t *testing.T) {
	r := newAuthTestRouter(&stubUserRepo{users: map[string]*models.User{}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthUserMiddleware_ValidTokenExistingUser(t *testing.T) {
	repo := &stubUserRepo{users: map[string]*models.User{
		"user-123": {ID: "user-123", Name: "Alice"},
	}}
	r := newAuthTestRouter(repo)

	token, err := utils.GenerateToken("user-123", "alice@example.com", time.Hour)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-123")
}

func TestJWTAuthUserMiddleware_ValidTokenUnknownUser(t *testing.T) {
	// A well-formed token for a user that no longer exists is rejected.
	r := newAuthTestRouter(&stubUserRepo{users: map[string]*models.User{}})

	token, err := utils.GenerateToken("ghost", "ghost@example.com", time.Hour)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
