package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"shop_backend/internal/domain"
	"shop_backend/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testSecret = "gate-test-secret"

// newGateRouter builds a router with one protected route and reports whether
// the protected handler actually ran.
func newGateRouter(handlerRan *bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", JWTAuthMiddleware(testSecret), func(c *gin.Context) {
		*handlerRan = true
		c.JSON(http.StatusOK, gin.H{"user_id": c.MustGet("userID")})
	})
	return r
}

func doGet(r *gin.Engine, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthGateMissingToken(t *testing.T) {
	var handlerRan bool
	r := newGateRouter(&handlerRan)

	// No header at all
	w := doGet(r, "/protected", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, handlerRan)

	// Wrong scheme
	w = doGet(r, "/protected", "Basic abc123")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, handlerRan)
}

func TestAuthGateInvalidToken(t *testing.T) {
	var handlerRan bool
	r := newGateRouter(&handlerRan)

	// Garbage token
	w := doGet(r, "/protected", "Bearer not-a-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, handlerRan)

	// Token signed with a different secret
	other, err := utils.GenerateJWT(1, "a@b.c", "some-other-secret", time.Hour)
	require.NoError(t, err)
	w = doGet(r, "/protected", "Bearer "+other)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, handlerRan)
}

func TestAuthGateExpiredToken(t *testing.T) {
	var handlerRan bool
	r := newGateRouter(&handlerRan)

	// Build an already-expired token with the right secret
	expired := utils.Claims{
		UserID: 1,
		Email:  "a@b.c",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, expired).SignedString([]byte(testSecret))
	require.NoError(t, err)

	w := doGet(r, "/protected", "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, handlerRan)
}

func TestAuthGateValidToken(t *testing.T) {
	var handlerRan bool
	r := newGateRouter(&handlerRan)

	token, err := utils.GenerateJWT(42, "alice@example.com", testSecret, time.Hour)
	require.NoError(t, err)

	w := doGet(r, "/protected", "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, handlerRan)
}

func TestUserAuthMiddlewareDeletedAccount(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db, err := gorm.Open(sqlite.Open("file:UserAuthMiddleware?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.User{}))

	user := domain.User{Name: "Alice", Email: "alice@example.com", Password: "hash"}
	require.NoError(t, db.Create(&user).Error)

	var handlerRan bool
	r := gin.New()
	r.GET("/me", JWTAuthMiddleware(testSecret), UserAuthMiddleware(db), func(c *gin.Context) {
		handlerRan = true
		c.JSON(http.StatusOK, gin.H{"user": c.MustGet("user")})
	})

	token, err := utils.GenerateJWT(user.ID, user.Email, testSecret, time.Hour)
	require.NoError(t, err)

	// Existing account passes
	w := doGet(r, "/me", "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, handlerRan)

	// Once the account is gone the still-valid token is rejected
	require.NoError(t, db.Delete(&user).Error)
	handlerRan = false
	w = doGet(r, "/me", "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, handlerRan)
}

