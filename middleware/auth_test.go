package middleware

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Marmblshko/Simple-blog/utils"
)

func TestMain(m *testing.M) {
	os.Setenv("JWT_SECRET", "test-secret")
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func authRouter() *gin.Engine {
	r := gin.New()
	r.GET("/protected", AuthRequired(), func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{
			"user_id":  ctx.GetUint(ContextUserIDKey),
			"username": ctx.GetString(ContextUsernameKey),
		})
	})
	return r
}

func doAuth(r *gin.Engine, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestAuthRequiredSetsIdentity(t *testing.T) {
	token, err := utils.GenerateToken(7, "alice", time.Hour)
	require.NoError(t, err)

	rr := doAuth(authRouter(), "Bearer "+token)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"user_id":7`)
	assert.Contains(t, rr.Body.String(), `"username":"alice"`)
}

func TestAuthRequiredMissingHeader(t *testing.T) {
	rr := doAuth(authRouter(), "")

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Contains(t, rr.Body.String(), `"/signin"`)
}

func TestAuthRequiredMalformedHeader(t *testing.T) {
	rr := doAuth(authRouter(), "Token abc")

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestAuthRequiredInvalidToken(t *testing.T) {
	rr := doAuth(authRouter(), "Bearer garbage")

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
