package auth

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type failingResolver struct{}

func (failingResolver) Resolve(c *gin.Context) (string, error) {
	return "ignored", errors.New("resolver broke")
}

func resolvedID(t *testing.T, resolver Resolver) string {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var got string
	r := gin.New()
	r.Use(Identity(resolver))
	r.GET("/", func(c *gin.Context) {
		got = UserID(c)
		c.Status(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	return got
}

func TestIdentityStoresResolvedUser(t *testing.T) {
	require.Equal(t, "user-42", resolvedID(t, StaticResolver{UserID: "user-42"}))
}

func TestIdentityFailedResolutionIsEmpty(t *testing.T) {
	require.Equal(t, "", resolvedID(t, failingResolver{}))
}
