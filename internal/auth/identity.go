package auth

import (
	"github.com/gin-gonic/gin"
)

const identityKey = "auth.userID"

// Resolver resolves the caller's identity for a request. Production wiring
// uses StaticResolver until real session auth lands; tests supply fakes.
type Resolver interface {
	Resolve(c *gin.Context) (string, error)
}

// StaticResolver hands out one configured user id for every request. It
// stands in for session-derived identity.
type StaticResolver struct {
	UserID string
}

func (r StaticResolver) Resolve(c *gin.Context) (string, error) {
	return r.UserID, nil
}

// Identity stores the resolved user id on the request context. A failed or
// empty resolution stores the empty id; the services decide where in their
// gate order a missing identity is rejected.
func Identity(resolver Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := resolver.Resolve(c)
		if err != nil {
			userID = ""
		}
		c.Set(identityKey, userID)
		c.Next()
	}
}

// UserID returns the identity stored by the Identity middleware, or "" when
// none was resolved.
func UserID(c *gin.Context) string {
	return c.GetString(identityKey)
}
