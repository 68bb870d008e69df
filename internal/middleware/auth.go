package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"keepnotes-be/internal/entities"
	"keepnotes-be/internal/jwt"
	"keepnotes-be/internal/repository"
)

// identityKey is the gin context key holding the resolved identity
const identityKey = "currentUser"

// credentialsMessage is the one body every authentication failure gets.
// Expired token, bad signature, missing subject, and unknown user are all
// indistinguishable to the caller.
const credentialsMessage = "Could not validate credentials"

// AuthMiddleware returns a Gin middleware that authenticates requests with a
// bearer token. The token is validated statelessly, then the subject is
// resolved against the user store on every request, so a deleted user is
// locked out immediately even while their token is still unexpired.
func AuthMiddleware(jwtService *jwt.JWTService, userRepo repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractBearerToken(c)
		if tokenString == "" {
			abortUnauthenticated(c)
			return
		}

		claims, err := jwtService.ValidateToken(tokenString)
		if err != nil {
			abortUnauthenticated(c)
			return
		}

		email := claims.Subject
		if email == "" {
			// A valid signature with no subject is still a bad token
			abortUnauthenticated(c)
			return
		}

		user, err := userRepo.FindByEmail(email)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				abortUnauthenticated(c)
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error": "Failed to get the current user",
			})
			return
		}

		c.Set(identityKey, &entities.ResolvedIdentity{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
		})

		c.Next()
	}
}

// CurrentUser returns the identity resolved by AuthMiddleware for this request
func CurrentUser(c *gin.Context) (*entities.ResolvedIdentity, bool) {
	value, exists := c.Get(identityKey)
	if !exists {
		return nil, false
	}
	identity, ok := value.(*entities.ResolvedIdentity)
	return identity, ok
}

func extractBearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func abortUnauthenticated(c *gin.Context) {
	c.Header("WWW-Authenticate", "Bearer")
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error": credentialsMessage,
	})
}
