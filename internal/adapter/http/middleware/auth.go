package middleware

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"barcraft/internal/domain/entities"
	"barcraft/pkg"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// ContextActorKey is where RequireActor stores the authenticated actor.
const ContextActorKey = "actor"

type actorClaims struct {
	Role    string `json:"role"`
	VenueID string `json:"venue_id"`
	jwt.RegisteredClaims
}

// RequireActor validates the HS256 bearer token issued by the auth
// collaborator and exposes the actor (id, role, venue scope) to handlers.
// Token issuance itself is out of scope here.
func RequireActor(secret []byte) gin.HandlerFunc {
	unauthorized := pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or invalid credentials", http.StatusUnauthorized)

	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			c.AbortWithStatusJSON(unauthorized.HTTPStatus, unauthorized.ToHTTPError())
			return
		}

		token, err := jwt.ParseWithClaims(parts[1], &actorClaims{}, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return secret, nil
		})
		if err != nil || !token.Valid {
			log.Printf("[auth][middleware] token rejected err=%v", err)
			c.AbortWithStatusJSON(unauthorized.HTTPStatus, unauthorized.ToHTTPError())
			return
		}

		claims, ok := token.Claims.(*actorClaims)
		if !ok {
			c.AbortWithStatusJSON(unauthorized.HTTPStatus, unauthorized.ToHTTPError())
			return
		}
		role, err := entities.ParseRole(claims.Role)
		if err != nil {
			log.Printf("[auth][middleware] unknown role=%q sub=%s", claims.Role, claims.Subject)
			c.AbortWithStatusJSON(unauthorized.HTTPStatus, unauthorized.ToHTTPError())
			return
		}

		c.Set(ContextActorKey, entities.Actor{
			ID:      claims.Subject,
			Role:    role,
			VenueID: claims.VenueID,
		})
		c.Next()
	}
}

// ActorFromContext returns the actor stored by RequireActor.
func ActorFromContext(c *gin.Context) (entities.Actor, bool) {
	v, ok := c.Get(ContextActorKey)
	if !ok {
		return entities.Actor{}, false
	}
	actor, ok := v.(entities.Actor)
	return actor, ok
}
