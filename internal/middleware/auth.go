package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/BruksfildServices01/office-scheduler/internal/config"
	"github.com/BruksfildServices01/office-scheduler/internal/domain/access"
	"github.com/BruksfildServices01/office-scheduler/internal/httperr"
	"github.com/BruksfildServices01/office-scheduler/internal/logging"
)

const ContextActor = "actor"

func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.Unauthorized(c, "missing_authorization_header", "Authorization header is required.")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			httperr.Unauthorized(c, "invalid_authorization_header", "Expected a bearer token.")
			c.Abort()
			return
		}

		token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenMalformed
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			httperr.Unauthorized(c, "invalid_token", "Token is invalid or expired.")
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			httperr.Unauthorized(c, "invalid_token_claims", "Token claims are unreadable.")
			c.Abort()
			return
		}

		actor, ok := actorFromClaims(claims)
		if !ok {
			httperr.Unauthorized(c, "invalid_token_payload", "Token is missing sub, tenantId or role.")
			c.Abort()
			return
		}

		c.Set(ContextActor, actor)

		logger := logging.FromContext(c.Request.Context()).With("user_id", actor.UserID, "tenant_id", actor.TenantID)
		c.Request = c.Request.WithContext(logging.ContextWithLogger(c.Request.Context(), logger))

		c.Next()
	}
}

func actorFromClaims(claims jwt.MapClaims) (access.Actor, bool) {
	userID, ok1 := claims["sub"].(float64)
	tenantID, ok2 := claims["tenantId"].(float64)
	role, _ := claims["role"].(string)
	if !ok1 || !ok2 || userID <= 0 || tenantID <= 0 {
		return access.Actor{}, false
	}

	switch r := access.Role(role); r {
	case access.RoleProvider, access.RoleScheduler, access.RoleAdmin:
		return access.Actor{UserID: uint(userID), TenantID: uint(tenantID), Role: r}, true
	}
	return access.Actor{}, false
}

// ActorFrom returns the actor set by AuthMiddleware.
func ActorFrom(c *gin.Context) access.Actor {
	return c.MustGet(ContextActor).(access.Actor)
}

// RequireScheduler rejects actors without scheduler privileges before the
// handler runs.
func RequireScheduler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !ActorFrom(c).IsSchedulerPrivileged() {
			httperr.Forbidden(c, "scheduler_role_required", "Only schedulers can perform this action.")
			c.Abort()
			return
		}
		c.Next()
	}
}
