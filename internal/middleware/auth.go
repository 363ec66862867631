package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/Luberth08/Proyecto-Panaderia-sub000/internal/apierror"
	"github.com/Luberth08/Proyecto-Panaderia-sub000/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	ClaimsKey = "claims"

	permisoCacheTTL = 5 * time.Minute
)

// JWTClaims are the custom claims embedded in every access token.
type JWTClaims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Rol      string `json:"rol"`
	jwt.RegisteredClaims
}

// JWTAuth validates the Bearer token on every protected route.
func JWTAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Autenticación requerida"))
			return
		}

		tokenStr := strings.TrimPrefix(header, "Bearer ")
		claims := &JWTClaims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})

		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Token inválido o expirado"))
			return
		}

		c.Set(ClaimsKey, claims)
		c.Next()
	}
}

// PermisoChecker resolves whether a role holds a named permission. Role
// permissions rarely change, so lookups go through a short-lived Redis cache
// before hitting the database.
type PermisoChecker struct {
	repo repository.UsuarioRepository
	rdb  *redis.Client
}

func NewPermisoChecker(repo repository.UsuarioRepository, rdb *redis.Client) *PermisoChecker {
	return &PermisoChecker{repo: repo, rdb: rdb}
}

// RequirePermiso rejects requests whose role lacks the named permission.
func (pc *PermisoChecker) RequirePermiso(permiso string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := GetClaims(c)
		if claims == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Autenticación requerida"))
			return
		}
		ok, err := pc.tienePermiso(c.Request.Context(), claims.Rol, permiso)
		if err != nil {
			log.Error().Err(err).Str("rol", claims.Rol).Msg("permission lookup failed")
			c.AbortWithStatusJSON(http.StatusInternalServerError, apierror.New("Error interno del servidor"))
			return
		}
		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, apierror.New("Permisos insuficientes"))
			return
		}
		c.Next()
	}
}

func (pc *PermisoChecker) tienePermiso(ctx context.Context, rol, permiso string) (bool, error) {
	cacheKey := "permisos:" + rol

	if pc.rdb != nil {
		cached, err := pc.rdb.SMembers(ctx, cacheKey).Result()
		if err == nil && len(cached) > 0 {
			for _, p := range cached {
				if p == permiso {
					return true, nil
				}
			}
			return false, nil
		}
	}

	permisos, err := pc.repo.ListPermisosByRol(ctx, rol)
	if err != nil {
		return false, err
	}

	if pc.rdb != nil && len(permisos) > 0 {
		members := make([]interface{}, len(permisos))
		for i, p := range permisos {
			members[i] = p
		}
		pipe := pc.rdb.Pipeline()
		pipe.SAdd(ctx, cacheKey, members...)
		pipe.Expire(ctx, cacheKey, permisoCacheTTL)
		if _, err := pipe.Exec(ctx); err != nil {
			log.Warn().Err(err).Str("rol", rol).Msg("could not cache role permissions")
		}
	}

	for _, p := range permisos {
		if p == permiso {
			return true, nil
		}
	}
	return false, nil
}

// GetClaims is a helper to retrieve typed claims from the Gin context.
func GetClaims(c *gin.Context) *JWTClaims {
	v, ok := c.Get(ClaimsKey)
	if !ok {
		return nil
	}
	claims, _ := v.(*JWTClaims)
	return claims
}
