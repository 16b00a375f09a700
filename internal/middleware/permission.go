package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rehacentro/clinica-api/internal/domain/permiso"
)

const contextPermCache = "permCache"

// permCache recupera (o crea) la memoización de permisos de esta petición.
// El caché vive solo lo que vive la petición.
func permCache(c *gin.Context) *permiso.RequestCache {
	if v, ok := c.Get(contextPermCache); ok {
		return v.(*permiso.RequestCache)
	}
	cache := permiso.NewRequestCache()
	c.Set(contextPermCache, cache)
	return cache
}

// RequirePermission corta con 403 si el usuario no tiene el permiso
// "modulo.accion". El rol administrador pasa siempre (lo resuelve el Checker).
func RequirePermission(checker permiso.Checker, codigo string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.MustGet(ContextUserID).(uint)

		cache := permCache(c)
		if permitido, ok := cache.Get(codigo); ok {
			if !permitido {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "permiso_denegado"})
			}
			return
		}

		permitido, err := checker.TienePermiso(c.Request.Context(), userID, codigo)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "error_verificando_permiso"})
			return
		}
		cache.Set(codigo, permitido)

		if !permitido {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "permiso_denegado"})
			return
		}

		c.Next()
	}
}
