package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/rehacentro/clinica-api/internal/httperr"
)

func parseUintQuery(c *gin.Context, name string) (uint, bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(v), true
}

func parseUintParam(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(v), true
}

// respondError traduce el error del caso de uso: registro inexistente → 404,
// regla de negocio → 400, lo demás → 500.
func respondError(c *gin.Context, err error, notFoundCode, notFoundMsg, fallbackCode string) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		httperr.NotFound(c, notFoundCode, notFoundMsg)
		return
	}
	httperr.FromError(c, err, fallbackCode)
}
