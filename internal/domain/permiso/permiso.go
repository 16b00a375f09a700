package permiso

import "context"

// Checker resuelve si un usuario puede ejecutar una acción "modulo.accion".
// El rol administrador pasa todas las verificaciones.
type Checker interface {
	TienePermiso(ctx context.Context, usuarioID uint, codigo string) (bool, error)
}

// RequestCache memoiza verificaciones durante una sola petición HTTP.
// No se comparte entre peticiones.
type RequestCache struct {
	resultados map[string]bool
}

func NewRequestCache() *RequestCache {
	return &RequestCache{resultados: make(map[string]bool)}
}

func (c *RequestCache) Get(codigo string) (bool, bool) {
	v, ok := c.resultados[codigo]
	return v, ok
}

func (c *RequestCache) Set(codigo string, permitido bool) {
	c.resultados[codigo] = permitido
}
