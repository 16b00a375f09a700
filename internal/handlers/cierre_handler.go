package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	domCierre "github.com/rehacentro/clinica-api/internal/domain/cierre"
	"github.com/rehacentro/clinica-api/internal/httperr"
	"github.com/rehacentro/clinica-api/internal/httpresp"
	"github.com/rehacentro/clinica-api/internal/middleware"
	ucCierre "github.com/rehacentro/clinica-api/internal/usecase/cierre"
)

// ======================================================
// HANDLER
// ======================================================

type CierreHandler struct {
	datosUC     *ucCierre.ObtenerDatosCierre
	crearUC     *ucCierre.CrearCierre
	reabrirUC   *ucCierre.ReabrirCierre
	verificarUC *ucCierre.VerificarDia
	listarUC    *ucCierre.ListarCierres
	obtenerUC   *ucCierre.ObtenerCierre
	eliminarUC  *ucCierre.EliminarCierre
}

func NewCierreHandler(
	datosUC *ucCierre.ObtenerDatosCierre,
	crearUC *ucCierre.CrearCierre,
	reabrirUC *ucCierre.ReabrirCierre,
	verificarUC *ucCierre.VerificarDia,
	listarUC *ucCierre.ListarCierres,
	obtenerUC *ucCierre.ObtenerCierre,
	eliminarUC *ucCierre.EliminarCierre,
) *CierreHandler {
	return &CierreHandler{
		datosUC:     datosUC,
		crearUC:     crearUC,
		reabrirUC:   reabrirUC,
		verificarUC: verificarUC,
		listarUC:    listarUC,
		obtenerUC:   obtenerUC,
		eliminarUC:  eliminarUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CrearCierreRequest struct {
	Fecha string `json:"fecha" binding:"required"`
	Notas string `json:"notas"`
}

type ReabrirCierreRequest struct {
	Motivo string `json:"motivo"`
}

// ======================================================
// DATOS DEL DÍA
// ======================================================

func (h *CierreHandler) GetDatos(c *gin.Context) {
	fecha := c.Query("fecha")
	if fecha == "" {
		httperr.BadRequest(c, "fecha_faltante", "El parámetro fecha es obligatorio.")
		return
	}

	datos, err := h.datosUC.Execute(c.Request.Context(), fecha)
	if err != nil {
		httperr.FromError(c, err, "error_obteniendo_datos")
		return
	}

	httpresp.OK(c, datos)
}

// ======================================================
// CERRAR / RE-CERRAR
// ======================================================

func (h *CierreHandler) Create(c *gin.Context) {
	usuarioID := c.MustGet(middleware.ContextUserID).(uint)

	var req CrearCierreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "datos_invalidos", "Se requiere fecha.")
		return
	}

	out, err := h.crearUC.Execute(c.Request.Context(), ucCierre.CrearCierreInput{
		Fecha:     req.Fecha,
		Notas:     req.Notas,
		UsuarioID: usuarioID,
	})
	if err != nil {
		httperr.FromError(c, err, "error_creando_cierre")
		return
	}

	if out.Recerrado {
		httpresp.OKMessage(c, "Día re-cerrado correctamente", out.Cierre)
		return
	}
	httpresp.Created(c, "Cierre creado correctamente", out.Cierre)
}

// ======================================================
// REABRIR
// ======================================================

func (h *CierreHandler) Reopen(c *gin.Context) {
	usuarioID := c.MustGet(middleware.ContextUserID).(uint)

	cierreID, ok := parseUintParam(c, "id_cierre")
	if !ok {
		httperr.BadRequest(c, "id_cierre_invalido", "El id del cierre es inválido.")
		return
	}

	var req ReabrirCierreRequest
	// el cuerpo es opcional: sin motivo se usa el texto por defecto
	_ = c.ShouldBindJSON(&req)

	cierre, err := h.reabrirUC.Execute(c.Request.Context(), cierreID, req.Motivo, usuarioID)
	if err != nil {
		respondError(c, err, "cierre_no_encontrado", "Cierre no encontrado.", "error_reabriendo_cierre")
		return
	}

	httpresp.OKMessage(c, "Cierre reabierto correctamente", cierre)
}

// ======================================================
// VERIFICAR BLOQUEO
// ======================================================

func (h *CierreHandler) Verify(c *gin.Context) {
	fecha := c.Query("fecha")
	if fecha == "" {
		httperr.BadRequest(c, "fecha_faltante", "El parámetro fecha es obligatorio.")
		return
	}

	bloqueado, err := h.verificarUC.Execute(c.Request.Context(), fecha)
	if err != nil {
		httperr.FromError(c, err, "error_verificando_cierre")
		return
	}

	httpresp.OK(c, gin.H{"fecha": fecha, "dia_cerrado": bloqueado})
}

// ======================================================
// HISTORIAL
// ======================================================

func (h *CierreHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	cierres, total, err := h.listarUC.Execute(c.Request.Context(), domCierre.FiltroHistorial{
		FechaDesde: c.Query("fechaDesde"),
		FechaHasta: c.Query("fechaHasta"),
		Page:       page,
		Limit:      limit,
	})
	if err != nil {
		httperr.FromError(c, err, "error_listando_cierres")
		return
	}

	httpresp.List(c, cierres, httpresp.NewPagination(total, page, limit))
}

// ======================================================
// OBTENER POR ID
// ======================================================

func (h *CierreHandler) GetByID(c *gin.Context) {
	cierreID, ok := parseUintParam(c, "id_cierre")
	if !ok {
		httperr.BadRequest(c, "id_cierre_invalido", "El id del cierre es inválido.")
		return
	}

	cierre, err := h.obtenerUC.Execute(c.Request.Context(), cierreID)
	if err != nil {
		respondError(c, err, "cierre_no_encontrado", "Cierre no encontrado.", "error_obteniendo_cierre")
		return
	}

	httpresp.OK(c, cierre)
}

// ======================================================
// ELIMINAR
// ======================================================

func (h *CierreHandler) Delete(c *gin.Context) {
	usuarioID := c.MustGet(middleware.ContextUserID).(uint)

	cierreID, ok := parseUintParam(c, "id_cierre")
	if !ok {
		httperr.BadRequest(c, "id_cierre_invalido", "El id del cierre es inválido.")
		return
	}

	if err := h.eliminarUC.Execute(c.Request.Context(), cierreID, usuarioID); err != nil {
		respondError(c, err, "cierre_no_encontrado", "Cierre no encontrado.", "error_eliminando_cierre")
		return
	}

	httpresp.OKMessage(c, "Cierre eliminado correctamente", gin.H{"id_cierre": cierreID})
}
