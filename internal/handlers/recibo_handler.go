package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/rehacentro/clinica-api/internal/httperr"
	"github.com/rehacentro/clinica-api/internal/httpresp"
	"github.com/rehacentro/clinica-api/internal/middleware"
	ucRecibo "github.com/rehacentro/clinica-api/internal/usecase/recibo"
)

type ReciboHandler struct {
	emitirUC *ucRecibo.EmitirRecibo
	anularUC *ucRecibo.AnularRecibo
}

func NewReciboHandler(
	emitirUC *ucRecibo.EmitirRecibo,
	anularUC *ucRecibo.AnularRecibo,
) *ReciboHandler {
	return &ReciboHandler{emitirUC: emitirUC, anularUC: anularUC}
}

type CrearReciboRequest struct {
	CitaID uint `json:"id_cita" binding:"required"`
}

// ======================================================
// CREATE
// ======================================================

func (h *ReciboHandler) Create(c *gin.Context) {
	usuarioID := c.MustGet(middleware.ContextUserID).(uint)

	var req CrearReciboRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "datos_invalidos", "Se requiere id_cita.")
		return
	}

	recibo, err := h.emitirUC.Execute(c.Request.Context(), req.CitaID, usuarioID)
	if err != nil {
		respondError(c, err, "cita_no_encontrada", "Cita no encontrada.", "error_creando_recibo")
		return
	}

	httpresp.Created(c, "Recibo creado correctamente", recibo)
}

// ======================================================
// VOID
// ======================================================

func (h *ReciboHandler) Void(c *gin.Context) {
	usuarioID := c.MustGet(middleware.ContextUserID).(uint)

	reciboID, ok := parseUintQuery(c, "recibo_id")
	if !ok {
		httperr.BadRequest(c, "recibo_id_invalido", "El parámetro recibo_id es obligatorio.")
		return
	}

	recibo, err := h.anularUC.Execute(c.Request.Context(), reciboID, usuarioID)
	if err != nil {
		respondError(c, err, "recibo_no_encontrado", "Recibo no encontrado.", "error_anulando_recibo")
		return
	}

	httpresp.OKMessage(c, "Recibo anulado correctamente", recibo)
}
