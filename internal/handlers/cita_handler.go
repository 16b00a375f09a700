package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/rehacentro/clinica-api/internal/httperr"
	"github.com/rehacentro/clinica-api/internal/httpresp"
	"github.com/rehacentro/clinica-api/internal/middleware"
	ucCita "github.com/rehacentro/clinica-api/internal/usecase/cita"
)

// ======================================================
// HANDLER
// ======================================================

type CitaHandler struct {
	verificarCapacidadUC *ucCita.VerificarCapacidad
	crearUC              *ucCita.CrearCita
	crearLoteUC          *ucCita.CrearCitasLote
	actualizarUC         *ucCita.ActualizarCita
	eliminarUC           *ucCita.EliminarCita
}

func NewCitaHandler(
	verificarCapacidadUC *ucCita.VerificarCapacidad,
	crearUC *ucCita.CrearCita,
	crearLoteUC *ucCita.CrearCitasLote,
	actualizarUC *ucCita.ActualizarCita,
	eliminarUC *ucCita.EliminarCita,
) *CitaHandler {
	return &CitaHandler{
		verificarCapacidadUC: verificarCapacidadUC,
		crearUC:              crearUC,
		crearLoteUC:          crearLoteUC,
		actualizarUC:         actualizarUC,
		eliminarUC:           eliminarUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CrearCitaRequest struct {
	PacienteID  uint   `json:"id_paciente" binding:"required"`
	TerapeutaID uint   `json:"id_terapeuta" binding:"required"`
	Fecha       string `json:"fecha" binding:"required"`
	HoraInicio  string `json:"hora_inicio" binding:"required"`
	TipoTerapia string `json:"tipo_terapia" binding:"required"`
	Estado      string `json:"estado"`
	ServicioIDs []uint `json:"id_servicios"`
}

type CitaLoteRequest struct {
	PacienteID  uint   `json:"id_paciente" binding:"required"`
	TerapeutaID uint   `json:"id_terapeuta" binding:"required"`
	Fecha       string `json:"fecha" binding:"required"`
	HoraInicio  string `json:"hora_inicio" binding:"required"`
	TipoTerapia string `json:"tipo_terapia" binding:"required"`
	ServicioIDs []uint `json:"id_servicios"`
}

type CrearCitasLoteRequest struct {
	Citas []CitaLoteRequest `json:"citas" binding:"required,min=1"`
}

type ActualizarCitaRequest struct {
	PacienteID  *uint   `json:"id_paciente"`
	TerapeutaID *uint   `json:"id_terapeuta"`
	Fecha       *string `json:"fecha"`
	HoraInicio  *string `json:"hora_inicio"`
	TipoTerapia *string `json:"tipo_terapia"`
	Estado      *string `json:"estado"`
	ServicioIDs *[]uint `json:"id_servicios"`
}

// ======================================================
// CHECK CAPACITY
// ======================================================

func (h *CitaHandler) CheckCapacity(c *gin.Context) {
	fecha := c.Query("fecha")
	horaInicio := c.Query("hora_inicio")
	tipoTerapia := c.Query("tipo_terapia")
	terapeutaID, okTerapeuta := parseUintQuery(c, "id_terapeuta")

	if fecha == "" || horaInicio == "" || tipoTerapia == "" || !okTerapeuta {
		httperr.BadRequest(c, "parametros_faltantes",
			"Se requieren fecha, hora_inicio, tipo_terapia e id_terapeuta.")
		return
	}

	excluir, _ := parseUintQuery(c, "id_cita_excluir")

	resultado, err := h.verificarCapacidadUC.Execute(c.Request.Context(), ucCita.VerificarCapacidadInput{
		Fecha:         fecha,
		HoraInicio:    horaInicio,
		TipoTerapia:   tipoTerapia,
		TerapeutaID:   terapeutaID,
		ExcluirCitaID: excluir,
	})
	if err != nil {
		httperr.FromError(c, err, "error_verificando_capacidad")
		return
	}

	httpresp.OK(c, resultado)
}

// ======================================================
// CREATE
// ======================================================

func (h *CitaHandler) Create(c *gin.Context) {
	usuarioID := c.MustGet(middleware.ContextUserID).(uint)

	var req CrearCitaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "datos_invalidos", "Datos de la cita inválidos.")
		return
	}

	cita, err := h.crearUC.Execute(c.Request.Context(), ucCita.CrearCitaInput{
		PacienteID:  req.PacienteID,
		TerapeutaID: req.TerapeutaID,
		Fecha:       req.Fecha,
		HoraInicio:  req.HoraInicio,
		TipoTerapia: req.TipoTerapia,
		Estado:      req.Estado,
		ServicioIDs: req.ServicioIDs,
		UsuarioID:   usuarioID,
	})
	if err != nil {
		httperr.FromError(c, err, "error_creando_cita")
		return
	}

	httpresp.Created(c, "Cita creada correctamente", cita)
}

// ======================================================
// CREATE (LOTE)
// ======================================================

func (h *CitaHandler) CreateBatch(c *gin.Context) {
	usuarioID := c.MustGet(middleware.ContextUserID).(uint)

	var req CrearCitasLoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "datos_invalidos", "Datos del lote inválidos.")
		return
	}

	items := make([]ucCita.CitaLoteItem, 0, len(req.Citas))
	for _, item := range req.Citas {
		items = append(items, ucCita.CitaLoteItem{
			PacienteID:  item.PacienteID,
			TerapeutaID: item.TerapeutaID,
			Fecha:       item.Fecha,
			HoraInicio:  item.HoraInicio,
			TipoTerapia: item.TipoTerapia,
			ServicioIDs: item.ServicioIDs,
		})
	}

	citas, err := h.crearLoteUC.Execute(c.Request.Context(), ucCita.CrearCitasLoteInput{
		Citas:     items,
		UsuarioID: usuarioID,
	})
	if err != nil {
		httperr.FromError(c, err, "error_creando_citas")
		return
	}

	httpresp.Created(c, "Citas creadas correctamente", citas)
}

// ======================================================
// UPDATE
// ======================================================

func (h *CitaHandler) Update(c *gin.Context) {
	usuarioID := c.MustGet(middleware.ContextUserID).(uint)

	citaID, ok := parseUintQuery(c, "cita_id")
	if !ok {
		httperr.BadRequest(c, "cita_id_invalido", "El parámetro cita_id es obligatorio.")
		return
	}

	var req ActualizarCitaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "datos_invalidos", "Datos de la cita inválidos.")
		return
	}

	cita, err := h.actualizarUC.Execute(c.Request.Context(), ucCita.ActualizarCitaInput{
		CitaID:      citaID,
		PacienteID:  req.PacienteID,
		TerapeutaID: req.TerapeutaID,
		Fecha:       req.Fecha,
		HoraInicio:  req.HoraInicio,
		TipoTerapia: req.TipoTerapia,
		Estado:      req.Estado,
		ServicioIDs: req.ServicioIDs,
		UsuarioID:   usuarioID,
	})
	if err != nil {
		respondError(c, err, "cita_no_encontrada", "Cita no encontrada.", "error_actualizando_cita")
		return
	}

	httpresp.OKMessage(c, "Cita actualizada correctamente", cita)
}

// ======================================================
// DELETE
// ======================================================

func (h *CitaHandler) Delete(c *gin.Context) {
	usuarioID := c.MustGet(middleware.ContextUserID).(uint)

	citaID, ok := parseUintQuery(c, "cita_id")
	if !ok {
		httperr.BadRequest(c, "cita_id_invalido", "El parámetro cita_id es obligatorio.")
		return
	}

	if err := h.eliminarUC.Execute(c.Request.Context(), citaID, usuarioID); err != nil {
		respondError(c, err, "cita_no_encontrada", "Cita no encontrada.", "error_eliminando_cita")
		return
	}

	httpresp.OKMessage(c, "Cita eliminada correctamente", gin.H{"id_cita": citaID})
}
