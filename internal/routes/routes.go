package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/rehacentro/clinica-api/internal/audit"
	"github.com/rehacentro/clinica-api/internal/cache"
	"github.com/rehacentro/clinica-api/internal/config"
	"github.com/rehacentro/clinica-api/internal/handlers"
	infraRepo "github.com/rehacentro/clinica-api/internal/infra/repository"
	"github.com/rehacentro/clinica-api/internal/middleware"
	"github.com/rehacentro/clinica-api/internal/timezone"
	ucCierre "github.com/rehacentro/clinica-api/internal/usecase/cierre"
	ucCita "github.com/rehacentro/clinica-api/internal/usecase/cita"
	ucRecibo "github.com/rehacentro/clinica-api/internal/usecase/recibo"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	store cache.Cache,
	log *zap.Logger,
) {

	loc := timezone.Location(cfg.Timezone)

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	citaRepo := infraRepo.NewCitaGormRepository(db)
	reciboRepo := infraRepo.NewReciboGormRepository(db)
	cierreRepo := infraRepo.NewCierreGormRepository(db, loc)
	permisoRepo := infraRepo.NewPermisoGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	// ======================================================
	// USE CASES — CITAS
	// ======================================================
	verificarCapacidadUC := ucCita.NewVerificarCapacidad(citaRepo)
	crearCitaUC := ucCita.NewCrearCita(citaRepo, auditDispatcher)
	crearCitasLoteUC := ucCita.NewCrearCitasLote(citaRepo, auditDispatcher)
	actualizarCitaUC := ucCita.NewActualizarCita(citaRepo, auditDispatcher)
	eliminarCitaUC := ucCita.NewEliminarCita(citaRepo, auditDispatcher)

	// ======================================================
	// USE CASES — RECIBOS
	// ======================================================
	emitirReciboUC := ucRecibo.NewEmitirRecibo(reciboRepo, auditDispatcher, loc)
	anularReciboUC := ucRecibo.NewAnularRecibo(reciboRepo, auditDispatcher)

	// ======================================================
	// USE CASES — CIERRES
	// ======================================================
	datosCierreUC := ucCierre.NewObtenerDatosCierre(cierreRepo)
	crearCierreUC := ucCierre.NewCrearCierre(cierreRepo, auditDispatcher, store, loc, log)
	reabrirCierreUC := ucCierre.NewReabrirCierre(cierreRepo, auditDispatcher, store, loc, log)
	verificarDiaUC := ucCierre.NewVerificarDia(cierreRepo, store, log)
	listarCierresUC := ucCierre.NewListarCierres(cierreRepo)
	obtenerCierreUC := ucCierre.NewObtenerCierre(cierreRepo)
	eliminarCierreUC := ucCierre.NewEliminarCierre(cierreRepo, auditDispatcher, store, log)

	// ======================================================
	// HANDLERS
	// ======================================================
	citaHandler := handlers.NewCitaHandler(
		verificarCapacidadUC,
		crearCitaUC,
		crearCitasLoteUC,
		actualizarCitaUC,
		eliminarCitaUC,
	)

	reciboHandler := handlers.NewReciboHandler(emitirReciboUC, anularReciboUC)

	cierreHandler := handlers.NewCierreHandler(
		datosCierreUC,
		crearCierreUC,
		reabrirCierreUC,
		verificarDiaUC,
		listarCierresUC,
		obtenerCierreUC,
		eliminarCierreUC,
	)

	// ======================================================
	// RUTAS
	// ======================================================
	auth := middleware.AuthMiddleware(cfg)
	perm := func(codigo string) gin.HandlerFunc {
		return middleware.RequirePermission(permisoRepo, codigo)
	}

	citas := r.Group("/citas")
	citas.Use(auth)
	{
		citas.GET("/checkCapacity", perm("citas.ver"), citaHandler.CheckCapacity)
		citas.POST("/insertCita", perm("citas.crear"), citaHandler.Create)
		citas.POST("/insertCitasMultiple", perm("citas.crear"), citaHandler.CreateBatch)
		citas.PUT("/updateCita", perm("citas.editar"), citaHandler.Update)
		citas.DELETE("/deleteCita", perm("citas.eliminar"), citaHandler.Delete)
	}

	recibos := r.Group("/recibos")
	recibos.Use(auth)
	{
		recibos.POST("/crearRecibo", perm("recibos.crear"), reciboHandler.Create)
		recibos.PUT("/anularRecibo", perm("recibos.anular"), reciboHandler.Void)
	}

	cierres := r.Group("/cierres")
	cierres.Use(auth)
	{
		cierres.GET("/getDatosCierre", perm("cierres.ver"), cierreHandler.GetDatos)
		cierres.POST("/crearCierre", perm("cierres.crear"), cierreHandler.Create)
		cierres.PUT("/reabrirCierre/:id_cierre", perm("cierres.reabrir"), cierreHandler.Reopen)
		cierres.GET("/verificarCierre", perm("cierres.ver"), cierreHandler.Verify)
		cierres.GET("/getCierres", perm("cierres.ver"), cierreHandler.List)
		cierres.GET("/getCierre/:id_cierre", perm("cierres.ver"), cierreHandler.GetByID)
		cierres.DELETE("/eliminarCierre/:id_cierre", perm("cierres.eliminar"), cierreHandler.Delete)
	}
}
