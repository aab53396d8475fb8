package http

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	teamusecases "github.com/j-kappa/ticketing-system/internal/application/team/usecases"
	ticketusecases "github.com/j-kappa/ticketing-system/internal/application/ticket/usecases"
	"github.com/j-kappa/ticketing-system/internal/infrastructure/config"
	"github.com/j-kappa/ticketing-system/internal/infrastructure/repository"
	"github.com/j-kappa/ticketing-system/internal/infrastructure/storage"
	attachmenthandlers "github.com/j-kappa/ticketing-system/internal/interfaces/http/handlers/attachment"
	healthhandlers "github.com/j-kappa/ticketing-system/internal/interfaces/http/handlers/health"
	statshandlers "github.com/j-kappa/ticketing-system/internal/interfaces/http/handlers/stats"
	teamhandlers "github.com/j-kappa/ticketing-system/internal/interfaces/http/handlers/team"
	tickethandlers "github.com/j-kappa/ticketing-system/internal/interfaces/http/handlers/ticket"
	"github.com/j-kappa/ticketing-system/internal/interfaces/http/middleware"
	"github.com/j-kappa/ticketing-system/internal/interfaces/http/routes"
	"github.com/j-kappa/ticketing-system/internal/shared/db"
	"github.com/j-kappa/ticketing-system/internal/shared/logger"
)

// Router wires repositories, use cases and handlers onto a gin engine.
type Router struct {
	engine *gin.Engine
}

func NewRouter(gdb *gorm.DB, fileStore storage.FileStore, cfg *config.Config, log logger.Interface) *Router {
	gin.SetMode(ginMode(cfg.Server.Mode))
	engine := gin.New()
	engine.MaxMultipartMemory = cfg.Upload.MaxSizeBytes

	engine.Use(middleware.Recovery())
	engine.Use(middleware.Logger(log))
	engine.Use(middleware.CORS([]string{"*"}))

	registerEnumValidators()

	ticketRepo := repository.NewGormTicketRepository(gdb)
	teamRepo := repository.NewGormTeamRepository(gdb)
	statsRepo := repository.NewGormStatsRepository(gdb)
	txManager := db.NewTransactionManager(gdb)

	ticketHandler := tickethandlers.NewTicketHandler(
		ticketusecases.NewCreateTicketUseCase(ticketRepo, teamRepo, log),
		ticketusecases.NewUpdateTicketUseCase(ticketRepo, teamRepo, log),
		ticketusecases.NewDeleteTicketUseCase(ticketRepo, txManager, fileStore, log),
		ticketusecases.NewGetTicketUseCase(ticketRepo, log),
		ticketusecases.NewListTicketsUseCase(ticketRepo, log),
		ticketusecases.NewAddNoteUseCase(ticketRepo, txManager, log),
		ticketusecases.NewListNotesUseCase(ticketRepo, log),
	)

	attachmentHandler := attachmenthandlers.NewAttachmentHandler(
		ticketusecases.NewAddAttachmentUseCase(ticketRepo, txManager, fileStore, cfg.Upload.MaxSizeBytes, log),
		ticketusecases.NewListAttachmentsUseCase(ticketRepo, log),
		ticketusecases.NewGetAttachmentUseCase(ticketRepo, fileStore, log),
		ticketusecases.NewDeleteAttachmentUseCase(ticketRepo, fileStore, log),
	)

	teamHandler := teamhandlers.NewTeamHandler(
		teamusecases.NewCreateMemberUseCase(teamRepo, log),
		teamusecases.NewUpdateMemberUseCase(teamRepo, log),
		teamusecases.NewDeleteMemberUseCase(teamRepo, log),
		teamusecases.NewGetMemberUseCase(teamRepo, log),
		teamusecases.NewListMembersUseCase(teamRepo, log),
	)

	statsHandler := statshandlers.NewStatsHandler(
		ticketusecases.NewGetDashboardStatsUseCase(statsRepo, log),
	)

	routes.SetupTicketRoutes(engine, &routes.TicketRouteConfig{
		TicketHandler:     ticketHandler,
		AttachmentHandler: attachmentHandler,
	})
	routes.SetupAttachmentRoutes(engine, &routes.AttachmentRouteConfig{
		AttachmentHandler: attachmentHandler,
	})
	routes.SetupTeamRoutes(engine, &routes.TeamRouteConfig{
		TeamHandler: teamHandler,
	})
	routes.SetupStatsRoutes(engine, &routes.StatsRouteConfig{
		StatsHandler:  statsHandler,
		HealthHandler: healthhandlers.NewHealthHandler(gdb),
	})

	return &Router{engine: engine}
}

// Engine exposes the underlying gin engine for the HTTP server and tests.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

func ginMode(mode string) string {
	switch mode {
	case gin.ReleaseMode, gin.TestMode:
		return mode
	default:
		return gin.DebugMode
	}
}
