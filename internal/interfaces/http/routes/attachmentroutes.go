package routes

import (
	"github.com/gin-gonic/gin"

	attachmenthandlers "github.com/j-kappa/ticketing-system/internal/interfaces/http/handlers/attachment"
)

type AttachmentRouteConfig struct {
	AttachmentHandler *attachmenthandlers.AttachmentHandler
}

// SetupAttachmentRoutes registers the routes addressed by attachment ID.
// Upload and per-ticket listing live under /tickets.
func SetupAttachmentRoutes(engine *gin.Engine, config *AttachmentRouteConfig) {
	attachments := engine.Group("/attachments")
	{
		attachments.GET("/:id", config.AttachmentHandler.Serve)
		attachments.DELETE("/:id", config.AttachmentHandler.Delete)
	}
}
