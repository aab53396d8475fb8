package routes

import (
	"github.com/gin-gonic/gin"

	attachmenthandlers "github.com/j-kappa/ticketing-system/internal/interfaces/http/handlers/attachment"
	tickethandlers "github.com/j-kappa/ticketing-system/internal/interfaces/http/handlers/ticket"
)

type TicketRouteConfig struct {
	TicketHandler     *tickethandlers.TicketHandler
	AttachmentHandler *attachmenthandlers.AttachmentHandler
}

func SetupTicketRoutes(engine *gin.Engine, config *TicketRouteConfig) {
	tickets := engine.Group("/tickets")
	{
		tickets.GET("", config.TicketHandler.ListTickets)
		tickets.POST("", config.TicketHandler.CreateTicket)

		tickets.GET("/:id/notes", config.TicketHandler.ListNotes)
		tickets.POST("/:id/notes", config.TicketHandler.AddNote)
		tickets.GET("/:id/attachments", config.AttachmentHandler.ListByTicket)
		tickets.POST("/:id/attachments", config.AttachmentHandler.Upload)

		tickets.GET("/:id", config.TicketHandler.GetTicket)
		tickets.PUT("/:id", config.TicketHandler.UpdateTicket)
		tickets.DELETE("/:id", config.TicketHandler.DeleteTicket)
	}
}
