package ticket

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/j-kappa/ticketing-system/internal/application/ticket/usecases"
	"github.com/j-kappa/ticketing-system/internal/shared/errors"
)

type CreateTicketRequest struct {
	Title        string `json:"title" binding:"required,max=200"`
	Description  string `json:"description"`
	ReporterName string `json:"reporter_name" binding:"required,max=120"`
	Status       string `json:"status" binding:"omitempty,ticketstatus"`
	Priority     string `json:"priority" binding:"omitempty,ticketpriority"`
	Category     string `json:"category" binding:"omitempty,ticketcategory"`
	AssigneeID   *uint  `json:"assignee_id"`
}

func (r CreateTicketRequest) ToCommand() usecases.CreateTicketCommand {
	return usecases.CreateTicketCommand{
		Title:        r.Title,
		Description:  r.Description,
		ReporterName: r.ReporterName,
		Status:       r.Status,
		Priority:     r.Priority,
		Category:     r.Category,
		AssigneeID:   r.AssigneeID,
	}
}

// UpdateTicketRequest is a partial update. Nil fields were absent from the
// body and keep the stored value, except AssigneeID: the decoded value is
// applied as-is, so leaving the key out unassigns the ticket.
type UpdateTicketRequest struct {
	Title        *string `json:"title" binding:"omitempty,max=200"`
	Description  *string `json:"description"`
	ReporterName *string `json:"reporter_name" binding:"omitempty,max=120"`
	Status       *string `json:"status" binding:"omitempty,ticketstatus"`
	Priority     *string `json:"priority" binding:"omitempty,ticketpriority"`
	Category     *string `json:"category" binding:"omitempty,ticketcategory"`
	AssigneeID   *uint   `json:"assignee_id"`
}

func (r UpdateTicketRequest) ToCommand(ticketID uint) usecases.UpdateTicketCommand {
	return usecases.UpdateTicketCommand{
		TicketID:     ticketID,
		Title:        r.Title,
		Description:  r.Description,
		ReporterName: r.ReporterName,
		Status:       r.Status,
		Priority:     r.Priority,
		Category:     r.Category,
		AssigneeID:   r.AssigneeID,
	}
}

type AddNoteRequest struct {
	AuthorName string `json:"author_name" binding:"required,max=120"`
	Content    string `json:"content" binding:"required"`
}

func parseListTicketsQuery(c *gin.Context) (usecases.ListTicketsQuery, error) {
	query := usecases.ListTicketsQuery{
		Status:    c.Query("status"),
		Priority:  c.Query("priority"),
		Category:  c.Query("category"),
		Search:    c.Query("search"),
		SortBy:    c.Query("sort"),
		SortOrder: c.Query("order"),
	}

	if raw := c.Query("assignee_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return query, errors.NewValidationError("invalid assignee_id filter")
		}
		assigneeID := uint(id)
		query.AssigneeID = &assigneeID
	}
	return query, nil
}
