package ticket

import (
	"context"
	"time"

	vo "github.com/j-kappa/ticketing-system/internal/domain/ticket/valueobjects"
)

// Filter narrows a ticket listing. Nil fields are omitted from the query,
// never matched against null.
type Filter struct {
	Status     *vo.Status
	Priority   *vo.Priority
	Category   *vo.Category
	AssigneeID *uint
	Search     string
	SortBy     string
	SortOrder  string
}

// WithAssignee pairs a ticket with its assignee's contact fields from the
// joined team member row. Both fields are nil for unassigned tickets.
type WithAssignee struct {
	Ticket        *Ticket
	AssigneeName  *string
	AssigneeEmail *string
}

type Repository interface {
	Save(ctx context.Context, t *Ticket) error
	Update(ctx context.Context, t *Ticket) error
	Delete(ctx context.Context, id uint) error
	Exists(ctx context.Context, id uint) (bool, error)
	FindByID(ctx context.Context, id uint) (*WithAssignee, error)
	List(ctx context.Context, filter Filter) ([]WithAssignee, error)

	// Touch refreshes a ticket's updated_at after a child mutation.
	Touch(ctx context.Context, id uint, at time.Time) error

	SaveNote(ctx context.Context, n *Note) error
	FindNotesByTicketID(ctx context.Context, ticketID uint) ([]*Note, error)

	SaveAttachment(ctx context.Context, a *Attachment) error
	FindAttachmentByID(ctx context.Context, id uint) (*Attachment, error)
	FindAttachmentsByTicketID(ctx context.Context, ticketID uint) ([]*Attachment, error)
	DeleteAttachment(ctx context.Context, id uint) error
}

// StatusCounts holds the total ticket count and the count per status.
type StatusCounts struct {
	Total      int64
	New        int64
	InProgress int64
	Resolved   int64
	Closed     int64
}

// PriorityCounts holds per-priority counts over open tickets.
type PriorityCounts struct {
	Urgent int64
	High   int64
	Medium int64
	Low    int64
}

// CategoryCounts holds per-category counts over open tickets.
type CategoryCounts struct {
	Hardware int64
	Software int64
	Network  int64
	Access   int64
}

// MemberWorkload is one team member's open-ticket load. Members with zero
// assigned tickets are included.
type MemberWorkload struct {
	MemberID        uint
	Name            string
	AssignedTickets int64
}

// RecentTicket is a dashboard row for a recently created ticket.
type RecentTicket struct {
	ID           uint
	Title        string
	Status       vo.Status
	Priority     vo.Priority
	Category     vo.Category
	AssigneeName *string
	CreatedAt    time.Time
}

// StatsRepository serves the dashboard aggregates. Each method is an
// independent read; there is no snapshot consistency across them.
type StatsRepository interface {
	StatusCounts(ctx context.Context) (StatusCounts, error)
	OpenPriorityCounts(ctx context.Context) (PriorityCounts, error)
	OpenCategoryCounts(ctx context.Context) (CategoryCounts, error)
	TeamWorkload(ctx context.Context) ([]MemberWorkload, error)
	RecentTickets(ctx context.Context, limit int) ([]RecentTicket, error)
	UnassignedOpenCount(ctx context.Context) (int64, error)
}
