package dto

import (
	"time"

	"github.com/j-kappa/ticketing-system/internal/domain/ticket"
)

type TicketDTO struct {
	ID            uint    `json:"id"`
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	ReporterName  string  `json:"reporter_name"`
	Status        string  `json:"status"`
	Priority      string  `json:"priority"`
	Category      string  `json:"category"`
	AssigneeID    *uint   `json:"assignee_id"`
	AssigneeName  *string `json:"assignee_name"`
	AssigneeEmail *string `json:"assignee_email"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}

type NoteDTO struct {
	ID         uint   `json:"id"`
	TicketID   uint   `json:"ticket_id"`
	AuthorName string `json:"author_name"`
	Content    string `json:"content"`
	CreatedAt  string `json:"created_at"`
}

type AttachmentDTO struct {
	ID           uint   `json:"id"`
	TicketID     uint   `json:"ticket_id"`
	Filename     string `json:"filename"`
	OriginalName string `json:"original_name"`
	Mimetype     string `json:"mimetype"`
	Size         int64  `json:"size"`
	CreatedAt    string `json:"created_at"`
}

// TicketDetailDTO is the single-ticket view with its notes and attachments.
type TicketDetailDTO struct {
	TicketDTO
	Notes       []NoteDTO       `json:"notes"`
	Attachments []AttachmentDTO `json:"attachments"`
}

type StatusCountsDTO struct {
	Total      int64 `json:"total"`
	New        int64 `json:"new"`
	InProgress int64 `json:"in_progress"`
	Resolved   int64 `json:"resolved"`
	Closed     int64 `json:"closed"`
}

type PriorityCountsDTO struct {
	Urgent int64 `json:"urgent"`
	High   int64 `json:"high"`
	Medium int64 `json:"medium"`
	Low    int64 `json:"low"`
}

type CategoryCountsDTO struct {
	Hardware int64 `json:"hardware"`
	Software int64 `json:"software"`
	Network  int64 `json:"network"`
	Access   int64 `json:"access"`
}

type MemberWorkloadDTO struct {
	ID              uint   `json:"id"`
	Name            string `json:"name"`
	AssignedTickets int64  `json:"assigned_tickets"`
}

type RecentTicketDTO struct {
	ID           uint    `json:"id"`
	Title        string  `json:"title"`
	Status       string  `json:"status"`
	Priority     string  `json:"priority"`
	Category     string  `json:"category"`
	AssigneeName *string `json:"assignee_name"`
	CreatedAt    string  `json:"created_at"`
}

type DashboardStatsDTO struct {
	Status          StatusCountsDTO     `json:"status"`
	Priority        PriorityCountsDTO   `json:"priority"`
	Category        CategoryCountsDTO   `json:"category"`
	TeamWorkload    []MemberWorkloadDTO `json:"team_workload"`
	RecentTickets   []RecentTicketDTO   `json:"recent_tickets"`
	UnassignedCount int64               `json:"unassigned_count"`
}

func FormatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func TicketToDTO(wa *ticket.WithAssignee) TicketDTO {
	t := wa.Ticket
	return TicketDTO{
		ID:            t.ID(),
		Title:         t.Title(),
		Description:   t.Description(),
		ReporterName:  t.ReporterName(),
		Status:        t.Status().String(),
		Priority:      t.Priority().String(),
		Category:      t.Category().String(),
		AssigneeID:    t.AssigneeID(),
		AssigneeName:  wa.AssigneeName,
		AssigneeEmail: wa.AssigneeEmail,
		CreatedAt:     FormatTime(t.CreatedAt()),
		UpdatedAt:     FormatTime(t.UpdatedAt()),
	}
}

func NoteToDTO(n *ticket.Note) NoteDTO {
	return NoteDTO{
		ID:         n.ID(),
		TicketID:   n.TicketID(),
		AuthorName: n.AuthorName(),
		Content:    n.Content(),
		CreatedAt:  FormatTime(n.CreatedAt()),
	}
}

func AttachmentToDTO(a *ticket.Attachment) AttachmentDTO {
	return AttachmentDTO{
		ID:           a.ID(),
		TicketID:     a.TicketID(),
		Filename:     a.Filename(),
		OriginalName: a.OriginalName(),
		Mimetype:     a.Mimetype(),
		Size:         a.Size(),
		CreatedAt:    FormatTime(a.CreatedAt()),
	}
}
