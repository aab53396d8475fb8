package ticket

import (
	"fmt"
	"time"

	vo "github.com/j-kappa/ticketing-system/internal/domain/ticket/valueobjects"
)

// Ticket is a trackable support issue with lifecycle status, priority,
// category, and optional assignee.
type Ticket struct {
	id           uint
	title        string
	description  string
	reporterName string
	status       vo.Status
	priority     vo.Priority
	category     vo.Category
	assigneeID   *uint
	createdAt    time.Time
	updatedAt    time.Time
}

func NewTicket(
	title string,
	description string,
	reporterName string,
	status vo.Status,
	priority vo.Priority,
	category vo.Category,
	assigneeID *uint,
) (*Ticket, error) {
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > 200 {
		return nil, fmt.Errorf("title exceeds maximum length of 200 characters")
	}
	if len(reporterName) == 0 {
		return nil, fmt.Errorf("reporter name is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}
	if !category.IsValid() {
		return nil, fmt.Errorf("invalid category")
	}

	now := time.Now()

	return &Ticket{
		title:        title,
		description:  description,
		reporterName: reporterName,
		status:       status,
		priority:     priority,
		category:     category,
		assigneeID:   assigneeID,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructTicket(
	id uint,
	title string,
	description string,
	reporterName string,
	status vo.Status,
	priority vo.Priority,
	category vo.Category,
	assigneeID *uint,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}
	if !category.IsValid() {
		return nil, fmt.Errorf("invalid category")
	}

	return &Ticket{
		id:           id,
		title:        title,
		description:  description,
		reporterName: reporterName,
		status:       status,
		priority:     priority,
		category:     category,
		assigneeID:   assigneeID,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (t *Ticket) ID() uint {
	return t.id
}

func (t *Ticket) Title() string {
	return t.title
}

func (t *Ticket) Description() string {
	return t.description
}

func (t *Ticket) ReporterName() string {
	return t.reporterName
}

func (t *Ticket) Status() vo.Status {
	return t.status
}

func (t *Ticket) Priority() vo.Priority {
	return t.priority
}

func (t *Ticket) Category() vo.Category {
	return t.category
}

func (t *Ticket) AssigneeID() *uint {
	return t.assigneeID
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

func (t *Ticket) UpdateTitle(title string) error {
	if len(title) == 0 {
		return fmt.Errorf("title cannot be empty")
	}
	if len(title) > 200 {
		return fmt.Errorf("title exceeds maximum length of 200 characters")
	}
	t.title = title
	t.touch()
	return nil
}

func (t *Ticket) UpdateDescription(description string) {
	t.description = description
	t.touch()
}

func (t *Ticket) UpdateReporterName(reporterName string) error {
	if len(reporterName) == 0 {
		return fmt.Errorf("reporter name cannot be empty")
	}
	t.reporterName = reporterName
	t.touch()
	return nil
}

func (t *Ticket) ChangeStatus(status vo.Status) error {
	if !status.IsValid() {
		return fmt.Errorf("invalid status: %s", status)
	}
	t.status = status
	t.touch()
	return nil
}

func (t *Ticket) ChangePriority(priority vo.Priority) error {
	if !priority.IsValid() {
		return fmt.Errorf("invalid priority: %s", priority)
	}
	t.priority = priority
	t.touch()
	return nil
}

func (t *Ticket) ChangeCategory(category vo.Category) error {
	if !category.IsValid() {
		return fmt.Errorf("invalid category: %s", category)
	}
	t.category = category
	t.touch()
	return nil
}

// Assign replaces the assignee unconditionally. A nil ID unassigns the ticket.
func (t *Ticket) Assign(assigneeID *uint) {
	t.assigneeID = assigneeID
	t.touch()
}

func (t *Ticket) touch() {
	t.updatedAt = time.Now()
}
