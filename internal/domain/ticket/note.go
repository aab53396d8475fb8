package ticket

import (
	"fmt"
	"time"
)

// Note is a timestamped free-text comment attached to a ticket. Its lifecycle
// is bound to the parent ticket.
type Note struct {
	id         uint
	ticketID   uint
	authorName string
	content    string
	createdAt  time.Time
}

func NewNote(ticketID uint, authorName, content string) (*Note, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if len(authorName) == 0 {
		return nil, fmt.Errorf("author name is required")
	}
	if len(content) == 0 {
		return nil, fmt.Errorf("content is required")
	}

	return &Note{
		ticketID:   ticketID,
		authorName: authorName,
		content:    content,
		createdAt:  time.Now(),
	}, nil
}

func ReconstructNote(id, ticketID uint, authorName, content string, createdAt time.Time) (*Note, error) {
	if id == 0 {
		return nil, fmt.Errorf("note ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}

	return &Note{
		id:         id,
		ticketID:   ticketID,
		authorName: authorName,
		content:    content,
		createdAt:  createdAt,
	}, nil
}

func (n *Note) ID() uint {
	return n.id
}

func (n *Note) TicketID() uint {
	return n.ticketID
}

func (n *Note) AuthorName() string {
	return n.authorName
}

func (n *Note) Content() string {
	return n.content
}

func (n *Note) CreatedAt() time.Time {
	return n.createdAt
}

func (n *Note) SetID(id uint) error {
	if n.id != 0 {
		return fmt.Errorf("note ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("note ID cannot be zero")
	}
	n.id = id
	return nil
}
