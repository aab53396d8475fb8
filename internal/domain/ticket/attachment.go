package ticket

import (
	"fmt"
	"time"
)

// Attachment is an uploaded file associated with a ticket. The backing file
// lives on disk under a generated name; the original name survives only in
// metadata.
type Attachment struct {
	id           uint
	ticketID     uint
	filename     string
	originalName string
	mimetype     string
	size         int64
	createdAt    time.Time
}

func NewAttachment(ticketID uint, filename, originalName, mimetype string, size int64) (*Attachment, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if len(filename) == 0 {
		return nil, fmt.Errorf("stored filename is required")
	}
	if len(originalName) == 0 {
		return nil, fmt.Errorf("original filename is required")
	}
	if len(mimetype) == 0 {
		return nil, fmt.Errorf("mimetype is required")
	}
	if size < 0 {
		return nil, fmt.Errorf("size cannot be negative")
	}

	return &Attachment{
		ticketID:     ticketID,
		filename:     filename,
		originalName: originalName,
		mimetype:     mimetype,
		size:         size,
		createdAt:    time.Now(),
	}, nil
}

func ReconstructAttachment(
	id, ticketID uint,
	filename, originalName, mimetype string,
	size int64,
	createdAt time.Time,
) (*Attachment, error) {
	if id == 0 {
		return nil, fmt.Errorf("attachment ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}

	return &Attachment{
		id:           id,
		ticketID:     ticketID,
		filename:     filename,
		originalName: originalName,
		mimetype:     mimetype,
		size:         size,
		createdAt:    createdAt,
	}, nil
}

func (a *Attachment) ID() uint {
	return a.id
}

func (a *Attachment) TicketID() uint {
	return a.ticketID
}

func (a *Attachment) Filename() string {
	return a.filename
}

func (a *Attachment) OriginalName() string {
	return a.originalName
}

func (a *Attachment) Mimetype() string {
	return a.mimetype
}

func (a *Attachment) Size() int64 {
	return a.size
}

func (a *Attachment) CreatedAt() time.Time {
	return a.createdAt
}

func (a *Attachment) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("attachment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("attachment ID cannot be zero")
	}
	a.id = id
	return nil
}
