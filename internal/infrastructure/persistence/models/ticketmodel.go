package models

type TicketModel struct {
	ID           uint    `gorm:"primaryKey"`
	Title        string  `gorm:"size:200;not null"`
	Description  *string `gorm:"type:text"`
	ReporterName string  `gorm:"size:120;not null"`
	Status       string  `gorm:"size:20;not null;index"`
	Priority     string  `gorm:"size:20;not null;index"`
	Category     string  `gorm:"size:20;not null;index"`
	AssigneeID   *uint   `gorm:"index"`
	CreatedAt    int64   `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt    int64   `gorm:"not null"`

	// Declared so AutoMigrate emits the SET NULL foreign key; never preloaded.
	Assignee *TeamMemberModel `gorm:"foreignKey:AssigneeID;constraint:OnDelete:SET NULL"`
}

func (TicketModel) TableName() string {
	return "tickets"
}

type NoteModel struct {
	ID         uint   `gorm:"primaryKey"`
	TicketID   uint   `gorm:"not null;index"`
	AuthorName string `gorm:"size:120;not null"`
	Content    string `gorm:"type:text;not null"`
	CreatedAt  int64  `gorm:"autoCreateTime:milli;not null;index"`

	Ticket *TicketModel `gorm:"foreignKey:TicketID;constraint:OnDelete:CASCADE"`
}

func (NoteModel) TableName() string {
	return "notes"
}

type AttachmentModel struct {
	ID           uint   `gorm:"primaryKey"`
	TicketID     uint   `gorm:"not null;index"`
	Filename     string `gorm:"size:255;not null;uniqueIndex"`
	OriginalName string `gorm:"size:255;not null"`
	Mimetype     string `gorm:"size:120;not null"`
	Size         int64  `gorm:"not null"`
	CreatedAt    int64  `gorm:"autoCreateTime:milli;not null;index"`

	Ticket *TicketModel `gorm:"foreignKey:TicketID;constraint:OnDelete:CASCADE"`
}

func (AttachmentModel) TableName() string {
	return "attachments"
}
