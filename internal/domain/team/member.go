package team

import (
	"fmt"
	"net/mail"
	"strings"
	"time"
)

// Member is a person eligible to be assigned tickets.
type Member struct {
	id        uint
	name      string
	email     string
	createdAt time.Time
}

func NewMember(name, email string) (*Member, error) {
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if len(email) == 0 {
		return nil, fmt.Errorf("email is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("invalid email address: %s", email)
	}

	return &Member{
		name:      name,
		email:     strings.ToLower(email),
		createdAt: time.Now(),
	}, nil
}

func ReconstructMember(id uint, name, email string, createdAt time.Time) (*Member, error) {
	if id == 0 {
		return nil, fmt.Errorf("member ID cannot be zero")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if len(email) == 0 {
		return nil, fmt.Errorf("email is required")
	}

	return &Member{
		id:        id,
		name:      name,
		email:     email,
		createdAt: createdAt,
	}, nil
}

func (m *Member) ID() uint {
	return m.id
}

func (m *Member) Name() string {
	return m.name
}

func (m *Member) Email() string {
	return m.email
}

func (m *Member) CreatedAt() time.Time {
	return m.createdAt
}

func (m *Member) SetID(id uint) error {
	if m.id != 0 {
		return fmt.Errorf("member ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("member ID cannot be zero")
	}
	m.id = id
	return nil
}

func (m *Member) Rename(name string) error {
	if len(name) == 0 {
		return fmt.Errorf("name cannot be empty")
	}
	m.name = name
	return nil
}

func (m *Member) ChangeEmail(email string) error {
	if len(email) == 0 {
		return fmt.Errorf("email cannot be empty")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return fmt.Errorf("invalid email address: %s", email)
	}
	m.email = strings.ToLower(email)
	return nil
}
