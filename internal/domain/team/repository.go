package team

import "context"

// ErrDuplicateEmail distinguishes a unique-constraint violation on the email
// column from other persistence failures so callers can surface it as a
// client error rather than a generic 500.
type ErrDuplicateEmail struct {
	Email string
}

func (e *ErrDuplicateEmail) Error() string {
	return "email already exists: " + e.Email
}

// WithOpenCount pairs a member with the number of open tickets assigned to
// them (status != closed).
type WithOpenCount struct {
	Member      *Member
	OpenTickets int64
}

type Repository interface {
	Save(ctx context.Context, m *Member) error
	Update(ctx context.Context, m *Member) error
	Delete(ctx context.Context, id uint) error
	Exists(ctx context.Context, id uint) (bool, error)
	FindByID(ctx context.Context, id uint) (*WithOpenCount, error)

	// List returns all members ordered by name with their open-ticket counts.
	List(ctx context.Context) ([]WithOpenCount, error)
}
