package dto

import (
	"time"

	"github.com/j-kappa/ticketing-system/internal/domain/team"
)

type MemberDTO struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	OpenTickets int64  `json:"open_tickets"`
	CreatedAt   string `json:"created_at"`
}

func MemberToDTO(wc *team.WithOpenCount) MemberDTO {
	m := wc.Member
	return MemberDTO{
		ID:          m.ID(),
		Name:        m.Name(),
		Email:       m.Email(),
		OpenTickets: wc.OpenTickets,
		CreatedAt:   m.CreatedAt().UTC().Format(time.RFC3339),
	}
}
