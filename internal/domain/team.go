package domain

import "time"

// Team é a fronteira multi-tenant: registros diários e dashboards de time
// pertencem a um time e são visíveis aos seus membros.
type Team struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	OwnerID   int       `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TeamMember representa o vínculo de um usuário a um time
type TeamMember struct {
	TeamID   string    `json:"team_id"`
	UserID   int       `json:"user_id"`
	Name     string    `json:"name"`
	Lastname string    `json:"lastname"`
	Email    string    `json:"email"`
	JoinedAt time.Time `json:"joined_at"`
}
