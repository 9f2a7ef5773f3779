package domain

import (
	"time"
)

// Role labels are free text as far as the store is concerned; these are the
// labels the café actually uses and the ones validation offers in the UI.
const (
	RoleCasual        = "Casual"
	RoleBarista       = "Barista"
	RoleSeniorBarista = "Senior Barista"
	RoleHeadBarista   = "Head Barista"
)

type Barista struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"createdAt"`
}
