package model

type PersonaID string

const (
	PersonaEnthusiastic PersonaID = "enthusiastic"
	PersonaAnalytical   PersonaID = "analytical"
	PersonaConstructive PersonaID = "constructive"
	PersonaCreative     PersonaID = "creative"
)

// Persona is a named critique personality. Values are defined once at
// process start and never mutated.
type Persona struct {
	ID           PersonaID `json:"id"`
	DisplayName  string    `json:"name"`
	Role         string    `json:"role"`
	Avatar       string    `json:"avatar"`
	Instructions string    `json:"-"`
}
