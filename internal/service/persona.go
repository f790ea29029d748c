package service

import (
	"critic.app/backend/internal/model"
	"critic.app/backend/internal/persona"
)

type PersonaService interface {
	List() []model.Persona
}

type personaService struct{}

func NewPersonaService() PersonaService {
	return personaService{}
}

func (personaService) List() []model.Persona {
	return persona.All()
}
