package service

import (
	"github.com/hoverhouse/hoverhouse-api/internal/config"
	"github.com/hoverhouse/hoverhouse-api/internal/repository"
)

type Services struct {
	Auth     *AuthService
	Property *PropertyService
}

func NewServices(repos *repository.Repositories, cfg *config.Config) *Services {
	return &Services{
		Auth:     NewAuthService(repos.User, cfg),
		Property: NewPropertyService(repos.Property),
	}
}
