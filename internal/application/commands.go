package application

import (
	"strings"

	"github.com/bnema/medicapp-cli/internal/domain"
)

type LoginCommand struct {
	Email    string
	Password string
}

type RegisterCommand struct {
	Name     string
	Email    string
	Password string
	Role     domain.Role
}

func (c RegisterCommand) normalized() RegisterCommand {
	c.Name = strings.TrimSpace(c.Name)
	c.Email = strings.TrimSpace(c.Email)
	c.Role = domain.Role(strings.ToLower(strings.TrimSpace(string(c.Role))))
	return c
}

type RequestGuardCommand struct {
	DoctorID int
	Note     string
}

type RateCommand struct {
	DoctorID int
	Rating   int
	Comment  string
}

type ToggleAvailabilityCommand struct {
	Field domain.AvailabilityField
}
