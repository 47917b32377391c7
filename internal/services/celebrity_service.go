// filepath: internal/services/celebrity_service.go
package services

import (
	"context"
	"fmt"
	"strings"

	"reelhub/internal/audit"
	"reelhub/internal/models"
	"reelhub/internal/registry"
	"reelhub/internal/shared"
)

var _ CelebrityService = (*celebrityService)(nil)

// celebrityService handles business logic for the celebrity catalog.
type celebrityService struct {
	Registry *registry.Registry[*models.Person]
	Auditor  audit.Auditor
}

// NewCelebrityService creates a new CelebrityService.
func NewCelebrityService(reg *registry.Registry[*models.Person], auditor audit.Auditor) *celebrityService {
	return &celebrityService{Registry: reg, Auditor: auditor}
}

func (s *celebrityService) Create(ctx context.Context, actor string, person *models.Person) (*models.Person, error) {
	if person.ID != 0 {
		return nil, fmt.Errorf("%w: identity must be unset on create", shared.ErrInvalidInput)
	}
	if err := validatePerson(person); err != nil {
		return nil, err
	}

	id, err := s.Registry.Save(person)
	if err != nil {
		return nil, err
	}
	s.Auditor.Log(ctx, "celebrity.create", actor, fmt.Sprintf("Person:%d", id), map[string]interface{}{
		"name": person.FullName(),
	})
	return person.Clone(), nil
}

func (s *celebrityService) Get(id int64) (*models.Person, error) {
	return s.Registry.FindByID(id)
}

func (s *celebrityService) List() []*models.Person {
	return s.Registry.All()
}

func (s *celebrityService) Update(ctx context.Context, actor string, person *models.Person) (*models.Person, error) {
	if person.ID == 0 {
		return nil, fmt.Errorf("%w: identity is required on update", shared.ErrInvalidInput)
	}
	if err := validatePerson(person); err != nil {
		return nil, err
	}

	if _, err := s.Registry.Save(person); err != nil {
		return nil, err
	}
	s.Auditor.Log(ctx, "celebrity.update", actor, fmt.Sprintf("Person:%d", person.ID), map[string]interface{}{
		"name": person.FullName(),
	})
	return person.Clone(), nil
}

func (s *celebrityService) Delete(ctx context.Context, actor string, id int64) error {
	if err := s.Registry.Delete(id); err != nil {
		return err
	}
	s.Auditor.Log(ctx, "celebrity.delete", actor, fmt.Sprintf("Person:%d", id), nil)
	return nil
}

// FindByName returns all celebrities whose full name contains the given
// substring, case-insensitive, in insertion order.
func (s *celebrityService) FindByName(name string) []*models.Person {
	needle := strings.ToLower(strings.TrimSpace(name))
	all := s.Registry.All()
	if needle == "" {
		return all
	}

	out := make([]*models.Person, 0, len(all))
	for _, person := range all {
		if strings.Contains(strings.ToLower(person.FullName()), needle) {
			out = append(out, person)
		}
	}
	return out
}

func validatePerson(person *models.Person) error {
	person.FirstName = strings.TrimSpace(person.FirstName)
	person.LastName = strings.TrimSpace(person.LastName)
	if person.FirstName == "" && person.LastName == "" {
		return fmt.Errorf("%w: a name is required", shared.ErrInvalidInput)
	}
	switch person.Kind {
	case models.KindActor, models.KindDirector:
	case "":
		person.Kind = models.KindActor
	default:
		return fmt.Errorf("%w: unknown person kind %q", shared.ErrInvalidInput, person.Kind)
	}
	return nil
}
