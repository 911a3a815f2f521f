package services

import (
	"context"
	"strings"

	"hotel-booking/models"
	"hotel-booking/repositories"
)

type FacilityService struct {
	store *repositories.Store
}

func NewFacilityService(store *repositories.Store) *FacilityService {
	return &FacilityService{store: store}
}

func (s *FacilityService) List(ctx context.Context) ([]models.Facility, error) {
	return s.store.Facilities.GetAll(ctx)
}

func (s *FacilityService) Create(ctx context.Context, title string) (*models.Facility, error) {
	f := models.Facility{Title: strings.TrimSpace(title)}
	if err := s.store.Facilities.Add(ctx, &f); err != nil {
		return nil, err
	}
	return &f, nil
}
