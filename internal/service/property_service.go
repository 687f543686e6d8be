package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/hoverhouse/hoverhouse-api/internal/domain"
	"github.com/hoverhouse/hoverhouse-api/internal/repository"
	"gorm.io/gorm"
)

var ErrPropertyNotFound = errors.New("property not found")

type PropertyService struct {
	propertyRepo repository.PropertyRepository
}

func NewPropertyService(propertyRepo repository.PropertyRepository) *PropertyService {
	return &PropertyService{propertyRepo: propertyRepo}
}

type PropertyDetailsInput struct {
	Bedrooms    int
	Bathrooms   int
	Garages     int
	LivingRooms int
	Kitchen     string
	FloorSize   string
	ErfSize     string
	YearBuilt   *int
}

type CreatePropertyInput struct {
	Title       string
	Location    string
	Price       float64
	Description string
	Image       string
	Features    []string
	Tags        []string
	Details     *PropertyDetailsInput
}

type UpdatePropertyInput struct {
	Title       *string
	Location    *string
	Price       *float64
	Description *string
	Image       *string
	Features    *[]string
	Tags        *[]string
	Details     *PropertyDetailsInput
}

func (s *PropertyService) List(ctx context.Context) ([]*domain.Property, error) {
	return s.propertyRepo.ListNewestFirst(ctx)
}

// Get treats a malformed id the same as an absent one: both report not-found.
func (s *PropertyService) Get(ctx context.Context, rawID string) (*domain.Property, error) {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return nil, ErrPropertyNotFound
	}

	property, err := s.propertyRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPropertyNotFound
		}
		return nil, err
	}
	return property, nil
}

func (s *PropertyService) Create(ctx context.Context, input CreatePropertyInput) (*domain.Property, error) {
	if err := validateRequired(input); err != nil {
		return nil, err
	}

	property := &domain.Property{
		ID:          uuid.New(),
		Title:       input.Title,
		Location:    input.Location,
		Price:       input.Price,
		Description: input.Description,
		Image:       input.Image,
		Features:    sliceOrEmpty(input.Features),
		Tags:        sliceOrEmpty(input.Tags),
		Details:     detailsFromInput(input.Details),
		CreatedAt:   time.Now(),
	}

	if err := s.propertyRepo.Create(ctx, property); err != nil {
		return nil, err
	}
	return property, nil
}

// Update merges the provided fields into the stored record. A provided
// details object replaces the stored details wholesale.
func (s *PropertyService) Update(ctx context.Context, rawID string, input UpdatePropertyInput) (*domain.Property, error) {
	property, err := s.Get(ctx, rawID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		property.Title = *input.Title
	}
	if input.Location != nil {
		property.Location = *input.Location
	}
	if input.Price != nil {
		property.Price = *input.Price
	}
	if input.Description != nil {
		property.Description = *input.Description
	}
	if input.Image != nil {
		if !domain.ValidImageURL(*input.Image) {
			return nil, domain.ErrInvalidImageURL
		}
		property.Image = *input.Image
	}
	if input.Features != nil {
		property.Features = sliceOrEmpty(*input.Features)
	}
	if input.Tags != nil {
		property.Tags = sliceOrEmpty(*input.Tags)
	}
	if input.Details != nil {
		property.Details = detailsFromInput(input.Details)
	}

	if err := s.propertyRepo.Update(ctx, property); err != nil {
		return nil, err
	}
	return property, nil
}

func (s *PropertyService) Delete(ctx context.Context, rawID string) error {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return ErrPropertyNotFound
	}

	if err := s.propertyRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPropertyNotFound
		}
		return err
	}
	return nil
}

func validateRequired(input CreatePropertyInput) error {
	switch {
	case input.Title == "":
		return domain.ErrMissingTitle
	case input.Location == "":
		return domain.ErrMissingLocation
	case input.Price == 0:
		return domain.ErrMissingPrice
	case input.Description == "":
		return domain.ErrMissingDescription
	case !domain.ValidImageURL(input.Image):
		return domain.ErrInvalidImageURL
	}
	return nil
}

func detailsFromInput(input *PropertyDetailsInput) domain.PropertyDetails {
	details := domain.PropertyDetails{
		Kitchen: domain.DefaultKitchen,
	}
	if input == nil {
		return details
	}

	details.Bedrooms = input.Bedrooms
	details.Bathrooms = input.Bathrooms
	details.Garages = input.Garages
	details.LivingRooms = input.LivingRooms
	details.FloorSize = input.FloorSize
	details.ErfSize = input.ErfSize
	details.YearBuilt = input.YearBuilt
	if input.Kitchen != "" {
		details.Kitchen = input.Kitchen
	}
	return details
}

func sliceOrEmpty(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
