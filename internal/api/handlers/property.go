package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hoverhouse/hoverhouse-api/internal/domain"
	"github.com/hoverhouse/hoverhouse-api/internal/httputil"
	"github.com/hoverhouse/hoverhouse-api/internal/service"
)

type PropertyHandler struct {
	propertyService *service.PropertyService
}

func NewPropertyHandler(propertyService *service.PropertyService) *PropertyHandler {
	return &PropertyHandler{propertyService: propertyService}
}

type PropertyDetailsRequest struct {
	Bedrooms    int    `json:"bedrooms"`
	Bathrooms   int    `json:"bathrooms"`
	Garages     int    `json:"garages"`
	LivingRooms int    `json:"livingRooms"`
	Kitchen     string `json:"kitchen"`
	FloorSize   string `json:"floorSize"`
	ErfSize     string `json:"erfSize"`
	YearBuilt   *int   `json:"yearBuilt"`
}

type CreatePropertyRequest struct {
	Title       string                  `json:"title"`
	Location    string                  `json:"location"`
	Price       float64                 `json:"price"`
	Description string                  `json:"description"`
	Image       string                  `json:"image"`
	Features    []string                `json:"features"`
	Tags        []string                `json:"tags"`
	Details     *PropertyDetailsRequest `json:"details"`
}

// UpdatePropertyRequest uses pointer fields so that absent and zero-valued
// fields can be told apart during the partial merge.
type UpdatePropertyRequest struct {
	Title       *string                 `json:"title"`
	Location    *string                 `json:"location"`
	Price       *float64                `json:"price"`
	Description *string                 `json:"description"`
	Image       *string                 `json:"image"`
	Features    *[]string               `json:"features"`
	Tags        *[]string               `json:"tags"`
	Details     *PropertyDetailsRequest `json:"details"`
}

type PropertyEnvelope struct {
	Message  string           `json:"message"`
	Property *domain.Property `json:"property"`
}

func (h *PropertyHandler) List(w http.ResponseWriter, r *http.Request) {
	properties, err := h.propertyService.List(r.Context())
	if err != nil {
		httputil.RespondError(w, "Server error", http.StatusInternalServerError)
		return
	}

	httputil.RespondJSON(w, properties, http.StatusOK)
}

func (h *PropertyHandler) Get(w http.ResponseWriter, r *http.Request) {
	property, err := h.propertyService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, service.ErrPropertyNotFound) {
			httputil.RespondError(w, "Property not found", http.StatusNotFound)
			return
		}
		httputil.RespondError(w, "Server error", http.StatusInternalServerError)
		return
	}

	httputil.RespondJSON(w, property, http.StatusOK)
}

func (h *PropertyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreatePropertyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.RespondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	property, err := h.propertyService.Create(r.Context(), service.CreatePropertyInput{
		Title:       req.Title,
		Location:    req.Location,
		Price:       req.Price,
		Description: req.Description,
		Image:       req.Image,
		Features:    req.Features,
		Tags:        req.Tags,
		Details:     detailsInput(req.Details),
	})
	if err != nil {
		if isValidationError(err) {
			httputil.RespondError(w, err.Error(), http.StatusBadRequest)
			return
		}
		httputil.RespondError(w, "Server error", http.StatusInternalServerError)
		return
	}

	httputil.RespondJSON(w, PropertyEnvelope{
		Message:  "Property created",
		Property: property,
	}, http.StatusCreated)
}

func (h *PropertyHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req UpdatePropertyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.RespondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	property, err := h.propertyService.Update(r.Context(), chi.URLParam(r, "id"), service.UpdatePropertyInput{
		Title:       req.Title,
		Location:    req.Location,
		Price:       req.Price,
		Description: req.Description,
		Image:       req.Image,
		Features:    req.Features,
		Tags:        req.Tags,
		Details:     detailsInput(req.Details),
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPropertyNotFound):
			httputil.RespondError(w, "Property not found", http.StatusNotFound)
		case isValidationError(err):
			httputil.RespondError(w, err.Error(), http.StatusBadRequest)
		default:
			httputil.RespondError(w, "Server error", http.StatusInternalServerError)
		}
		return
	}

	httputil.RespondJSON(w, PropertyEnvelope{
		Message:  "Property updated",
		Property: property,
	}, http.StatusOK)
}

func (h *PropertyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.propertyService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, service.ErrPropertyNotFound) {
			httputil.RespondError(w, "Property not found", http.StatusNotFound)
			return
		}
		httputil.RespondError(w, "Server error", http.StatusInternalServerError)
		return
	}

	httputil.RespondMessage(w, "Property deleted", http.StatusOK)
}

func detailsInput(req *PropertyDetailsRequest) *service.PropertyDetailsInput {
	if req == nil {
		return nil
	}
	return &service.PropertyDetailsInput{
		Bedrooms:    req.Bedrooms,
		Bathrooms:   req.Bathrooms,
		Garages:     req.Garages,
		LivingRooms: req.LivingRooms,
		Kitchen:     req.Kitchen,
		FloorSize:   req.FloorSize,
		ErfSize:     req.ErfSize,
		YearBuilt:   req.YearBuilt,
	}
}

func isValidationError(err error) bool {
	return errors.Is(err, domain.ErrMissingTitle) ||
		errors.Is(err, domain.ErrMissingLocation) ||
		errors.Is(err, domain.ErrMissingPrice) ||
		errors.Is(err, domain.ErrMissingDescription) ||
		errors.Is(err, domain.ErrInvalidImageURL)
}
