package domain

import (
	"regexp"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// DefaultKitchen is the kitchen description applied when none is provided.
const DefaultKitchen = "Standard kitchen"

// Listings reference externally hosted images; only direct links to common
// image formats are accepted.
var imageURLPattern = regexp.MustCompile(`^https?://.+\.(jpg|jpeg|png|webp|gif)`)

func ValidImageURL(url string) bool {
	return imageURLPattern.MatchString(url)
}

type PropertyDetails struct {
	Bedrooms    int    `json:"bedrooms"`
	Bathrooms   int    `json:"bathrooms"`
	Garages     int    `json:"garages"`
	LivingRooms int    `json:"livingRooms"`
	Kitchen     string `json:"kitchen"`
	FloorSize   string `json:"floorSize"`
	ErfSize     string `json:"erfSize"`
	YearBuilt   *int   `json:"yearBuilt,omitempty"`
}

type Property struct {
	ID          uuid.UUID                   `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Title       string                      `json:"title" gorm:"not null"`
	Location    string                      `json:"location" gorm:"not null"`
	Price       float64                     `json:"price" gorm:"not null"`
	Description string                      `json:"description" gorm:"not null"`
	Image       string                      `json:"image" gorm:"not null"`
	Features    datatypes.JSONSlice[string] `json:"features"`
	Tags        datatypes.JSONSlice[string] `json:"tags"`
	Details     PropertyDetails             `json:"details" gorm:"embedded;embeddedPrefix:detail_"`
	CreatedAt   time.Time                   `json:"createdAt"`
}
