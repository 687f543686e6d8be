package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/hoverhouse/hoverhouse-api/internal/domain"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserBuilder creates test users with a builder pattern
type UserBuilder struct {
	email    string
	password string
}

// NewUserBuilder creates a new UserBuilder with default values
func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		email:    fmt.Sprintf("testuser_%s@example.com", uuid.New().String()[:8]),
		password: "testpassword123",
	}
}

// WithEmail sets the email
func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.email = email
	return b
}

// WithPassword sets the password
func (b *UserBuilder) WithPassword(password string) *UserBuilder {
	b.password = password
	return b
}

// Build creates the user in the database and returns the user with the raw password
func (b *UserBuilder) Build(t *testing.T, db *gorm.DB) (*domain.User, string) {
	t.Helper()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(b.password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &domain.User{
		ID:           uuid.New(),
		Email:        b.email,
		PasswordHash: string(hashedPassword),
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	return user, b.password
}

// BuildAndAuthenticate signs the user up via the API, logs in, and returns
// the bearer token the server issued.
func (b *UserBuilder) BuildAndAuthenticate(t *testing.T, ts *TestServer) (*domain.User, string) {
	t.Helper()

	user, password := b.Build(t, ts.DB.DB)

	reqBody := map[string]string{
		"email":    user.Email,
		"password": password,
	}
	body, _ := json.Marshal(reqBody)

	resp, err := http.Post(ts.APIURL("/login"), "application/json", bytes.NewBuffer(body))
	if err != nil {
		t.Fatalf("failed to log in: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected login status code: %d", resp.StatusCode)
	}

	var loginResp struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&loginResp); err != nil {
		t.Fatalf("failed to decode login response: %v", err)
	}

	return user, loginResp.Token
}

// PropertyBuilder creates test properties with a builder pattern
type PropertyBuilder struct {
	title     string
	location  string
	price     float64
	image     string
	features  []string
	tags      []string
	details   domain.PropertyDetails
	createdAt time.Time
}

// NewPropertyBuilder creates a new PropertyBuilder with valid defaults
func NewPropertyBuilder() *PropertyBuilder {
	return &PropertyBuilder{
		title:    fmt.Sprintf("Listing %s", uuid.New().String()[:8]),
		location: "Cape Town",
		price:    1250000,
		image:    "https://images.example.com/house.jpg",
		features: []string{},
		tags:     []string{},
		details: domain.PropertyDetails{
			Kitchen: domain.DefaultKitchen,
		},
		createdAt: time.Now(),
	}
}

// WithTitle sets the title
func (b *PropertyBuilder) WithTitle(title string) *PropertyBuilder {
	b.title = title
	return b
}

// WithPrice sets the price
func (b *PropertyBuilder) WithPrice(price float64) *PropertyBuilder {
	b.price = price
	return b
}

// WithCreatedAt sets the creation timestamp, useful for ordering tests
func (b *PropertyBuilder) WithCreatedAt(createdAt time.Time) *PropertyBuilder {
	b.createdAt = createdAt
	return b
}

// WithDetails sets the nested details record
func (b *PropertyBuilder) WithDetails(details domain.PropertyDetails) *PropertyBuilder {
	b.details = details
	return b
}

// Build creates the property in the database
func (b *PropertyBuilder) Build(t *testing.T, db *gorm.DB) *domain.Property {
	t.Helper()

	property := &domain.Property{
		ID:          uuid.New(),
		Title:       b.title,
		Location:    b.location,
		Price:       b.price,
		Description: "A lovely place to live",
		Image:       b.image,
		Features:    b.features,
		Tags:        b.tags,
		Details:     b.details,
		CreatedAt:   b.createdAt,
	}

	if err := db.Create(property).Error; err != nil {
		t.Fatalf("failed to create property: %v", err)
	}

	return property
}
