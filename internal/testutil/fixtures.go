package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/tomd/hero-build-planner/internal/domain"
	"github.com/tomd/hero-build-planner/internal/service"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
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
		email:    fmt.Sprintf("user_%s@example.com", uuid.New().String()[:8]),
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

	roles, _ := json.Marshal([]string{domain.RoleUser})

	user := &domain.User{
		Email:        b.email,
		PasswordHash: string(hashedPassword),
		Roles:        datatypes.JSON(roles),
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	return user, b.password
}

// HeroBuilder creates test heroes
type HeroBuilder struct {
	name        string
	role        string
	description string
	imageURL    *string
}

func NewHeroBuilder() *HeroBuilder {
	return &HeroBuilder{
		name:        fmt.Sprintf("Hero %s", uuid.New().String()[:8]),
		role:        string(domain.RoleTank),
		description: "A test hero",
	}
}

func (b *HeroBuilder) WithName(name string) *HeroBuilder {
	b.name = name
	return b
}

func (b *HeroBuilder) WithRole(role string) *HeroBuilder {
	b.role = role
	return b
}

func (b *HeroBuilder) WithDescription(description string) *HeroBuilder {
	b.description = description
	return b
}

func (b *HeroBuilder) WithImageURL(url string) *HeroBuilder {
	b.imageURL = &url
	return b
}

func (b *HeroBuilder) Build(t *testing.T, db *gorm.DB) *domain.Hero {
	t.Helper()

	hero := &domain.Hero{
		Name:        b.name,
		Role:        b.role,
		Description: b.description,
		ImageURL:    b.imageURL,
	}

	if err := db.Create(hero).Error; err != nil {
		t.Fatalf("failed to create hero: %v", err)
	}

	return hero
}

// AbilityBuilder creates test abilities attached to a hero
type AbilityBuilder struct {
	heroID      uint
	name        string
	description string
	cooldown    *int
	iconURL     *string
}

func NewAbilityBuilder(heroID uint) *AbilityBuilder {
	return &AbilityBuilder{
		heroID:      heroID,
		name:        fmt.Sprintf("Ability %s", uuid.New().String()[:8]),
		description: "A test ability",
	}
}

func (b *AbilityBuilder) WithName(name string) *AbilityBuilder {
	b.name = name
	return b
}

func (b *AbilityBuilder) WithCooldown(seconds int) *AbilityBuilder {
	b.cooldown = &seconds
	return b
}

func (b *AbilityBuilder) Build(t *testing.T, db *gorm.DB) *domain.Ability {
	t.Helper()

	ability := &domain.Ability{
		HeroID:      b.heroID,
		Name:        b.name,
		Description: b.description,
		Cooldown:    b.cooldown,
		IconURL:     b.iconURL,
	}

	if err := db.Create(ability).Error; err != nil {
		t.Fatalf("failed to create ability: %v", err)
	}

	return ability
}

// UpgradeBuilder creates test upgrades attached to an ability
type UpgradeBuilder struct {
	abilityID   uint
	name        string
	description string
	cost        int
	effect      string
}

func NewUpgradeBuilder(abilityID uint) *UpgradeBuilder {
	return &UpgradeBuilder{
		abilityID:   abilityID,
		name:        fmt.Sprintf("Upgrade %s", uuid.New().String()[:8]),
		description: "A test upgrade",
		cost:        100,
		effect:      `{"damage":"+10%"}`,
	}
}

func (b *UpgradeBuilder) WithName(name string) *UpgradeBuilder {
	b.name = name
	return b
}

func (b *UpgradeBuilder) WithCost(cost int) *UpgradeBuilder {
	b.cost = cost
	return b
}

func (b *UpgradeBuilder) WithEffect(effect string) *UpgradeBuilder {
	b.effect = effect
	return b
}

func (b *UpgradeBuilder) Build(t *testing.T, db *gorm.DB) *domain.Upgrade {
	t.Helper()

	upgrade := &domain.Upgrade{
		AbilityID:   b.abilityID,
		Name:        b.name,
		Description: b.description,
		Cost:        b.cost,
		Effect:      datatypes.JSON([]byte(b.effect)),
	}

	if err := db.Create(upgrade).Error; err != nil {
		t.Fatalf("failed to create upgrade: %v", err)
	}

	return upgrade
}

// BuildBuilder creates test builds owned by a user
type BuildBuilder struct {
	userID      uint
	heroID      uint
	name        string
	description string
	isPublic    bool
}

func NewBuildBuilder(userID, heroID uint) *BuildBuilder {
	return &BuildBuilder{
		userID:      userID,
		heroID:      heroID,
		name:        fmt.Sprintf("Build %s", uuid.New().String()[:8]),
		description: "A test build",
	}
}

func (b *BuildBuilder) WithName(name string) *BuildBuilder {
	b.name = name
	return b
}

func (b *BuildBuilder) Public() *BuildBuilder {
	b.isPublic = true
	return b
}

func (b *BuildBuilder) Build(t *testing.T, db *gorm.DB) *domain.Build {
	t.Helper()

	build := &domain.Build{
		UserID:      b.userID,
		HeroID:      b.heroID,
		Name:        b.name,
		Description: b.description,
		IsPublic:    b.isPublic,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := db.Create(build).Error; err != nil {
		t.Fatalf("failed to create build: %v", err)
	}

	return build
}

// RegisterAndLogin creates a user and returns it with a valid access token
func RegisterAndLogin(t *testing.T, ts *TestServer) (*domain.User, string) {
	t.Helper()

	user, password := NewUserBuilder().Build(t, ts.DB.DB)

	result, err := ts.Services.Auth.Login(context.Background(), service.LoginInput{
		Email:    user.Email,
		Password: password,
	})
	if err != nil {
		t.Fatalf("failed to login test user: %v", err)
	}

	return user, result.AccessToken
}

// CreateAuthenticatedRequest creates an HTTP request with auth token
func CreateAuthenticatedRequest(t *testing.T, method, url string, body interface{}, token string) *http.Request {
	t.Helper()

	var bodyReader *bytes.Buffer
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		bodyReader = bytes.NewBuffer(jsonBody)
	} else {
		bodyReader = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequestWithContext(context.Background(), method, url, bodyReader)
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return req
}

// DoRequest executes a request against the default client
func DoRequest(t *testing.T, req *http.Request) *http.Response {
	t.Helper()

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return resp
}
