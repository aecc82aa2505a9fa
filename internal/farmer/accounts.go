// Package farmer backs the farmer app: accounts keyed by FarmID and each
// farm's crop listings.
package farmer

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"cropconnect-backend/internal/mock"
	"cropconnect-backend/internal/model"
	"cropconnect-backend/internal/store"
	"cropconnect-backend/internal/validation"
)

const accountsKey = "farmerUsers"

// MinPasswordLength applies to registration and password changes.
const MinPasswordLength = 6

var (
	ErrInvalidCredentials = errors.New("farmer: invalid credentials")
	ErrUnknownFarm        = errors.New("farmer: unknown farm id")
)

type account struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	ContactNumber string `json:"contact_number"`
	PasswordHash  []byte `json:"password_hash"`
	ProfilePic    string `json:"profile_pic,omitempty"`
}

func (a account) profile(farmID string) model.Farmer {
	return model.Farmer{
		FarmID:        farmID,
		Name:          a.Name,
		Email:         a.Email,
		ContactNumber: a.ContactNumber,
		ProfilePic:    a.ProfilePic,
	}
}

// Registration is the farmer sign-up form.
type Registration struct {
	Name          string `json:"name" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	ContactNumber string `json:"contact_number" validate:"required,contact"`
	Password      string `json:"password" validate:"required,min=6"`
}

// Accounts stores farmer credentials and profiles in one map value.
type Accounts struct {
	mu    sync.Mutex
	kv    store.KV
	delay time.Duration
	cost  int
}

// NewAccounts returns an Accounts store. delay is the simulated registration
// round-trip.
func NewAccounts(kv store.KV, delay time.Duration) *Accounts {
	return &Accounts{kv: kv, delay: delay, cost: bcrypt.DefaultCost}
}

func (a *Accounts) load(ctx context.Context) (map[string]account, error) {
	accts := map[string]account{}
	err := store.GetJSON(ctx, a.kv, accountsKey, &accts)
	if errors.Is(err, store.ErrNotFound) {
		return accts, nil
	}
	return accts, err
}

func (a *Accounts) save(ctx context.Context, accts map[string]account) error {
	return store.SetJSON(ctx, a.kv, accountsKey, accts)
}

// Register creates an account and returns its new FarmID ("FM" + 4 digits).
func (a *Accounts) Register(ctx context.Context, reg Registration) (string, error) {
	if err := validation.Struct(reg); err != nil {
		return "", err
	}
	if err := mock.Pause(ctx, a.delay); err != nil {
		return "", err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(reg.Password), a.cost)
	if err != nil {
		return "", fmt.Errorf("farmer: hash password: %w", err)
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	accts, err := a.load(ctx)
	if err != nil {
		log.Printf("Farmer: registration failed loading accounts: %v", err)
		return "", fmt.Errorf("farmer: could not save user data: %w", err)
	}
	farmID := newFarmID(accts)
	accts[farmID] = account{
		Name:          reg.Name,
		Email:         reg.Email,
		ContactNumber: reg.ContactNumber,
		PasswordHash:  hash,
	}
	if err := a.save(ctx, accts); err != nil {
		return "", fmt.Errorf("farmer: could not save user data: %w", err)
	}
	log.Printf("Farmer: registered %s", farmID)
	return farmID, nil
}

func newFarmID(existing map[string]account) string {
	for {
		id := fmt.Sprintf("FM%d", 1000+rand.Intn(9000))
		if _, taken := existing[id]; !taken {
			return id
		}
	}
}

// Login checks name, FarmID and password together.
func (a *Accounts) Login(ctx context.Context, name, farmID, password string) (model.Farmer, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	accts, err := a.load(ctx)
	if err != nil {
		return model.Farmer{}, err
	}
	acct, ok := accts[farmID]
	if !ok || acct.Name != name {
		return model.Farmer{}, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword(acct.PasswordHash, []byte(password)) != nil {
		return model.Farmer{}, ErrInvalidCredentials
	}
	return acct.profile(farmID), nil
}

// ChangePassword replaces the password after checking the current one.
func (a *Accounts) ChangePassword(ctx context.Context, farmID, current, next string) error {
	if len(next) < MinPasswordLength {
		return &validation.Error{Kind: validation.MalformedField, Field: "password",
			Message: "New password must be at least 6 characters long."}
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	accts, err := a.load(ctx)
	if err != nil {
		return err
	}
	acct, ok := accts[farmID]
	if !ok {
		return ErrUnknownFarm
	}
	if bcrypt.CompareHashAndPassword(acct.PasswordHash, []byte(current)) != nil {
		return ErrInvalidCredentials
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(next), a.cost)
	if err != nil {
		return fmt.Errorf("farmer: hash password: %w", err)
	}
	acct.PasswordHash = hash
	accts[farmID] = acct
	return a.save(ctx, accts)
}

// UpdateProfilePic stores the picture (a data URL or link) on the profile.
func (a *Accounts) UpdateProfilePic(ctx context.Context, farmID, pic string) (model.Farmer, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	accts, err := a.load(ctx)
	if err != nil {
		return model.Farmer{}, err
	}
	acct, ok := accts[farmID]
	if !ok {
		return model.Farmer{}, ErrUnknownFarm
	}
	acct.ProfilePic = pic
	accts[farmID] = acct
	if err := a.save(ctx, accts); err != nil {
		return model.Farmer{}, err
	}
	return acct.profile(farmID), nil
}

// Exists reports whether farmID is registered.
func (a *Accounts) Exists(ctx context.Context, farmID string) (bool, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	accts, err := a.load(ctx)
	if err != nil {
		return false, err
	}
	_, ok := accts[farmID]
	return ok, nil
}
