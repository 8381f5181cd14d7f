package repository

import (
	"errors"
	"net/mail"
	"strings"
	"sync"

	"spendtrack/internal/core"
	"spendtrack/internal/currency"
	applog "spendtrack/internal/log"
	"spendtrack/internal/store"
)

const profileKey = "profile"

// DefaultAvatarURL is substituted whenever the profile photo is empty.
const DefaultAvatarURL = "https://ui-avatars.com/api/?name=User&background=random"

var (
	ErrEmptyName       = errors.New("empty name")
	ErrInvalidEmail    = errors.New("invalid email")
	ErrUnknownCurrency = errors.New("unknown currency")
)

// DefaultProfile is the profile created on first access.
func DefaultProfile() core.UserProfile {
	return core.UserProfile{
		Name:     "User",
		Email:    "user@example.com",
		Photo:    DefaultAvatarURL,
		Currency: currency.DefaultCode,
	}
}

// ProfileRepository owns the singleton user profile.
type ProfileRepository struct {
	mu     sync.Mutex
	slot   *store.Slot[core.UserProfile]
	cur    core.UserProfile
	logger *applog.Logger
}

func NewProfileRepository(st store.Store, logger *applog.Logger) *ProfileRepository {
	slot := store.NewSlot(st, profileKey, DefaultProfile(), logger)
	return &ProfileRepository{
		slot:   slot,
		cur:    slot.Get(),
		logger: logger.WithComponent(applog.ComponentProfile),
	}
}

// Get returns the current profile, defaults included on first access.
func (r *ProfileRepository) Get() core.UserProfile {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cur
}

// Update validates and replaces the profile wholesale. An empty photo is
// substituted with the default avatar here, at the write boundary, so every
// reader sees the same defaulting.
func (r *ProfileRepository) Update(p core.UserProfile) error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrEmptyName
	}
	if _, err := mail.ParseAddress(p.Email); err != nil {
		return ErrInvalidEmail
	}
	if !currency.IsKnown(p.Currency) {
		return ErrUnknownCurrency
	}
	if strings.TrimSpace(p.Photo) == "" {
		p.Photo = DefaultAvatarURL
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.cur = p
	r.slot.Put(p)
	r.logger.Info("profile updated",
		applog.FieldCurrency, p.Currency,
		applog.FieldOperation, applog.OpUpdate)
	return nil
}

// Currency returns the active profile currency code. Every money amount in
// the system formats through this code.
func (r *ProfileRepository) Currency() string {
	return r.Get().Currency
}
