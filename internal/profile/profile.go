package profile

import (
	"fmt"
	"sync"

	pkgerrors "github.com/angelmondragon/shopfront/pkg/errors"
	"github.com/angelmondragon/shopfront/pkg/validation"
)

// Profile is the account and delivery details edited on the settings screen.
type Profile struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required,numeric,min=10,max=13"`
	AltPhone string `json:"altPhone" validate:"omitempty,numeric,min=10,max=13"`
	City     string `json:"city" validate:"required"`
	Town     string `json:"town" validate:"required"`
	Street   string `json:"street" validate:"required"`
}

// Field describes one editable input.
type Field struct {
	Key   string
	Label string
}

var fields = []Field{
	{Key: "name", Label: "Name"},
	{Key: "email", Label: "Email"},
	{Key: "phone", Label: "Phone"},
	{Key: "altPhone", Label: "Alternative Phone"},
	{Key: "city", Label: "City"},
	{Key: "town", Label: "Town"},
	{Key: "street", Label: "Street (Delivery Address)"},
}

// Fields lists the editable inputs in form order.
func Fields() []Field {
	return append([]Field(nil), fields...)
}

// Default is the profile a fresh session starts with.
func Default() Profile {
	return Profile{
		Name:     "Ian Shihundu",
		Email:    "ian@example.com",
		Phone:    "0712345678",
		AltPhone: "0798765432",
		City:     "Nairobi",
		Town:     "Westlands",
		Street:   "Peponi Road",
	}
}

// Get returns the value of the field named key.
func (p Profile) Get(key string) (string, bool) {
	ptr := p.field(key)
	if ptr == nil {
		return "", false
	}
	return *ptr, true
}

func (p *Profile) field(key string) *string {
	switch key {
	case "name":
		return &p.Name
	case "email":
		return &p.Email
	case "phone":
		return &p.Phone
	case "altPhone":
		return &p.AltPhone
	case "city":
		return &p.City
	case "town":
		return &p.Town
	case "street":
		return &p.Street
	}
	return nil
}

// Settings holds the saved profile and the draft being edited.
type Settings struct {
	mu    sync.Mutex
	saved Profile
	draft Profile
}

// NewSettings starts editing from initial.
func NewSettings(initial Profile) *Settings {
	return &Settings{saved: initial, draft: initial}
}

// Set changes one draft field. Unknown keys are rejected.
func (s *Settings) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	ptr := s.draft.field(key)
	if ptr == nil {
		return pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("unknown profile field %q", key)).
			WithDetails(map[string]string{key: "is not editable"})
	}
	*ptr = value
	return nil
}

// Save validates the draft and makes it the saved profile.
func (s *Settings) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := validation.Struct(s.draft); err != nil {
		return err
	}
	s.saved = s.draft
	return nil
}

// Reset discards unsaved edits.
func (s *Settings) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft = s.saved
}

// Profile returns the saved profile.
func (s *Settings) Profile() Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saved
}

// Draft returns the profile being edited.
func (s *Settings) Draft() Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft
}

// Counter is any list that can report its size.
type Counter interface {
	Len() int
}

// Stats are the counters shown under the profile header.
type Stats struct {
	Orders   int
	Wishlist int
	Cart     int
}

// StatsFor reads the counters from the live lists. Nil lists count as zero.
func StatsFor(orders, wishlist, cart Counter) Stats {
	return Stats{
		Orders:   count(orders),
		Wishlist: count(wishlist),
		Cart:     count(cart),
	}
}

func count(c Counter) int {
	if c == nil {
		return 0
	}
	return c.Len()
}
