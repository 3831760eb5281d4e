package registry

import (
	"errors"
	"fmt"
	"sync"

	"github.com/ihdeveloper/nateq-server/auth"
)

var ErrScreenExists = errors.New("screen id already registered")

// Screen is a registered information screen.
type Screen struct {
	ID       string
	Password string
	Token    string

	mu              sync.Mutex
	currentLanguage string
	print           bool
}

func (s *Screen) PrincipalID() string { return s.ID }
func (s *Screen) sealed()             {}

// SetCurrentLanguage records the language the screen is displaying.
func (s *Screen) SetCurrentLanguage(lang string) {
	s.mu.Lock()
	s.currentLanguage = lang
	s.mu.Unlock()
}

func (s *Screen) CurrentLanguage() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentLanguage
}

// SetHasPrint records whether the screen can print papers or send SMS.
func (s *Screen) SetHasPrint(print bool) {
	s.mu.Lock()
	s.print = print
	s.mu.Unlock()
}

func (s *Screen) HasPrint() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.print
}

// Screens is the in-memory screen registry, keyed by raw screen id.
type Screens struct {
	mu              sync.RWMutex
	secret          string
	defaultLanguage string
	screens         map[string]*Screen
}

func NewScreens(secret, defaultLanguage string) *Screens {
	return &Screens{
		secret:          secret,
		defaultLanguage: defaultLanguage,
		screens:         make(map[string]*Screen),
	}
}

// Register creates a screen. Unlike client registration, a colliding id is
// rejected before anything is constructed and the registry is unchanged.
func (r *Screens) Register(id, password string) (*Screen, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.screens[id]; ok {
		return nil, ErrScreenExists
	}

	token, err := auth.SignToken(r.secret, id, password)
	if err != nil {
		return nil, fmt.Errorf("failed to sign screen token: %w", err)
	}

	screen := &Screen{
		ID:              id,
		Password:        password,
		Token:           token,
		currentLanguage: r.defaultLanguage,
	}
	r.screens[id] = screen
	return screen, nil
}

// Exists reports whether a screen id is registered.
func (r *Screens) Exists(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.screens[id]
	return ok
}

// Get looks up a screen by id.
func (r *Screens) Get(id string) *Screen {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.screens[id]
}

// CheckPassword returns a freshly signed token when the password matches.
func (r *Screens) CheckPassword(screen *Screen, password string) (string, bool) {
	if screen == nil || screen.Password != password {
		return "", false
	}
	token, err := auth.SignToken(r.secret, screen.ID, screen.Password)
	if err != nil {
		return "", false
	}
	return token, true
}

// VerifyToken decodes a bearer token and resolves the embedded id to a
// registered screen. Returns nil when the token is invalid or unknown.
func (r *Screens) VerifyToken(token string) Principal {
	id, err := auth.DecodeToken(r.secret, token)
	if err != nil {
		return nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	screen, ok := r.screens[id]
	if !ok {
		return nil
	}
	return screen
}
