package registry

import (
	"fmt"
	"sync"

	"github.com/ihdeveloper/nateq-server/auth"
)

// clientKeyPrefix namespaces client ids inside the registry so usernames
// cannot collide with other id spaces.
const clientKeyPrefix = "username"

// Clients is the in-memory client registry. It lives for the process
// lifetime; nothing is reloaded from the archive on restart.
type Clients struct {
	mu      sync.RWMutex
	secret  string
	clients map[string]*Client
}

func NewClients(secret string) *Clients {
	return &Clients{
		secret:  secret,
		clients: make(map[string]*Client),
	}
}

// Register constructs a client, mints its token, and inserts it into the
// registry. A colliding username silently replaces the previous entry.
func (r *Clients) Register(username, password string, typ ClientType, firstname, lastname, nationality string, gender bool, phonenumber string) (*Client, error) {
	id := clientKeyPrefix + username
	token, err := auth.SignToken(r.secret, id, password)
	if err != nil {
		return nil, fmt.Errorf("failed to sign client token: %w", err)
	}

	client := &Client{
		ID:          id,
		Username:    username,
		Password:    password,
		Token:       token,
		Type:        typ,
		Firstname:   firstname,
		Lastname:    lastname,
		Nationality: nationality,
		Gender:      gender,
		PhoneNumber: phonenumber,
		Languages:   []string{},
	}

	r.mu.Lock()
	r.clients[id] = client
	r.mu.Unlock()

	return client, nil
}

// Get looks up a client by username.
func (r *Clients) Get(username string) *Client {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.clients[clientKeyPrefix+username]
}

// CheckPassword returns a freshly signed token when the password matches.
// The token is deterministic, so this reissues the registration token.
func (r *Clients) CheckPassword(client *Client, password string) (string, bool) {
	if client == nil || client.Password != password {
		return "", false
	}
	token, err := auth.SignToken(r.secret, client.ID, client.Password)
	if err != nil {
		return "", false
	}
	return token, true
}

// VerifyToken decodes a bearer token and resolves the embedded id to a
// registered client. Returns nil when the token is invalid or the id is
// unknown.
func (r *Clients) VerifyToken(token string) Principal {
	id, err := auth.DecodeToken(r.secret, token)
	if err != nil {
		return nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	client, ok := r.clients[id]
	if !ok {
		return nil
	}
	return client
}
