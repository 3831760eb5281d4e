package db

import (
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/ihdeveloper/nateq-server/registry"
)

// Store writes registration documents to the archive database. Writes are
// asynchronous and fire-and-forget: failures are logged, never reported to
// the caller, and nothing is ever read back into the registries.
type Store struct {
	db *sql.DB
	wg sync.WaitGroup
}

// Open connects to the archive. databaseType selects the driver: "sqlite"
// (modernc) or "postgres" (lib/pq).
func Open(databaseType, databaseURL string) (*Store, error) {
	var driver string
	switch databaseType {
	case "sqlite":
		driver = "sqlite"
	case "postgres":
		driver = "postgres"
	default:
		return nil, fmt.Errorf("unsupported database type %q", databaseType)
	}

	conn, err := sql.Open(driver, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open archive: %w", err)
	}
	if driver == "sqlite" {
		// sqlite serializes writers anyway; a single connection also keeps
		// in-memory databases on one handle.
		conn.SetMaxOpenConns(1)
	}
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping archive: %w", err)
	}

	return &Store{db: conn}, nil
}

// CreateSchema creates the archive tables on the store's connection.
func (s *Store) CreateSchema() error {
	return CreateSchema(s.db)
}

// Close waits for in-flight writes and closes the connection.
func (s *Store) Close() error {
	s.wg.Wait()
	return s.db.Close()
}

// SaveMember archives a client document. Only MEMBER clients are persisted.
func (s *Store) SaveMember(client *registry.Client) {
	if client.Type != registry.TypeMember {
		return
	}
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		if err := s.insertMember(client); err != nil {
			slog.Error("failed to archive member", "username", client.Username, "error", err)
		}
	}()
}

// SaveGroup archives a group document.
func (s *Store) SaveGroup(group *registry.Group) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		if err := s.insertGroup(group); err != nil {
			slog.Error("failed to archive group", "group", group.ID, "error", err)
		}
	}()
}

func (s *Store) insertMember(client *registry.Client) error {
	gender := 0
	if client.Gender {
		gender = 1
	}
	_, err := s.db.Exec(`
		INSERT INTO members (id, username, password, type, firstname, lastname, nationality, gender, phonenumber)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, uuid.NewString(), client.Username, client.Password, int(client.Type),
		client.Firstname, client.Lastname, client.Nationality, gender, client.PhoneNumber)
	return err
}

func (s *Store) insertGroup(group *registry.Group) error {
	_, err := s.db.Exec(`
		INSERT INTO groups (id, group_id, name, leader, members)
		VALUES ($1, $2, $3, $4, $5)
	`, uuid.NewString(), group.ID, group.Name, group.Leader.ID,
		strings.Join(group.MemberIDs(), ","))
	return err
}
