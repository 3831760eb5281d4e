package handlers

import (
	"sync"
	"testing"

	"github.com/ihdeveloper/nateq-server/envelope"
	"github.com/ihdeveloper/nateq-server/registry"
)

const testSecret = "handlers-test-secret"

// fakeArchiver records fire-and-forget writes for assertions.
type fakeArchiver struct {
	mu      sync.Mutex
	members []*registry.Client
	groups  []*registry.Group
}

func (a *fakeArchiver) SaveMember(client *registry.Client) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.members = append(a.members, client)
}

func (a *fakeArchiver) SaveGroup(group *registry.Group) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.groups = append(a.groups, group)
}

func (a *fakeArchiver) memberCount() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.members)
}

func (a *fakeArchiver) groupCount() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.groups)
}

// envelopeData extracts the data object from an envelope built by handlers.
func envelopeData(t *testing.T, e *envelope.Envelope) map[string]any {
	t.Helper()
	data, ok := e.Data.(map[string]any)
	if !ok {
		t.Fatalf("envelope data is %T, want map", e.Data)
	}
	return data
}

func wantCode(t *testing.T, e *envelope.Envelope, code int) {
	t.Helper()
	if e == nil {
		t.Fatal("handler returned nil envelope")
	}
	if e.Code != code {
		t.Fatalf("code = %d, want %d (data: %v)", e.Code, code, e.Data)
	}
}
