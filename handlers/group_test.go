package handlers

import (
	"strings"
	"testing"

	"github.com/ihdeveloper/nateq-server/dispatch"
	"github.com/ihdeveloper/nateq-server/envelope"
	"github.com/ihdeveloper/nateq-server/registry"
)

func newTestClient(t *testing.T, clients *registry.Clients, username string) *registry.Client {
	t.Helper()
	client, err := clients.Register(username, "pw", registry.TypeLeader, "Lead", "Er", "SA", true, "1")
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	return client
}

func TestGroupCreate(t *testing.T) {
	clients := registry.NewClients(testSecret)
	groups := registry.NewGroups()
	archive := &fakeArchiver{}
	leader := newTestClient(t, clients, "leader1")
	fn := NewGroupFunction(groups, archive)

	body := dispatch.Params{"id": "g1", "name": "Team"}
	resp := fn.On("create", nil, body, leader)
	wantCode(t, resp, envelope.CodeOK)

	data := envelopeData(t, resp)
	if data["id"] != "g1" || data["name"] != "Team" {
		t.Errorf("data = %v, want id g1 and name Team", data)
	}

	group := groups.Get("g1")
	if group == nil {
		t.Fatal("group was not created")
	}
	if group.Leader != leader {
		t.Error("leader is not the calling client")
	}
	if archive.groupCount() != 1 {
		t.Errorf("archive writes = %d, want 1", archive.groupCount())
	}
}

func TestGroupCreateDuplicateID(t *testing.T) {
	clients := registry.NewClients(testSecret)
	groups := registry.NewGroups()
	leader := newTestClient(t, clients, "leader1")
	rival := newTestClient(t, clients, "leader2")
	fn := NewGroupFunction(groups, nil)

	resp := fn.On("create", nil, dispatch.Params{"id": "g1", "name": "Team"}, leader)
	wantCode(t, resp, envelope.CodeOK)

	resp = fn.On("create", nil, dispatch.Params{"id": "g1", "name": "Rivals"}, rival)
	wantCode(t, resp, envelope.CodeInvalid)

	if groups.Get("g1").Leader != leader {
		t.Error("duplicate create changed the original group's leader")
	}
}

func TestGroupAuthGate(t *testing.T) {
	clients := registry.NewClients(testSecret)
	screens := registry.NewScreens(testSecret, "ar")
	groups := registry.NewGroups()
	fn := NewGroupFunction(groups, nil)

	screen, err := screens.Register("gate-7", "pw")
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	body := dispatch.Params{"id": "g1", "name": "Team"}

	// No principal at all.
	resp := fn.On("create", nil, body, nil)
	wantCode(t, resp, envelope.CodeNeedAuth)

	// A screen holds a valid token but is the wrong kind of principal.
	resp = fn.On("create", nil, body, screen)
	wantCode(t, resp, envelope.CodePermissionDenied)

	if groups.Get("g1") != nil {
		t.Fatal("gated requests must not create groups")
	}

	_ = clients
}

func TestGroupValidation(t *testing.T) {
	clients := registry.NewClients(testSecret)
	groups := registry.NewGroups()
	leader := newTestClient(t, clients, "leader1")
	fn := NewGroupFunction(groups, nil)

	resp := fn.On("create", nil, dispatch.Params{}, leader)
	wantCode(t, resp, envelope.CodeRequire)
	if message, _ := envelopeData(t, resp)["message"].(string); !strings.Contains(message, `"id"`) {
		t.Errorf("first missing field should be id, got %q", message)
	}

	resp = fn.On("create", nil, dispatch.Params{"id": "g1"}, leader)
	wantCode(t, resp, envelope.CodeRequire)
	if message, _ := envelopeData(t, resp)["message"].(string); !strings.Contains(message, `"name"`) {
		t.Errorf("second missing field should be name, got %q", message)
	}

	// Without a body the method contract fails before the auth gate.
	resp = fn.On("create", nil, nil, nil)
	wantCode(t, resp, envelope.CodeMethodNotSupported)

	resp = fn.On("disband", nil, dispatch.Params{"id": "g1"}, leader)
	wantCode(t, resp, envelope.CodeMethodNotSupported)
}
