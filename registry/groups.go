package registry

import "sync"

// Group is an ad-hoc party of clients owned by exactly one leader.
type Group struct {
	ID     string
	Name   string
	Leader *Client

	mu      sync.Mutex
	members map[string]*Client
}

// AddMember inserts a client into the group and sets the client's
// back-reference. The leader owns the group either way; membership is a
// display relation.
func (g *Group) AddMember(client *Client) {
	g.mu.Lock()
	g.members[client.ID] = client
	g.mu.Unlock()
	client.Group = g
}

// MemberIDs returns the ids of all explicitly added members.
func (g *Group) MemberIDs() []string {
	g.mu.Lock()
	defer g.mu.Unlock()

	ids := make([]string, 0, len(g.members))
	for id := range g.members {
		ids = append(ids, id)
	}
	return ids
}

// Groups is the in-memory group registry.
type Groups struct {
	mu     sync.RWMutex
	groups map[string]*Group
}

func NewGroups() *Groups {
	return &Groups{groups: make(map[string]*Group)}
}

// Create registers a new group with the calling client as leader. Returns
// nil when the id is already taken; the existing group is left untouched.
func (r *Groups) Create(id, name string, leader *Client) *Group {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.groups[id]; ok {
		return nil
	}

	group := &Group{
		ID:      id,
		Name:    name,
		Leader:  leader,
		members: make(map[string]*Client),
	}
	r.groups[id] = group
	return group
}

// Get looks up a group by id.
func (r *Groups) Get(id string) *Group {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.groups[id]
}
