package handlers

import (
	"log/slog"

	"github.com/ihdeveloper/nateq-server/dispatch"
	"github.com/ihdeveloper/nateq-server/envelope"
	"github.com/ihdeveloper/nateq-server/registry"
)

// GroupFunction creates groups owned by the authenticated client.
type GroupFunction struct {
	groups  *registry.Groups
	archive Archiver
}

func NewGroupFunction(groups *registry.Groups, archive Archiver) *GroupFunction {
	return &GroupFunction{groups: groups, archive: archive}
}

func (f *GroupFunction) Name() string    { return "Group" }
func (f *GroupFunction) NeedsAuth() bool { return true }

func (f *GroupFunction) On(method string, params, body dispatch.Params, principal registry.Principal) *envelope.Envelope {
	if body == nil || method != "create" {
		return dispatch.RequireMethod()
	}

	if principal == nil {
		return envelope.New(envelope.CodeNeedAuth, map[string]any{
			"message": "You need to auth yourself for this!",
		})
	}

	leader, ok := principal.(*registry.Client)
	if !ok {
		// Screens hold tokens too, but only clients may lead groups.
		return envelope.New(envelope.CodePermissionDenied, map[string]any{
			"message": "Permission denied",
		})
	}

	return f.create(body, leader)
}

func (f *GroupFunction) create(body dispatch.Params, leader *registry.Client) *envelope.Envelope {
	if e := dispatch.Require(body, "id"); e != nil {
		return e
	}
	if e := dispatch.Require(body, "name"); e != nil {
		return e
	}
	id := dispatch.Str(body, "id")
	name := dispatch.Str(body, "name")

	group := f.groups.Create(id, name, leader)
	if group == nil {
		return envelope.New(envelope.CodeInvalid, map[string]any{
			"message": "Group ID is exist!",
		})
	}

	if f.archive != nil {
		f.archive.SaveGroup(group)
	}

	slog.Info("group created", "function", f.Name(), "id", id, "leader", leader.ID)
	return envelope.OK(map[string]any{
		"id":      id,
		"name":    name,
		"message": "Successfully created your new group!",
	})
}
