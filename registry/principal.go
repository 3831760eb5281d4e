package registry

// Principal is an authenticated actor capable of holding a token. The
// variant set is closed: Client and Screen are the only implementations,
// and authorization checks switch on the concrete type.
type Principal interface {
	PrincipalID() string

	// sealed marks the interface as closed to outside implementations.
	sealed()
}

// ClientType classifies a client inside its group.
type ClientType int

const (
	TypeMember ClientType = 0
	TypeLeader ClientType = 1
	TypeAdmin  ClientType = 2
)

// Client is a registered pilgrim or staff account. The ID is namespaced
// with the "username" prefix so it can never collide with screen ids.
type Client struct {
	ID          string
	Username    string
	Password    string
	Token       string
	Type        ClientType
	Firstname   string
	Lastname    string
	Nationality string
	Gender      bool
	PhoneNumber string
	Languages   []string

	// Group is a non-owning back-reference set when the client joins a
	// group. Used for display and lookup only.
	Group *Group
}

func (c *Client) PrincipalID() string { return c.ID }
func (c *Client) sealed()             {}
