package dispatch

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/ihdeveloper/nateq-server/envelope"
	"github.com/ihdeveloper/nateq-server/registry"
)

// Params carries the request inputs handed to a Function: query parameters
// for GET-style calls, decoded JSON body fields for create/auth calls.
type Params map[string]any

// Function is the contract every resource handler implements. On receives
// the method segment, the query params, the decoded body (nil when absent)
// and the resolved principal (nil when no auth or verification failed).
type Function interface {
	Name() string
	NeedsAuth() bool
	On(method string, params, body Params, principal registry.Principal) *envelope.Envelope
}

// TokenResolver resolves a bearer token to a principal. Both the screen and
// the client registries implement it.
type TokenResolver interface {
	VerifyToken(token string) registry.Principal
}

// Dispatcher runs Functions against inbound requests: method check first,
// then the auth gate, then the handler.
type Dispatcher struct {
	resolvers []TokenResolver
}

func NewDispatcher(resolvers ...TokenResolver) *Dispatcher {
	return &Dispatcher{resolvers: resolvers}
}

// Run executes a Function for a request. The method segment comes from the
// route; an empty segment short-circuits before the handler is reached.
// Functions that do not need auth never see the Authentication header.
func (d *Dispatcher) Run(fn Function, r *http.Request, method string) *envelope.Envelope {
	if method == "" {
		return envelope.New(envelope.CodeMethodNotFound, map[string]any{
			"message": "The method is not exist in the request",
		})
	}

	params := queryParams(r)
	body := jsonBody(r)

	if !fn.NeedsAuth() {
		return fn.On(method, params, body, nil)
	}

	token, ok := bearerToken(r)
	if !ok {
		// Malformed or absent header: the handler decides whether an
		// anonymous call is acceptable.
		return fn.On(method, params, body, nil)
	}

	var principal registry.Principal
	for _, resolver := range d.resolvers {
		if principal = resolver.VerifyToken(token); principal != nil {
			break
		}
	}
	return fn.On(method, params, body, principal)
}

// bearerToken extracts the token from the Authentication header. The
// expected form is "JWT <token>": scheme name case-sensitive, single space.
func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authentication")
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "JWT" {
		return "", false
	}
	return parts[1], true
}

func queryParams(r *http.Request) Params {
	params := Params{}
	for key, values := range r.URL.Query() {
		if len(values) > 0 {
			params[key] = values[0]
		}
	}
	return params
}

func jsonBody(r *http.Request) Params {
	if r.Body == nil {
		return nil
	}
	defer r.Body.Close()

	var body Params
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return nil
	}
	return body
}

// Require returns a REQUIRE envelope naming the field when it is missing,
// nil when present. Handlers call it once per required field in a fixed
// order, short-circuiting on the first miss, so the caller always sees the
// first-declared missing field.
func Require(params Params, field string) *envelope.Envelope {
	if params != nil {
		if _, ok := params[field]; ok {
			return nil
		}
	}
	return envelope.New(envelope.CodeRequire, map[string]any{
		"message": fmt.Sprintf("The request require %q", field),
	})
}

// RequireMethod is the canned answer for a method segment the Function
// does not recognize.
func RequireMethod() *envelope.Envelope {
	return envelope.New(envelope.CodeMethodNotSupported, map[string]any{
		"message": "The method is not exist to work with it in the function",
	})
}

// Str coerces a param to a string. Query values already are strings; JSON
// bodies may carry numbers.
func Str(params Params, field string) string {
	switch v := params[field].(type) {
	case string:
		return v
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

// Int coerces a param to an int, accepting JSON numbers and numeric
// strings.
func Int(params Params, field string) (int, bool) {
	switch v := params[field].(type) {
	case float64:
		return int(v), true
	case int:
		return v, true
	case string:
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}
