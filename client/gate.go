package client

// DefaultLoginRoute is where unauthenticated admin visitors are sent.
const DefaultLoginRoute = "/admin/login"

type Outcome int

const (
	Render Outcome = iota
	Redirect
)

// Decision is the result of a Guard check. Location is set for redirects.
type Decision struct {
	Outcome  Outcome
	Location string
}

// Gate decides whether an admin-only view may be shown. It only checks for a
// stored admin token; the token is validated by the server on the first
// admin call, and a rejected token is cleared from the store.
type Gate struct {
	store      SessionStore
	loginRoute string
}

func NewGate(store SessionStore, loginRoute string) *Gate {
	if loginRoute == "" {
		loginRoute = DefaultLoginRoute
	}
	return &Gate{store: store, loginRoute: loginRoute}
}

func (g *Gate) Guard(requireAdmin bool) Decision {
	if !requireAdmin {
		return Decision{Outcome: Render}
	}
	if token, ok := g.store.Get(KeyAdminToken); ok && token != "" {
		return Decision{Outcome: Render}
	}
	return Decision{Outcome: Redirect, Location: g.loginRoute}
}
