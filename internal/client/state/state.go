// Package state holds the console's global application state: layout flags
// and the auth slice. State changes only through Dispatch, and Reduce is the
// single place where transitions are defined.
package state

import "github.com/2018dayanan/bus-booking-admin-panel/internal/client/models"

// Themes the console knows how to draw.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// AuthState is the auth slice. IsAuthenticated implies User != nil, and
// Loading is true only between LoginStart and its matching success or
// failure.
type AuthState struct {
	IsAuthenticated bool
	User            models.User
	Loading         bool
	Error           string
}

type State struct {
	SidebarShow bool
	Theme       string
	Auth        AuthState
}

// Action is any value passed to Dispatch. Unknown actions are no-ops.
type Action any

// Set shallow-merges layout fields. Nil fields are left alone; the auth
// slice cannot be reached through Set.
type Set struct {
	SidebarShow *bool
	Theme       *string
}

type LoginStart struct{}

// LoginSuccess carries the authenticated user. A nil User is ignored.
type LoginSuccess struct {
	User models.User
}

// LoginFailure stops loading and records the message. Whether a session
// exists is not its concern.
type LoginFailure struct {
	Error string
}

type Logout struct{}

// Reduce returns the state that follows s after a. It never mutates s.
func Reduce(s State, a Action) State {
	switch a := a.(type) {
	case Set:
		if a.SidebarShow != nil {
			s.SidebarShow = *a.SidebarShow
		}
		if a.Theme != nil {
			s.Theme = *a.Theme
		}
	case LoginStart:
		s.Auth.Loading = true
		s.Auth.Error = ""
	case LoginSuccess:
		if a.User == nil {
			return s
		}
		s.Auth = AuthState{IsAuthenticated: true, User: a.User.Clone()}
	case LoginFailure:
		s.Auth.Loading = false
		s.Auth.Error = a.Error
	case Logout:
		s.Auth = AuthState{}
	}
	return s
}

// Initial is the state before Bootstrap reads the Token Store.
func Initial() State {
	return State{SidebarShow: true, Theme: ThemeLight}
}

func Bool(v bool) *bool       { return &v }
func String(v string) *string { return &v }
