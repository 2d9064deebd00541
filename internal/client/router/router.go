package router

import (
	"context"
	"fmt"
	"sync"

	"github.com/2018dayanan/bus-booking-admin-panel/internal/client/guard"
	"github.com/2018dayanan/bus-booking-admin-panel/internal/common"
)

// Location is one history entry. From is set on the login location when
// the user was bounced there from a protected one.
type Location struct {
	Path   string
	Route  Route
	Params map[string]string
	From   string
}

func (l Location) Param(name string) string {
	return l.Params[name]
}

// Checker is the guard as the router sees it.
type Checker interface {
	Check(ctx context.Context) guard.Decision
}

// Outcome tells the caller what a navigation did.
type Outcome struct {
	Location Location
	Decision guard.Decision
	// Redirected is true when the guard sent the user to login instead.
	Redirected bool
}

type Router struct {
	mu      sync.Mutex
	routes  []Route
	guard   Checker
	history []Location
}

// New builds a router positioned at "/".
func New(routes []Route, g Checker) *Router {
	r := &Router{routes: routes, guard: g}
	home, _ := r.resolve("/")
	r.history = []Location{home}
	return r
}

func (r *Router) resolve(path string) (Location, error) {
	path = Clean(path)
	for _, rt := range r.routes {
		if params, ok := match(rt.Pattern, path); ok {
			return Location{Path: path, Route: rt, Params: params}, nil
		}
	}
	return Location{Path: path}, fmt.Errorf("%w: %s", common.ErrRouteNotFound, path)
}

func (r *Router) Current() Location {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.history[len(r.history)-1]
}

// Depth is the number of history entries.
func (r *Router) Depth() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.history)
}

// Navigate pushes path. A protected path is checked first: while a login
// is loading nothing moves; without a session the login location is
// entered instead, remembering path as From.
func (r *Router) Navigate(ctx context.Context, path string) (Outcome, error) {
	return r.enter(ctx, path, false)
}

// Redirect replaces the current entry with path, under the same guard
// rules as Navigate.
func (r *Router) Redirect(ctx context.Context, path string) (Outcome, error) {
	return r.enter(ctx, path, true)
}

// Back pops one entry and re-guards the location it lands on. At the
// first entry it does nothing and reports false.
func (r *Router) Back(ctx context.Context) (Outcome, bool) {
	r.mu.Lock()
	if len(r.history) < 2 {
		loc := r.history[0]
		r.mu.Unlock()
		return Outcome{Location: loc, Decision: guard.Authorized}, false
	}
	r.history = r.history[:len(r.history)-1]
	loc := r.history[len(r.history)-1]
	r.mu.Unlock()

	if !loc.Route.Protected {
		return Outcome{Location: loc, Decision: guard.Authorized}, true
	}
	out, err := r.enter(ctx, loc.Path, true)
	if err != nil {
		return Outcome{Location: loc, Decision: guard.Authorized}, true
	}
	return out, true
}

func (r *Router) enter(ctx context.Context, path string, replace bool) (Outcome, error) {
	loc, err := r.resolve(path)
	if err != nil {
		return Outcome{}, err
	}

	decision := guard.Authorized
	if loc.Route.Protected {
		decision = r.guard.Check(ctx)
	}

	switch decision {
	case guard.Loading:
		return Outcome{Location: r.Current(), Decision: guard.Loading}, nil
	case guard.Unauthorized:
		login, _ := r.resolve(common.LoginPath)
		login.From = loc.Path
		r.put(login, replace)
		return Outcome{Location: login, Decision: guard.Unauthorized, Redirected: true}, nil
	}

	r.put(loc, replace)
	return Outcome{Location: loc, Decision: guard.Authorized}, nil
}

func (r *Router) put(loc Location, replace bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if replace {
		r.history[len(r.history)-1] = loc
		return
	}
	r.history = append(r.history, loc)
}
