// Package login implements the login screen's behaviour independently of
// how it is drawn: field validation, submission against the session
// service, and the redirects around it.
package login

import (
	"context"
	"strings"
	"time"

	"github.com/2018dayanan/bus-booking-admin-panel/internal/client/models"
	"github.com/2018dayanan/bus-booking-admin-panel/internal/client/router"
	"github.com/2018dayanan/bus-booking-admin-panel/internal/client/state"
	"github.com/2018dayanan/bus-booking-admin-panel/internal/client/timeout"
	"github.com/2018dayanan/bus-booking-admin-panel/internal/common"
	"github.com/2018dayanan/bus-booking-admin-panel/internal/logging"
)

// Form field names, also the keys of ValidationError.Fields.
const (
	FieldUsername = "username"
	FieldPassword = "password"
)

// Validation messages.
const (
	MsgUsernameRequired = "Email or Phone is required"
	MsgPasswordRequired = "Password is required"
)

type Phase int

const (
	Idle Phase = iota
	Validating
	Submitting
	Success
	Failure
)

func (p Phase) String() string {
	return [...]string{"idle", "validating", "submitting", "success", "failure"}[p]
}

// Session is the part of the session service the flow uses.
type Session interface {
	Login(ctx context.Context, creds models.Credentials) (*models.LoginResult, error)
	IsAuthenticated(ctx context.Context) bool
	User(ctx context.Context) models.User
}

type Navigator interface {
	Redirect(ctx context.Context, path string) (router.Outcome, error)
}

// Flow holds one login form. Identifier and Secret are the field values;
// they survive a failed submit.
type Flow struct {
	Identifier string
	Secret     string

	session Session
	store   *state.Store
	nav     Navigator
	timeout time.Duration
	log     logging.Logger

	from         string
	phase        Phase
	fieldErrors  map[string]string
	bannerHidden bool
}

func NewFlow(session Session, store *state.Store, nav Navigator, requestTimeout time.Duration, log logging.Logger) *Flow {
	return &Flow{
		session: session,
		store:   store,
		nav:     nav,
		timeout: requestTimeout,
		log:     log,
	}
}

func (f *Flow) Phase() Phase { return f.phase }

// Target is where a successful login lands.
func (f *Flow) Target() string {
	if f.from == "" || f.from == common.LoginPath {
		return common.LandingPath
	}
	return f.from
}

// FieldError returns the validation message shown under field.
func (f *Flow) FieldError(field string) string {
	return f.fieldErrors[field]
}

// Mount prepares the form for display. The state flag and the Token Store
// are reconciled first so the guard and this screen agree; if a session
// exists afterwards the user is redirected to the target and Mount
// reports true.
func (f *Flow) Mount(ctx context.Context, from string) (bool, error) {
	f.from = from
	f.phase = Idle
	f.fieldErrors = nil
	f.bannerHidden = false

	tokenPresent := f.session.IsAuthenticated(ctx)
	auth := f.store.Auth()

	switch {
	case tokenPresent && !auth.IsAuthenticated && !auth.Loading:
		user := f.session.User(ctx)
		if user == nil {
			user = models.User{}
		}
		f.log.Debug(ctx, "restoring session from token store")
		f.store.Dispatch(state.LoginSuccess{User: user})
	case !tokenPresent && auth.IsAuthenticated:
		f.log.Debug(ctx, "dropping session without stored token")
		f.store.Dispatch(state.Logout{})
	}

	if !tokenPresent {
		return false, nil
	}
	if _, err := f.nav.Redirect(ctx, f.Target()); err != nil {
		return false, err
	}
	return true, nil
}

// Validate checks both fields locally. Whitespace-only counts as empty.
func (f *Flow) Validate() error {
	errs := map[string]string{}
	if strings.TrimSpace(f.Identifier) == "" {
		errs[FieldUsername] = MsgUsernameRequired
	}
	if strings.TrimSpace(f.Secret) == "" {
		errs[FieldPassword] = MsgPasswordRequired
	}

	f.fieldErrors = errs
	if len(errs) == 0 {
		return nil
	}
	return &common.ValidationError{Fields: errs}
}

// Submit validates, logs in within the request timeout and updates the
// global state. A validation failure never reaches the network. On
// success the current location is replaced with Target.
func (f *Flow) Submit(ctx context.Context) error {
	f.phase = Validating
	if err := f.Validate(); err != nil {
		f.phase = Idle
		return err
	}

	f.phase = Submitting
	f.bannerHidden = false
	f.store.Dispatch(state.LoginStart{})

	creds := models.Credentials{Identifier: strings.TrimSpace(f.Identifier), Secret: f.Secret}
	res, err := timeout.Race(ctx, f.timeout, func(ctx context.Context) (*models.LoginResult, error) {
		return f.session.Login(ctx, creds)
	})
	if err != nil {
		f.phase = Failure
		msg := common.DisplayMessage(err, common.MsgLoginFailed)
		f.log.Warn(ctx, "login failed", "error", err)
		f.store.Dispatch(state.LoginFailure{Error: msg})
		return err
	}

	f.phase = Success
	f.store.Dispatch(state.LoginSuccess{User: res.User})
	f.Secret = ""

	_, err = f.nav.Redirect(ctx, f.Target())
	return err
}

// Banner is the global error text to show above the form, or "".
func (f *Flow) Banner() string {
	if f.bannerHidden {
		return ""
	}
	return f.store.Auth().Error
}

// DismissError hides the banner on this form. The error stays in the
// global state until the next login attempt.
func (f *Flow) DismissError() {
	f.bannerHidden = true
}
