package state

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/mindmate/internal/client/client"
	"github.com/dmitrijs2005/mindmate/internal/client/models"
	"github.com/dmitrijs2005/mindmate/internal/client/store"
	"github.com/dmitrijs2005/mindmate/internal/logging"
)

const (
	loginFailed        = "Login failed"
	registrationFailed = "Registration failed"
)

// AuthController owns AuthState. Login and Register send the same request:
// the server decides whether the email is new.
type AuthController struct {
	obs    *observable[AuthState]
	client client.Client
	store  store.Store
	key    string
	logger logging.Logger
}

func NewAuthController(c client.Client, s store.Store, appName string, l logging.Logger) *AuthController {
	return &AuthController{
		obs:    newObservable(InitialAuthState(), AuthState.clone),
		client: c,
		store:  s,
		key:    store.UserKey(appName),
		logger: l.With("module", "auth"),
	}
}

// State returns a copy of the current state.
func (a *AuthController) State() AuthState {
	return a.obs.get()
}

// Subscribe registers fn for every later transition and returns a func
// that removes it.
func (a *AuthController) Subscribe(fn func(AuthState)) (unsubscribe func()) {
	return a.obs.subscribe(fn)
}

func (a *AuthController) dispatch(action AuthAction) AuthState {
	return a.obs.dispatch(func(s AuthState) AuthState { return ReduceAuth(s, action) }, nil)
}

// Bootstrap restores the saved user, if any. A record that does not parse
// is deleted; a store read error is logged and treated as no record.
func (a *AuthController) Bootstrap(ctx context.Context) {
	data, err := a.store.Get(ctx, a.key)
	if err != nil {
		a.logger.Warn(ctx, "reading saved user", "error", err)
		a.dispatch(AuthLoadingSet{Loading: false})
		return
	}
	if data == nil {
		a.dispatch(AuthLoadingSet{Loading: false})
		return
	}

	var user *models.User
	if err := json.Unmarshal(data, &user); err != nil || !validUser(user) {
		a.logger.Warn(ctx, "discarding corrupt saved user", "error", err)
		if err := a.store.Delete(ctx, a.key); err != nil {
			a.logger.Error(ctx, "deleting saved user", "error", err)
		}
		a.dispatch(AuthLoadingSet{Loading: false})
		return
	}

	a.dispatch(AuthUserSet{User: user})
}

// Login signs in. The failure message, if any, is also left in State().Error.
func (a *AuthController) Login(ctx context.Context, email, password string) error {
	return a.authenticate(ctx, email, password, loginFailed)
}

// Register creates the account, or signs in if the email is already known.
func (a *AuthController) Register(ctx context.Context, email, password string) error {
	return a.authenticate(ctx, email, password, registrationFailed)
}

func (a *AuthController) authenticate(ctx context.Context, email, password, fallback string) error {
	a.dispatch(AuthRequested{})

	resp, err := a.client.Authenticate(ctx, email, password)
	if err != nil {
		return a.fail(ctx, err.Error())
	}

	if resp.User == nil {
		msg := resp.Error
		if msg == "" {
			msg = resp.Message
		}
		if msg == "" {
			msg = fallback
		}
		return a.fail(ctx, msg)
	}

	if !validUser(resp.User) {
		return a.fail(ctx, fmt.Sprintf("%s: user without id", client.ErrMalformedResponse))
	}

	data, err := json.Marshal(resp.User)
	if err != nil {
		return a.fail(ctx, err.Error())
	}
	if err := a.store.Set(ctx, a.key, data); err != nil {
		return a.fail(ctx, err.Error())
	}

	a.logger.Info(ctx, "signed in", "user_id", resp.User.ID)
	a.dispatch(AuthUserSet{User: resp.User})
	return nil
}

// validUser reports whether u can own stored data. Both a saved record
// and a server response must carry an id.
func validUser(u *models.User) bool {
	return u != nil && u.ID != ""
}

func (a *AuthController) fail(ctx context.Context, msg string) error {
	a.logger.Debug(ctx, "authentication failed", "error", msg)
	a.dispatch(AuthFailed{Message: msg})
	return errors.New(msg)
}

// Logout forgets the saved user. A store failure is logged only.
func (a *AuthController) Logout(ctx context.Context) {
	if err := a.store.Delete(ctx, a.key); err != nil {
		a.logger.Error(ctx, "deleting saved user", "error", err)
	}
	a.dispatch(AuthLoggedOut{})
}

func (a *AuthController) ClearError() {
	a.dispatch(AuthErrorCleared{})
}
