package state

import "github.com/dmitrijs2005/mindmate/internal/client/models"

// AuthState is the signed-in user as seen by the client.
type AuthState struct {
	User            *models.User
	IsAuthenticated bool
	IsLoading       bool
	Error           string
}

// InitialAuthState is the state before Bootstrap has looked at the store.
func InitialAuthState() AuthState {
	return AuthState{IsLoading: true}
}

func (s AuthState) clone() AuthState {
	if s.User != nil {
		u := *s.User
		s.User = &u
	}
	return s
}

// AuthAction is a message understood by ReduceAuth.
type AuthAction interface {
	authAction()
}

type (
	// AuthLoadingSet changes only IsLoading.
	AuthLoadingSet struct{ Loading bool }
	// AuthRequested marks the start of a login or register call.
	AuthRequested struct{}
	// AuthUserSet installs a user; a nil user leaves the client signed out.
	AuthUserSet struct{ User *models.User }
	// AuthFailed records a failed call.
	AuthFailed struct{ Message string }
	AuthErrorCleared struct{}
	// AuthLoggedOut drops the user. IsLoading is left as it was.
	AuthLoggedOut struct{}
)

func (AuthLoadingSet) authAction()   {}
func (AuthRequested) authAction()    {}
func (AuthUserSet) authAction()      {}
func (AuthFailed) authAction()       {}
func (AuthErrorCleared) authAction() {}
func (AuthLoggedOut) authAction()    {}

// ReduceAuth is the pure transition function of the auth state.
func ReduceAuth(s AuthState, a AuthAction) AuthState {
	switch a := a.(type) {
	case AuthLoadingSet:
		s.IsLoading = a.Loading
	case AuthRequested:
		s.IsLoading = true
		s.Error = ""
	case AuthUserSet:
		s.User = a.User
		s.IsAuthenticated = a.User != nil
		s.IsLoading = false
		s.Error = ""
	case AuthFailed:
		s.Error = a.Message
		s.IsLoading = false
	case AuthErrorCleared:
		s.Error = ""
	case AuthLoggedOut:
		s.User = nil
		s.IsAuthenticated = false
		s.Error = ""
	}
	return s
}
