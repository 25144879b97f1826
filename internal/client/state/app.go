package state

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/mindmate/internal/client/chat"
	"github.com/dmitrijs2005/mindmate/internal/client/models"
	"github.com/dmitrijs2005/mindmate/internal/client/store"
	"github.com/dmitrijs2005/mindmate/internal/logging"
)

var ErrEmptyMessage = errors.New("message is empty")

// AppController owns AppState for whichever user the bound AuthController
// reports. It loads that user's snapshot on sign-in, resets on sign-out
// and saves after each mutation while a user is present.
type AppController struct {
	obs       *observable[AppState]
	store     store.Store
	app       string
	logger    logging.Logger
	ids       IDGenerator
	now       func() time.Time
	responder *chat.Responder

	userMu sync.Mutex
	userID string

	unsubscribe func()
}

type AppOption func(*AppController)

func WithIDGenerator(g IDGenerator) AppOption {
	return func(a *AppController) { a.ids = g }
}

func WithClock(now func() time.Time) AppOption {
	return func(a *AppController) { a.now = now }
}

func WithResponder(r *chat.Responder) AppOption {
	return func(a *AppController) { a.responder = r }
}

// NewAppController binds a new controller to auth. The current auth state
// is applied immediately, so a user restored by Bootstrap gets their data
// loaded even if Bootstrap ran first.
func NewAppController(auth *AuthController, s store.Store, appName string, l logging.Logger, opts ...AppOption) *AppController {
	a := &AppController{
		obs:    newObservable(InitialAppState(), AppState.clone),
		store:  s,
		app:    appName,
		logger: l.With("module", "app"),
		now:    time.Now,
	}
	for _, o := range opts {
		o(a)
	}
	if a.ids == nil {
		a.ids = NewTimeIDs(a.now)
	}
	if a.responder == nil {
		a.responder = chat.NewResponder(nil)
	}

	a.unsubscribe = auth.Subscribe(a.onAuthChange)
	a.onAuthChange(auth.State())
	return a
}

// Close detaches the controller from its AuthController.
func (a *AppController) Close() {
	a.unsubscribe()
}

func (a *AppController) State() AppState {
	return a.obs.get()
}

func (a *AppController) Subscribe(fn func(AppState)) (unsubscribe func()) {
	return a.obs.subscribe(fn)
}

// UserID returns the id of the user whose data is loaded, or "".
func (a *AppController) UserID() string {
	a.userMu.Lock()
	defer a.userMu.Unlock()
	return a.userID
}

func (a *AppController) onAuthChange(s AuthState) {
	ctx := context.Background()

	var id string
	if s.User != nil {
		id = s.User.ID
	}

	a.userMu.Lock()
	prev := a.userID
	a.userID = id
	a.userMu.Unlock()

	if id == prev {
		return
	}

	if prev != "" {
		a.dispatch(AppReset{}, false)
	}
	if id != "" {
		a.load(ctx, id)
	}
}

// load replaces the state with the stored snapshot of userID. A missing
// or unreadable snapshot leaves the (empty) state as it is; unreadable
// entries inside a readable snapshot are skipped.
func (a *AppController) load(ctx context.Context, userID string) {
	a.dispatch(AppLoadingSet{Loading: true}, false)
	defer a.dispatch(AppLoadingSet{Loading: false}, false)

	data, err := a.store.Get(ctx, store.DataKey(a.app, userID))
	if err != nil {
		a.logger.Error(ctx, "reading user data", "user_id", userID, "error", err)
		return
	}
	if data == nil {
		return
	}

	snap, dropped, err := models.DecodeSnapshot(data)
	if err != nil {
		a.logger.Error(ctx, "decoding user data", "user_id", userID, "error", err)
		return
	}
	if dropped > 0 {
		a.logger.Warn(ctx, "skipped unreadable entries", "user_id", userID, "dropped", dropped)
	}

	a.dispatch(SnapshotLoaded{Snapshot: snap}, false)
}

// dispatch applies action and, when persist is set, saves the result.
func (a *AppController) dispatch(action AppAction, persist bool) AppState {
	var effect func(AppState)
	if persist {
		effect = a.save
	}
	return a.obs.dispatch(func(s AppState) AppState { return ReduceApp(s, action) }, effect)
}

// save writes the snapshot of s for the current user. Nothing is written
// without a user or while every collection is empty.
func (a *AppController) save(s AppState) {
	ctx := context.Background()

	userID := a.UserID()
	snap := s.Snapshot()
	if userID == "" || snap.Empty() {
		return
	}

	data, err := json.Marshal(snap)
	if err != nil {
		a.logger.Error(ctx, "encoding user data", "error", err)
		return
	}
	if err := a.store.Set(ctx, store.DataKey(a.app, userID), data); err != nil {
		a.logger.Error(ctx, "saving user data", "user_id", userID, "error", err)
	}
}

// AddMoodEntry logs a mood. Invalid input leaves the state untouched.
func (a *AppController) AddMoodEntry(ctx context.Context, mood models.MoodLabel, intensity int, notes string) (models.MoodEntry, error) {
	if err := models.ValidateMood(mood, intensity); err != nil {
		return models.MoodEntry{}, err
	}

	entry := models.MoodEntry{
		ID:        a.ids.Next(),
		Mood:      mood,
		Intensity: intensity,
		Notes:     notes,
		Timestamp: a.now(),
	}
	a.dispatch(MoodAdded{Entry: entry}, true)
	return entry, nil
}

// AddHabit creates a habit with a zero streak.
func (a *AppController) AddHabit(ctx context.Context, d models.HabitDraft) (models.Habit, error) {
	if err := d.Validate(); err != nil {
		return models.Habit{}, err
	}

	h := models.Habit{
		ID:          a.ids.Next(),
		Name:        strings.TrimSpace(d.Name),
		Description: d.Description,
		Category:    d.Category,
	}
	a.dispatch(HabitAdded{Habit: h}, true)
	return h, nil
}

// ToggleHabit flips the habit with id and returns its new value. An
// unknown id is a no-op reported by ok=false.
func (a *AppController) ToggleHabit(ctx context.Context, id string) (h models.Habit, ok bool) {
	if !hasHabit(a.State().Habits, id) {
		return models.Habit{}, false
	}

	s := a.dispatch(HabitToggled{ID: id, At: a.now()}, true)
	for _, x := range s.Habits {
		if x.ID == id {
			return x, true
		}
	}
	return models.Habit{}, false
}

func hasHabit(habits []models.Habit, id string) bool {
	for _, h := range habits {
		if h.ID == id {
			return true
		}
	}
	return false
}

func (a *AppController) AddChatMessage(ctx context.Context, ex models.ChatExchange) {
	a.dispatch(ChatMessageAdded{Exchange: ex}, true)
}

// SendChatMessage records text and the companion's reply as one exchange.
func (a *AppController) SendChatMessage(ctx context.Context, text string) (models.ChatExchange, error) {
	if strings.TrimSpace(text) == "" {
		return models.ChatExchange{}, ErrEmptyMessage
	}

	ex := models.ChatExchange{
		UserMessage: models.ChatMessage{
			ID:        a.ids.Next(),
			Type:      models.SenderUser,
			Content:   text,
			Timestamp: a.now(),
		},
	}
	ex.AIResponse = models.ChatMessage{
		ID:        a.ids.Next(),
		Type:      models.SenderAI,
		Content:   a.responder.Respond(text),
		Timestamp: a.now(),
	}

	a.AddChatMessage(ctx, ex)
	return ex, nil
}
