package cli

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/dmitrijs2005/mindmate/internal/client/client"
	"github.com/dmitrijs2005/mindmate/internal/client/config"
	"github.com/dmitrijs2005/mindmate/internal/client/models"
	"github.com/dmitrijs2005/mindmate/internal/client/store"
	"github.com/dmitrijs2005/mindmate/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAPI accepts any password for a new email and requires the same one
// afterwards.
type fakeAPI struct {
	pw      map[string]string
	pingErr error
}

func (f *fakeAPI) Authenticate(ctx context.Context, email, password string) (*client.AuthResponse, error) {
	if f.pw == nil {
		f.pw = map[string]string{}
	}
	if known, ok := f.pw[email]; ok && known != password {
		return &client.AuthResponse{Error: "Invalid password", StatusCode: 401}, nil
	}
	f.pw[email] = password
	return &client.AuthResponse{
		Message:    "Login successful",
		User:       &models.User{ID: "id-" + email, Email: email},
		StatusCode: 200,
	}, nil
}

func (f *fakeAPI) Ping(ctx context.Context) error { return f.pingErr }

func testConfig() *config.Config {
	c := &config.Config{}
	c.LoadDefaults()
	return c
}

func memStore(t *testing.T) store.Store {
	t.Helper()
	s, db, err := store.Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return s
}

func newTestApp(t *testing.T, api client.Client, s store.Store, input string) *App {
	t.Helper()
	a := newApp(context.Background(), testConfig(), logging.Discard(), api, s)
	a.reader = rdr(input)
	a.out = io.Discard
	t.Cleanup(a.data.Close)
	return a
}

func stubInputs(t *testing.T, email, password string) {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) { return email, nil }
	getPassword = func(_ *bufio.Reader, _ io.Writer) ([]byte, error) { return []byte(password), nil }
	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})
}

func TestLogin_UpdatesStatus(t *testing.T) {
	out := captureOutput(t)
	stubInputs(t, "a@b.com", "pw")
	a := newTestApp(t, &fakeAPI{}, memStore(t), "")

	assert.Equal(t, "guest", a.status())
	assert.False(t, a.isLoggedIn())

	require.NoError(t, a.Login(context.Background()))

	assert.True(t, a.isLoggedIn())
	assert.Equal(t, "a@b.com", a.status())
	assert.Contains(t, *out, "Welcome back! Signed in as a@b.com")
}

func TestLogin_WrongPassword(t *testing.T) {
	out := captureOutput(t)
	api := &fakeAPI{pw: map[string]string{"a@b.com": "right"}}
	stubInputs(t, "a@b.com", "wrong")
	a := newTestApp(t, api, memStore(t), "")

	err := a.Login(context.Background())
	require.Error(t, err)

	assert.Contains(t, *out, "Error: Invalid password")
	assert.Equal(t, "guest", a.status())
	assert.Empty(t, a.auth.State().Error)
}

func TestLogin_InputError(t *testing.T) {
	captureOutput(t)
	orig := getSimpleText
	getSimpleText = func(*bufio.Reader, string, io.Writer) (string, error) { return "", io.EOF }
	t.Cleanup(func() { getSimpleText = orig })

	a := newTestApp(t, &fakeAPI{}, memStore(t), "")
	assert.ErrorIs(t, a.Login(context.Background()), io.EOF)
}

func TestRegisterThenLogout(t *testing.T) {
	out := captureOutput(t)
	stubInputs(t, "new@b.com", "pw")
	a := newTestApp(t, &fakeAPI{}, memStore(t), "")
	ctx := context.Background()

	require.NoError(t, a.Register(ctx))
	assert.Contains(t, *out, "Welcome to MindMate! Signed in as new@b.com")

	require.NoError(t, a.Logout(ctx))
	assert.Equal(t, "guest", a.status())
	assert.Contains(t, *out, "Logged out")

	require.NoError(t, a.Logout(ctx))
	assert.Contains(t, *out, "Not logged in")
}

func TestMoodCommands(t *testing.T) {
	out := captureOutput(t)
	a := newTestApp(t, &fakeAPI{}, memStore(t), "")
	ctx := context.Background()

	require.NoError(t, a.Moods(ctx))
	assert.Contains(t, *out, "No moods logged yet. Try: mood happy 8")

	require.NoError(t, a.Mood(ctx, []string{"Happy", "8", "slept", "well"}))
	assert.Contains(t, *out, "Logged 😊 happy (8/10)")

	moods := a.data.State().Moods
	require.Len(t, moods, 1)
	assert.Equal(t, "slept well", moods[0].Notes)

	*out = nil
	require.NoError(t, a.Moods(ctx))
	require.Len(t, *out, 1)
	assert.Contains(t, (*out)[0], "happy")
	assert.Contains(t, (*out)[0], "slept well")
}

func TestMood_Errors(t *testing.T) {
	out := captureOutput(t)
	a := newTestApp(t, &fakeAPI{}, memStore(t), "")
	ctx := context.Background()

	assert.ErrorIs(t, a.Mood(ctx, []string{"happy"}), errUsage)
	assert.ErrorIs(t, a.Mood(ctx, []string{"happy", "eight"}), errUsage)
	assert.ErrorIs(t, a.Mood(ctx, []string{"elated", "5"}), models.ErrInvalidMood)
	assert.ErrorIs(t, a.Mood(ctx, []string{"sad", "11"}), models.ErrInvalidIntensity)

	assert.Contains(t, *out, "Usage: mood <name> <1-10> [notes]")
	assert.Contains(t, *out, "Moods: ecstatic, happy, good, okay, meh, down, sad, anxious, stressed, terrible")
	assert.Empty(t, a.data.State().Moods)
}

func TestHabitCommands(t *testing.T) {
	out := captureOutput(t)
	a := newTestApp(t, &fakeAPI{}, memStore(t), "20 minutes outside\n")
	a.out = &bytes.Buffer{}
	ctx := context.Background()

	require.NoError(t, a.Habit(ctx, []string{"Exercise", "Morning", "walk"}))

	habits := a.data.State().Habits
	require.Len(t, habits, 1)
	h := habits[0]
	assert.Equal(t, "Morning walk", h.Name)
	assert.Equal(t, "20 minutes outside", h.Description)
	assert.Equal(t, models.CategoryExercise, h.Category)

	require.NoError(t, a.Toggle(ctx, []string{h.ID}))
	assert.Contains(t, *out, "Done: Morning walk (streak 1)")
	require.NoError(t, a.Toggle(ctx, []string{h.ID}))
	assert.Contains(t, *out, "Not done: Morning walk")
	require.NoError(t, a.Toggle(ctx, []string{"nope"}))
	assert.Contains(t, *out, "No habit with id nope")
	assert.ErrorIs(t, a.Toggle(ctx, nil), errUsage)

	*out = nil
	require.NoError(t, a.Habits(ctx))
	require.Len(t, *out, 1)
	assert.True(t, strings.HasPrefix((*out)[0], "[ ] "+h.ID))
	assert.Contains(t, (*out)[0], "(Exercise) streak 1")
}

func TestHabit_InvalidCategory(t *testing.T) {
	out := captureOutput(t)
	a := newTestApp(t, &fakeAPI{}, memStore(t), "\n")

	err := a.Habit(context.Background(), []string{"sports", "Swim"})
	assert.ErrorIs(t, err, models.ErrInvalidCategory)
	assert.Contains(t, *out, "Categories: mindfulness, exercise, journaling, selfcare, learning, creative")
	assert.ErrorIs(t, a.Habit(context.Background(), []string{"sports"}), errUsage)
}

func TestSuggest_SkipsAddedHabits(t *testing.T) {
	out := captureOutput(t)
	a := newTestApp(t, &fakeAPI{}, memStore(t), "")
	ctx := context.Background()

	require.NoError(t, a.Suggest(ctx))
	all := len(*out)
	require.Positive(t, all)

	first := strings.Fields((*out)[0])
	require.GreaterOrEqual(t, len(first), 3)
	name := strings.SplitN(strings.TrimPrefix((*out)[0], "habit "+first[1]+" "), "  - ", 2)[0]
	_, err := a.data.AddHabit(ctx, models.HabitDraft{Name: name, Category: models.HabitCategory(first[1])})
	require.NoError(t, err)

	*out = nil
	require.NoError(t, a.Suggest(ctx))
	assert.Len(t, *out, all-1)
}

func TestChat(t *testing.T) {
	out := captureOutput(t)
	a := newTestApp(t, &fakeAPI{}, memStore(t), "")
	ctx := context.Background()

	require.NoError(t, a.Chat(ctx, nil))
	assert.True(t, strings.HasPrefix((*out)[0], "AI: Hello!"))

	require.NoError(t, a.Chat(ctx, []string{"so", "tired", "today"}))
	assert.True(t, strings.HasPrefix((*out)[len(*out)-1], "AI: Feeling tired"))
	assert.Len(t, a.data.State().ChatHistory, 1)
}

func TestStats(t *testing.T) {
	out := captureOutput(t)
	a := newTestApp(t, &fakeAPI{}, memStore(t), "")
	ctx := context.Background()

	require.NoError(t, a.Stats(ctx))
	assert.Contains(t, *out, "Nothing tracked yet. Log a mood or add a habit to see your insights.")
	assert.Contains(t, *out, "[ ] 🎯 First Steps - Completed your first mood check-in")
	assert.Contains(t, *out, "Weekly average: 0.0")
	assert.Contains(t, *out, "Achievements earned: 0 of 6")

	require.NoError(t, a.Mood(ctx, []string{"good", "6"}))
	*out = nil
	require.NoError(t, a.Stats(ctx))
	assert.Contains(t, *out, "Moods logged: 1  Average mood: 6.0")
	assert.Contains(t, *out, "Today: 😌 good (6/10)")
	assert.Contains(t, *out, "[x] 🎯 First Steps - Completed your first mood check-in")
	assert.Contains(t, *out, "Weekly average: 6.0")
	assert.Contains(t, *out, "Achievements earned: 1 of 6")
}

func TestCrisisAndRooms(t *testing.T) {
	out := captureOutput(t)
	a := newTestApp(t, &fakeAPI{}, memStore(t), "")
	ctx := context.Background()

	require.NoError(t, a.Crisis(ctx))
	assert.Contains(t, *out, "Warning signs:")
	assert.Contains(t, *out, "Coping strategies:")

	*out = nil
	require.NoError(t, a.Rooms(ctx, []string{"ANXIETY"}))
	require.Len(t, *out, 1)
	assert.True(t, strings.HasPrefix((*out)[0], "Anxiety Support Circle (Anxiety, 24 members, active"))

	*out = nil
	require.NoError(t, a.Rooms(ctx, []string{"zzz"}))
	assert.Equal(t, []string{
		"No rooms found",
		"Categories: all, Anxiety, Depression, Mindfulness, Academic, Professional, Recovery",
	}, *out)
}

func TestRooms_CategoryAndQuery(t *testing.T) {
	out := captureOutput(t)
	a := newTestApp(t, &fakeAPI{}, memStore(t), "")
	ctx := context.Background()

	names := func(args ...string) []string {
		*out = nil
		require.NoError(t, a.Rooms(ctx, args))
		var got []string
		for _, l := range *out {
			got = append(got, strings.SplitN(l, " (", 2)[0])
		}
		return got
	}

	assert.Equal(t, []string{"Student Stress Relief", "Work-Life Balance"}, names("stress"))
	assert.Equal(t, []string{"Student Stress Relief"}, names("academic", "stress"))
	assert.Equal(t, []string{"Recovery Support"}, names("Recovery"))
	assert.Len(t, names("all", "support"), 5)
	assert.Equal(t, "No rooms found", names("recovery", "stress")[0])
}

func TestRun_DataSurvivesRestart(t *testing.T) {
	captureOutput(t)
	stubInputs(t, "a@b.com", "pw")
	api := &fakeAPI{pingErr: errors.New("refused")}
	s := memStore(t)

	first := newTestApp(t, api, s, "login\nmood okay 5 first run\nexit\n")
	first.Run(context.Background())
	require.Len(t, first.data.State().Moods, 1)

	second := newTestApp(t, api, s, "exit\n")
	assert.Equal(t, "a@b.com", second.status())
	require.Len(t, second.data.State().Moods, 1)
	assert.Equal(t, "first run", second.data.State().Moods[0].Notes)
}

func TestRun_WarnsWhenServerDown(t *testing.T) {
	out := captureOutput(t)
	a := newTestApp(t, &fakeAPI{pingErr: errors.New("refused")}, memStore(t), "quit\n")

	a.Run(context.Background())

	assert.Contains(t, *out, "Server http://localhost:5000 is unavailable; login will not work until it is back.")
	assert.Contains(t, *out, "Bye!")
}
