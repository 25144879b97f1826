package chat

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRespond_AnxiousAnyCasing(t *testing.T) {
	r := NewResponder(rand.New(rand.NewSource(1)))
	want := themes[1].response

	for _, in := range []string{"anxious", "I'm ANXIOUS today", "so AnXiOuS!!", "feeling anxious about work"} {
		assert.Equal(t, want, r.Respond(in), in)
	}
}

func TestRespond_Priority(t *testing.T) {
	r := NewResponder(rand.New(rand.NewSource(1)))

	tests := []struct {
		in    string
		theme string
	}{
		{"I'm sad and anxious", "sadness"},
		{"worried but happy", "anxiety"},
		{"great but tired", "happiness"},
		{"exhausted and lonely", "fatigue"},
		{"feeling isolated", "loneliness"},
		{"stressed out", "anxiety"},
		{"can't sleep", "fatigue"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.theme, themeOf(tt.in), tt.in)
		t1, _ := detect(tt.in)
		assert.Equal(t, t1.response, r.Respond(tt.in))
	}
}

func TestRespond_Fallback(t *testing.T) {
	r := NewResponder(rand.New(rand.NewSource(42)))

	for i := 0; i < 20; i++ {
		assert.Contains(t, Fallbacks, r.Respond("hello there"))
	}
	assert.Equal(t, "", themeOf("hello there"))
}

func TestRespond_FallbackDeterministicWithSeed(t *testing.T) {
	a := NewResponder(rand.New(rand.NewSource(7)))
	b := NewResponder(rand.New(rand.NewSource(7)))

	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Respond("what's up"), b.Respond("what's up"))
	}
}

func TestNewResponder_NilRand(t *testing.T) {
	r := NewResponder(nil)
	assert.Contains(t, Fallbacks, r.Respond("nothing matches here"))
}

func TestSubstringMatching(t *testing.T) {
	assert.Equal(t, "sadness", themeOf("heading downtown"))
	assert.Equal(t, "happiness", themeOf("goodbye"))
}

func themeOf(input string) string {
	t, _ := detect(input)
	return t.name
}
