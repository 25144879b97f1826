// Package chat generates the scripted companion replies: a keyword lookup
// over a few mood themes with a pool of supportive fallbacks.
package chat

import (
	"math/rand"
	"strings"
	"sync"
)

// Greeting opens every new conversation.
const Greeting = "Hello! I'm your AI companion. I'm here to listen and support you. How are you feeling today?"

// QuickPrompts are suggested openers offered to the user.
var QuickPrompts = []string{
	"I'm feeling anxious",
	"I need motivation",
	"I'm having a good day",
}

type theme struct {
	name     string
	keywords []string
	response string
}

// themes are checked in order; the first match wins.
var themes = []theme{
	{
		name:     "sadness",
		keywords: []string{"sad", "depressed", "down"},
		response: "I hear that you're feeling sad, and I want you to know that these feelings are valid. It's okay to have difficult days. Sometimes talking about what's weighing on you can help. Would you like to share what's been on your mind lately?",
	},
	{
		name:     "anxiety",
		keywords: []string{"anxious", "worried", "stress"},
		response: "Anxiety can feel overwhelming, but you're not alone in this. Try taking a few deep breaths with me - in for 4 counts, hold for 4, out for 4. What's causing you the most stress right now? Sometimes breaking things down into smaller pieces can make them feel more manageable.",
	},
	{
		name:     "happiness",
		keywords: []string{"happy", "good", "great"},
		response: "I'm so glad to hear you're feeling positive! It's wonderful when we can recognize and celebrate these good moments. What's been contributing to these happy feelings? Sharing joy can help us remember what brings us peace.",
	},
	{
		name:     "fatigue",
		keywords: []string{"tired", "exhausted", "sleep"},
		response: "Feeling tired can really affect our mood and perspective. Are you getting enough rest? Sometimes our minds are as tired as our bodies. Have you tried any relaxation techniques before bed? I can suggest some if you'd like.",
	},
	{
		name:     "loneliness",
		keywords: []string{"lonely", "alone", "isolated"},
		response: "Loneliness is one of the most difficult feelings to experience, but reaching out here shows your strength. You're taking a positive step by connecting. Remember, feeling lonely doesn't mean you're truly alone - there are people who care about you, even when it doesn't feel that way.",
	},
}

// Fallbacks answer input that matches no theme.
var Fallbacks = []string{
	"Thank you for sharing that with me. Your feelings and experiences matter. Tell me more about what's been on your mind.",
	"I appreciate you opening up. It takes courage to talk about how we're feeling. What would be most helpful for you right now?",
	"I'm here to listen without judgment. Sometimes just expressing our thoughts can bring clarity. How has your day been treating you?",
	"Your wellbeing is important. I'm glad you're taking time to check in with yourself. What's one thing that brought you even a small moment of peace today?",
	"Every feeling you have is valid, and I'm honored you're sharing with me. What support do you feel you need most right now?",
}

// Responder picks replies. It is safe for concurrent use.
type Responder struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewResponder returns a Responder drawing fallbacks from rnd. A nil rnd
// uses a time-seeded source.
func NewResponder(rnd *rand.Rand) *Responder {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(rand.Int63()))
	}
	return &Responder{rnd: rnd}
}

// Respond returns the reply for input. Matching is a case-insensitive
// substring test, so "downtown" counts as "down".
func (r *Responder) Respond(input string) string {
	if t, ok := detect(input); ok {
		return t.response
	}

	r.mu.Lock()
	i := r.rnd.Intn(len(Fallbacks))
	r.mu.Unlock()

	return Fallbacks[i]
}

// detect finds the first theme whose keywords occur in input.
func detect(input string) (theme, bool) {
	lower := strings.ToLower(input)
	for _, t := range themes {
		for _, k := range t.keywords {
			if strings.Contains(lower, k) {
				return t, true
			}
		}
	}
	return theme{}, false
}
