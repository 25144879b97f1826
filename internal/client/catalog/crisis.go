package catalog

type CrisisContact struct {
	Name         string
	Number       string
	Description  string
	Availability string
	Country      string
}

var CrisisContacts = []CrisisContact{
	{"National Suicide Prevention Lifeline", "988", "Free and confidential emotional support 24/7", "24/7", "US"},
	{"Crisis Text Line", "Text HOME to 741741", "Free, 24/7 crisis support via text message", "24/7", "US"},
	{"SAMHSA National Helpline", "1-800-662-4357", "Treatment referral and information service", "24/7", "US"},
	{"International Association for Suicide Prevention", "Visit website for local numbers", "Global directory of crisis centers", "Varies", "International"},
}

var WarningSigns = []string{
	"Persistent thoughts of death or suicide",
	"Feeling trapped or hopeless",
	"Extreme mood swings",
	"Withdrawing from friends and activities",
	"Increasing use of alcohol or drugs",
	"Giving away personal belongings",
	"Saying goodbye to loved ones",
	"Expressing feelings of being a burden",
}

type CopingStrategy struct {
	Title       string
	Description string
}

var CopingStrategies = []CopingStrategy{
	{"Breathing Exercise", "Take slow, deep breaths. Inhale for 4 counts, hold for 4, exhale for 6."},
	{"Grounding Technique", "Name 5 things you can see, 4 you can touch, 3 you can hear, 2 you can smell, 1 you can taste."},
	{"Reach Out", "Contact a trusted friend, family member, or counselor. You don't have to face this alone."},
	{"Remove Means", "If you're having thoughts of self-harm, remove or secure any means nearby."},
}
