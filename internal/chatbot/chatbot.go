// Package chatbot answers frequently asked questions by keyword. The first matching rule wins.
package chatbot

import (
	"regexp"
	"strings"
)

const (
	IntentCreatePost    = "create_post"
	IntentNearby        = "nearby"
	IntentHowItWorks    = "how_it_works"
	IntentSafety        = "safety"
	IntentPasswordReset = "password_reset"
	IntentProfile       = "profile"
	IntentGoogleAuth    = "google_auth"
	IntentGuest         = "guest"
	IntentImagesFree    = "images_free"
)

const (
	replyHowItWorks = "Create a post with the food details and a pickup window. Receivers nearby request it. " +
		"You accept one request, coordinate the pickup and you're done."
	replySafety = "Meet in a public place, label allergens and keep food hygienic. " +
		"Don't share sensitive personal information."
	replyCreatePost = "Open Create Post and fill in the title, quantity, pickup window, category (veg/non-veg), " +
		"address and image URLs. You can also use your current location."
	replyNearby = "Open the Receiver Dashboard, allow location access and set a distance filter. " +
		"New donations in range show up automatically."
	replyPasswordReset = "Use 'Forgot password' on the sign in page to get a reset email."
	replyProfile       = "Open Profile to view or edit your name and role. Changes apply to your account right away."
	replyGoogleAuth    = "On the sign in page choose 'Continue with Google' to sign up or log in with your Google account."
	replyGuest         = "Choose 'Continue as Guest' to browse without an account. Posting and requesting need a sign in."
	replyImagesFree    = "Paste image URLs when creating a post. Any free image host or existing website works."

	FallbackReply = "I can help with posting, nearby search, safety, Google or guest sign in, password reset " +
		"and profile editing. Ask me anything."
)

type rule struct {
	pattern *regexp.Regexp
	intent  string
	reply   string
}

var rules = []rule{
	{regexp.MustCompile(`create|post|donat(e|ion)`), IntentCreatePost, replyCreatePost + "\nTip: " + replyImagesFree},
	{regexp.MustCompile(`nearby|around|close|range|distance|map`), IntentNearby, replyNearby},
	{regexp.MustCompile(`how.*work|what.*do|help|guide`), IntentHowItWorks, replyHowItWorks},
	{regexp.MustCompile(`safe|safety|allergen|policy`), IntentSafety, replySafety},
	{regexp.MustCompile(`(reset|forgot).*password`), IntentPasswordReset, replyPasswordReset},
	{regexp.MustCompile(`profile|account|name|role`), IntentProfile, replyProfile},
	{regexp.MustCompile(`google|gmail|oauth|signin|sign in|login`), IntentGoogleAuth, replyGoogleAuth},
	{regexp.MustCompile(`guest|browse|without account`), IntentGuest, replyGuest},
	{regexp.MustCompile(`(image|photo|picture).*(free|storage|cost|paid)`), IntentImagesFree, replyImagesFree},
}

// Reply returns the answer for message and the matched intent, or nil when nothing matched.
func Reply(message string) (string, *string) {
	q := strings.ToLower(message)
	for _, r := range rules {
		if r.pattern.MatchString(q) {
			intent := r.intent
			return r.reply, &intent
		}
	}

	return FallbackReply, nil
}
