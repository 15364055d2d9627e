package chatbot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplyIntents(t *testing.T) {
	tests := []struct {
		message string
		intent  string
	}{
		{"How do I DONATE food?", IntentCreatePost},
		{"show listings nearby", IntentNearby},
		{"how does this work", IntentHowItWorks},
		{"is it safe", IntentSafety},
		{"I forgot my password", IntentPasswordReset},
		{"change my role", IntentProfile},
		{"gmail signin", IntentGoogleAuth},
		{"let me browse as guest", IntentGuest},
		{"are photos free?", IntentImagesFree},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			_, intent := Reply(tt.message)
			require.NotNil(t, intent)
			assert.Equal(t, tt.intent, *intent)
		})
	}
}

func TestFirstMatchWins(t *testing.T) {
	// matches both create_post and nearby
	_, intent := Reply("post something nearby")
	require.NotNil(t, intent)
	assert.Equal(t, IntentCreatePost, *intent)

	// how_it_works comes before password_reset
	_, intent = Reply("help me reset my password")
	require.NotNil(t, intent)
	assert.Equal(t, IntentHowItWorks, *intent)
}

func TestCreatePostReplyCarriesImageTip(t *testing.T) {
	reply, _ := Reply("create")
	assert.Contains(t, reply, "Tip: ")
}

func TestFallback(t *testing.T) {
	reply, intent := Reply("bonjour")
	assert.Nil(t, intent)
	assert.Equal(t, FallbackReply, reply)
}
