package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseModerationLabel(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		want  ModerationStatus
	}{
		{"bare valid", "valid", ModerationValid},
		{"valid-simple", "valid-simple", ModerationValidSimple},
		{"quoted label", "'valid-simple'", ModerationValidSimple},
		{"trailing period", "spam.", ModerationSpam},
		{"off-topic", "off-topic", ModerationOffTopic},
		{"unclear", "unclear", ModerationUnclear},
		{"uppercase", "SPAM", ModerationSpam},
		{"invalid is not valid", "invalid", ModerationError},
		{"negated label", "This question is not valid.", ModerationError},
		{"label buried in sentence", "The question is valid.", ModerationError},
		{"two labels in one reply", "This is a valid question, not spam", ModerationError},
		{"unrecognized", "I cannot classify this", ModerationError},
		{"empty reply", "", ModerationError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseModerationLabel(tt.reply))
		})
	}
}

func TestModerationStatusBlocks(t *testing.T) {
	assert.False(t, ModerationValid.Blocks())
	assert.False(t, ModerationValidSimple.Blocks())
	assert.False(t, ModerationError.Blocks())
	assert.True(t, ModerationUnclear.Blocks())
	assert.True(t, ModerationOffTopic.Blocks())
	assert.True(t, ModerationSpam.Blocks())
}

func TestModerateEmptyInputSkipsNetwork(t *testing.T) {
	stub := newAIStub(t, "valid")
	svc := NewModerationService(stub.Service)

	status := svc.ModerateQuestion("   \n  ")
	assert.Equal(t, ModerationUnclear, status)
	assert.Zero(t, stub.Calls())
}

func TestModerateUsesCompletionReply(t *testing.T) {
	stub := newAIStub(t, "off-topic")
	svc := NewModerationService(stub.Service)

	status := svc.ModerateQuestion("buy cheap watches online")
	assert.Equal(t, ModerationOffTopic, status)
	assert.Equal(t, int64(1), stub.Calls())
}

func TestModerateServiceFailureReturnsError(t *testing.T) {
	stub := newFailingAIStub(t)
	svc := NewModerationService(stub.Service)

	status := svc.ModerateQuestion("What is the derivative of x squared?")
	assert.Equal(t, ModerationError, status)
	assert.False(t, status.Blocks())
}
