package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitName(t *testing.T) {
	cases := []struct {
		full  string
		first string
		last  string
	}{
		{"Alex Chen", "Alex", "Chen"},
		{"Alex", "Alex", ""},
		{"", "", ""},
		{"  Alex   Chen  ", "Alex", "Chen"},
		{"Mary Jane Watson", "Mary", "Jane Watson"},
	}
	for _, c := range cases {
		first, last := SplitName(c.full)
		assert.Equal(t, c.first, first, "full %q", c.full)
		assert.Equal(t, c.last, last, "full %q", c.full)
	}
}

func TestFromIdentity(t *testing.T) {
	p := FromIdentity("u1", "Alex Chen", "alex@example.com")

	assert.Equal(t, "u1", p.UserID)
	assert.Equal(t, "Alex", p.FirstName)
	assert.Equal(t, "Chen", p.LastName)
	assert.Equal(t, "alex@example.com", p.Email)
	assert.Equal(t, WorkFlexible, p.WorkPreference)
	assert.Equal(t, ChannelWhatsApp, p.PrimaryChannel)
	assert.Empty(t, p.Title)
	assert.Empty(t, p.Phone)
	assert.Empty(t, p.Slug)
	assert.False(t, p.IsPublic)
}

func TestNormalizeWorkPreference(t *testing.T) {
	assert.Equal(t, WorkRemote, NormalizeWorkPreference("remote"))
	assert.Equal(t, WorkFlexible, NormalizeWorkPreference(""))
	assert.Equal(t, WorkFlexible, NormalizeWorkPreference("couch"))
}

func TestNormalizePrimaryChannel(t *testing.T) {
	assert.Equal(t, ChannelLinkedIn, NormalizePrimaryChannel("linkedin"))
	assert.Equal(t, ChannelWhatsApp, NormalizePrimaryChannel(""))
	assert.Equal(t, ChannelWhatsApp, NormalizePrimaryChannel("carrier pigeon"))
}
