package model

import (
	"strings"
	"time"
)

// WorkPreference describes where the profile owner prefers to work.
type WorkPreference string

const (
	WorkRemote   WorkPreference = "remote"
	WorkHybrid   WorkPreference = "hybrid"
	WorkOffice   WorkPreference = "office"
	WorkFlexible WorkPreference = "flexible"
)

// PrimaryChannel selects which contact action a card emphasizes first.
type PrimaryChannel string

const (
	ChannelWhatsApp  PrimaryChannel = "whatsapp"
	ChannelCall      PrimaryChannel = "call"
	ChannelEmail     PrimaryChannel = "email"
	ChannelInstagram PrimaryChannel = "instagram"
	ChannelLinkedIn  PrimaryChannel = "linkedin"
	ChannelWebsite   PrimaryChannel = "website"
)

// Profile is the canonical business-card entity. Optional fields are empty
// strings, never null; stored nulls are coerced at the repository boundary
// so downstream codec functions stay total.
type Profile struct {
	ID             string         `json:"id,omitempty"`
	UserID         string         `json:"user_id"`
	FirstName      string         `json:"first_name"`
	LastName       string         `json:"last_name"`
	Title          string         `json:"title"`
	Bio            string         `json:"bio"`
	PhotoURL       string         `json:"photo_url"`
	WorkPreference WorkPreference `json:"work_preference"`
	Email          string         `json:"email"`
	Phone          string         `json:"phone"`
	Website        string         `json:"website"`
	LinkedIn       string         `json:"linkedin"`
	Instagram      string         `json:"instagram"`
	Facebook       string         `json:"facebook"`
	PrimaryChannel PrimaryChannel `json:"primary_channel"`
	Slug           string         `json:"slug,omitempty"`
	IsPublic       bool           `json:"is_public"`
	CreatedAt      time.Time      `json:"created_at,omitempty"`
	UpdatedAt      time.Time      `json:"updated_at,omitempty"`
}

// NormalizeWorkPreference maps a stored value onto the enum, defaulting
// unknown or empty values to flexible.
func NormalizeWorkPreference(v string) WorkPreference {
	switch WorkPreference(v) {
	case WorkRemote, WorkHybrid, WorkOffice, WorkFlexible:
		return WorkPreference(v)
	}
	return WorkFlexible
}

// NormalizePrimaryChannel maps a stored value onto the enum, defaulting
// unknown or empty values to whatsapp.
func NormalizePrimaryChannel(v string) PrimaryChannel {
	switch PrimaryChannel(v) {
	case ChannelWhatsApp, ChannelCall, ChannelEmail, ChannelInstagram, ChannelLinkedIn, ChannelWebsite:
		return PrimaryChannel(v)
	}
	return ChannelWhatsApp
}

// FromIdentity synthesizes a presentation-only profile from auth identity
// metadata when no row exists yet: the full name is split on the first
// whitespace run into first/last, the email is carried over, everything
// else takes its default. Nothing is persisted on this path.
func FromIdentity(userID, fullName, email string) *Profile {
	first, last := SplitName(fullName)
	return &Profile{
		UserID:         userID,
		FirstName:      first,
		LastName:       last,
		Email:          email,
		WorkPreference: WorkFlexible,
		PrimaryChannel: ChannelWhatsApp,
	}
}

// SplitName splits a full name on the first whitespace run. A single-word
// name becomes the first name with an empty last name.
func SplitName(full string) (first, last string) {
	full = strings.TrimSpace(full)
	if full == "" {
		return "", ""
	}
	if i := strings.IndexFunc(full, isSpace); i >= 0 {
		return full[:i], strings.TrimLeftFunc(full[i:], isSpace)
	}
	return full, ""
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}
