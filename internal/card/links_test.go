package card

import (
	"testing"

	"cardlink/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestWhatsAppLinkStripsNonDigits(t *testing.T) {
	cases := []struct {
		phone string
		want  string
	}{
		{"+1 (555) 123-4567", "https://wa.me/15551234567"},
		{"555.123.4567", "https://wa.me/5551234567"},
		{"+49 170 1234567", "https://wa.me/491701234567"},
		{"no digits at all", "https://wa.me/"},
		{"", "https://wa.me/"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, WhatsAppLink(c.phone), "phone %q", c.phone)
	}
}

func TestSocialURLNormalization(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"handle", "https://instagram.com/handle"},
		{"@handle", "https://instagram.com/handle"},
		{"@@handle", "https://instagram.com/@handle"}, // only one @ stripped
		{"https://instagram.com/handle", "https://instagram.com/handle"},
		{"http://instagram.com/handle", "http://instagram.com/handle"},
		{"HTTPS://instagram.com/handle", "HTTPS://instagram.com/handle"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, InstagramURL(c.in), "input %q", c.in)
	}

	assert.Equal(t, "https://facebook.com/page", FacebookURL("@page"))
}

func TestWebURL(t *testing.T) {
	assert.Equal(t, "", WebURL(""))
	assert.Equal(t, "https://example.com", WebURL("example.com"))
	assert.Equal(t, "http://example.com", WebURL("http://example.com"))
	assert.Equal(t, "https://example.com", WebURL("https://example.com"))
}

func TestContactIntentURL(t *testing.T) {
	p := &model.Profile{
		FirstName: "Alex",
		LastName:  "Chen",
		Phone:     "+1 555 1234",
		Email:     "a@x.com",
	}
	got := ContactIntentURL(p)

	assert.Equal(t,
		"intent:#Intent;action=android.intent.action.INSERT;type=vnd.android.cursor.dir/raw_contact;"+
			"S.name=Alex%20Chen;S.phone=%2B1%20555%201234;S.email=a%40x.com;end",
		got)
}

func TestContactIntentURLOmitsEmptyExtras(t *testing.T) {
	p := &model.Profile{FirstName: "Alex"}
	got := ContactIntentURL(p)

	assert.Contains(t, got, "S.name=Alex;")
	assert.NotContains(t, got, "S.phone=")
	assert.NotContains(t, got, "S.email=")
}

func TestContactIntentURLPlaceholderName(t *testing.T) {
	got := ContactIntentURL(&model.Profile{Phone: "123"})
	assert.Contains(t, got, "S.name=Contact;")
}

func TestQRPayload(t *testing.T) {
	p := fullProfile()

	// a slug yields the shareable card URL
	assert.Equal(t, "https://cards.example.com/card/abc123",
		QRPayload("https://cards.example.com/", "abc123", p))

	// without a slug the raw vCard is the payload
	assert.Equal(t, VCard(p), QRPayload("https://cards.example.com", "", p))
}
