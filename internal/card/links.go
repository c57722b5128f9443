package card

import (
	"net/url"
	"strings"

	"cardlink/internal/model"
)

const (
	instagramBase = "https://instagram.com/"
	facebookBase  = "https://facebook.com/"
	whatsappBase  = "https://wa.me/"
)

// WebURL normalizes a website or LinkedIn value: values already starting
// with http are used as-is, anything else gets an https:// prefix.
func WebURL(v string) string {
	if v == "" {
		return ""
	}
	if strings.HasPrefix(v, "http") {
		return v
	}
	return "https://" + v
}

// SocialURL normalizes an instagram or facebook handle into a profile
// URL. Full URLs pass through unchanged; a bare handle has a single
// leading @ stripped and the network base prepended. Empty in, empty out.
func SocialURL(base, v string) string {
	if v == "" {
		return ""
	}
	lower := strings.ToLower(v)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return v
	}
	return base + strings.TrimPrefix(v, "@")
}

// InstagramURL normalizes an instagram handle or URL.
func InstagramURL(v string) string { return SocialURL(instagramBase, v) }

// FacebookURL normalizes a facebook handle or URL.
func FacebookURL(v string) string { return SocialURL(facebookBase, v) }

// WhatsAppLink builds a wa.me deep link from a phone number by dropping
// every non-digit character. Numbers are not validated; a malformed
// phone just yields a link that goes nowhere.
func WhatsAppLink(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return whatsappBase + b.String()
}

// ContactIntentURL builds the Android add-contact intent URI. Extras are
// appended in fixed order (name, phone, email) and only when the backing
// field is non-empty. The name falls back to a placeholder when both
// name fields are empty.
func ContactIntentURL(p *model.Profile) string {
	name := strings.TrimSpace(p.FirstName + " " + p.LastName)
	if name == "" {
		name = "Contact"
	}

	var b strings.Builder
	b.WriteString("intent:#Intent;action=android.intent.action.INSERT;type=vnd.android.cursor.dir/raw_contact;")
	b.WriteString("S.name=" + encodeExtra(name) + ";")
	if p.Phone != "" {
		b.WriteString("S.phone=" + encodeExtra(p.Phone) + ";")
	}
	if p.Email != "" {
		b.WriteString("S.email=" + encodeExtra(p.Email) + ";")
	}
	b.WriteString("end")
	return b.String()
}

// QRPayload returns the string handed to the QR encoder: the public card
// URL when a slug exists, the raw vCard text otherwise.
func QRPayload(origin, slug string, p *model.Profile) string {
	if slug != "" {
		return strings.TrimRight(origin, "/") + "/card/" + slug
	}
	return VCard(p)
}

// encodeExtra percent-encodes an intent extra. url.QueryEscape encodes a
// space as +, which Android's intent parser does not decode, so spaces
// are rewritten to %20.
func encodeExtra(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
