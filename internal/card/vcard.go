// Package card holds the pure encoders that turn a profile into its
// external representations: vCard text, deep links, the Android
// add-contact intent URL, the QR payload, and the ordered contact
// actions. Nothing in this package performs I/O.
package card

import (
	"strings"

	"cardlink/internal/model"
)

// VCard encodes a profile as a vCard 3.0 text block. Lines are joined
// with CRLF in fixed order; a line backed by an empty field is omitted
// entirely rather than emitted blank.
func VCard(p *model.Profile) string {
	lines := []string{
		"BEGIN:VCARD",
		"VERSION:3.0",
		"FN:" + p.FirstName + " " + p.LastName,
		"N:" + p.LastName + ";" + p.FirstName + ";;;",
	}

	if p.Title != "" {
		lines = append(lines, "TITLE:"+p.Title)
	}
	if p.Email != "" {
		lines = append(lines, "EMAIL:"+p.Email)
	}
	if p.Phone != "" {
		lines = append(lines, "TEL:"+p.Phone)
	}
	if p.Website != "" {
		lines = append(lines, "URL:"+WebURL(p.Website))
	}
	if p.LinkedIn != "" {
		lines = append(lines, "URL:"+WebURL(p.LinkedIn))
	}
	if p.Bio != "" {
		lines = append(lines, "NOTE:"+escapeNote(p.Bio))
	}

	lines = append(lines, "END:VCARD")
	return strings.Join(lines, "\r\n")
}

// VCardFileName returns the download filename for a profile's vCard.
func VCardFileName(p *model.Profile) string {
	return p.FirstName + "_" + p.LastName + ".vcf"
}

// escapeNote replaces every raw newline with the literal two-character
// sequence \n so the NOTE stays a single vCard line.
func escapeNote(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\n", `\n`)
}
