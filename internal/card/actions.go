package card

import "cardlink/internal/model"

// Action is one contact call-to-action on a public card.
type Action struct {
	Channel model.PrimaryChannel `json:"channel"`
	Href    string               `json:"href"`
}

// Actions builds the ordered contact-action list for a profile. Each
// action is gated on its backing field; a phone number enables both the
// WhatsApp and the plain call action.
func Actions(p *model.Profile) []Action {
	var out []Action
	if p.Phone != "" {
		out = append(out,
			Action{Channel: model.ChannelWhatsApp, Href: WhatsAppLink(p.Phone)},
			Action{Channel: model.ChannelCall, Href: "tel:" + p.Phone},
		)
	}
	if p.Email != "" {
		out = append(out, Action{Channel: model.ChannelEmail, Href: "mailto:" + p.Email})
	}
	if p.Instagram != "" {
		out = append(out, Action{Channel: model.ChannelInstagram, Href: InstagramURL(p.Instagram)})
	}
	if p.LinkedIn != "" {
		out = append(out, Action{Channel: model.ChannelLinkedIn, Href: WebURL(p.LinkedIn)})
	}
	if p.Website != "" {
		out = append(out, Action{Channel: model.ChannelWebsite, Href: WebURL(p.Website)})
	}
	return out
}

// OrderedActions moves the action matching the profile's primary channel
// to the front, keeping the rest in original order. When the chosen
// channel has no backing field the first available action leads instead.
func OrderedActions(p *model.Profile) []Action {
	actions := Actions(p)
	if len(actions) == 0 {
		return actions
	}

	idx := 0
	for i, a := range actions {
		if a.Channel == p.PrimaryChannel {
			idx = i
			break
		}
	}
	if idx == 0 {
		return actions
	}

	out := make([]Action, 0, len(actions))
	out = append(out, actions[idx])
	out = append(out, actions[:idx]...)
	out = append(out, actions[idx+1:]...)
	return out
}
