package card

import (
	"testing"

	"cardlink/internal/model"

	"github.com/stretchr/testify/assert"
)

func channels(actions []Action) []model.PrimaryChannel {
	out := make([]model.PrimaryChannel, 0, len(actions))
	for _, a := range actions {
		out = append(out, a.Channel)
	}
	return out
}

func TestActionsGatedOnFields(t *testing.T) {
	p := &model.Profile{
		Phone:    "+1 555 1234",
		Email:    "a@x.com",
		LinkedIn: "linkedin.com/in/a",
	}

	got := Actions(p)
	assert.Equal(t, []model.PrimaryChannel{
		model.ChannelWhatsApp,
		model.ChannelCall,
		model.ChannelEmail,
		model.ChannelLinkedIn,
	}, channels(got))
}

func TestActionsEmptyProfile(t *testing.T) {
	assert.Empty(t, Actions(&model.Profile{}))
}

func TestOrderedActionsPrimaryFirst(t *testing.T) {
	p := &model.Profile{
		Phone:          "+1 555 1234",
		Email:          "a@x.com",
		Website:        "a.dev",
		PrimaryChannel: model.ChannelEmail,
	}

	got := OrderedActions(p)
	assert.Equal(t, []model.PrimaryChannel{
		model.ChannelEmail,
		model.ChannelWhatsApp,
		model.ChannelCall,
		model.ChannelWebsite,
	}, channels(got))
}

func TestOrderedActionsFallbackWhenChannelUnbacked(t *testing.T) {
	// primary channel is linkedin but the linkedin field is empty, so the
	// first available action (whatsapp, phone is set) leads
	p := &model.Profile{
		Phone:          "+1 555 1234",
		PrimaryChannel: model.ChannelLinkedIn,
	}

	got := OrderedActions(p)
	assert.Equal(t, []model.PrimaryChannel{
		model.ChannelWhatsApp,
		model.ChannelCall,
	}, channels(got))
}

func TestOrderedActionsWhatsAppHref(t *testing.T) {
	p := &model.Profile{Phone: "+1 (555) 123-4567", PrimaryChannel: model.ChannelWhatsApp}

	got := OrderedActions(p)
	assert.Equal(t, "https://wa.me/15551234567", got[0].Href)
	assert.Equal(t, "tel:+1 (555) 123-4567", got[1].Href)
}
