package notify

import (
	"context"
	"fmt"
	"strings"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/aussiebroadwan/careerhub/pkg/slogx"
)

const whatsappPrefix = "whatsapp:"

type TwilioConfig struct {
	AccountSID     string
	AuthToken      string
	WhatsAppNumber string // sender, with or without the whatsapp: prefix
}

// Configured reports whether every credential is present.
func (c TwilioConfig) Configured() bool {
	return c.AccountSID != "" && c.AuthToken != "" && c.WhatsAppNumber != ""
}

// messageAPI is the slice of the Twilio REST client we use.
type messageAPI interface {
	CreateMessage(params *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error)
}

type WhatsApp struct {
	api  messageAPI
	from string
}

// New returns a WhatsApp notifier when cfg is complete, and Disabled otherwise.
func New(cfg TwilioConfig) Notifier {
	if !cfg.Configured() {
		return Disabled{}
	}
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.AccountSID,
		Password: cfg.AuthToken,
	})
	return newWhatsApp(client.Api, cfg.WhatsAppNumber)
}

func newWhatsApp(api messageAPI, from string) *WhatsApp {
	if !strings.HasPrefix(from, whatsappPrefix) {
		from = whatsappPrefix + from
	}
	return &WhatsApp{api: api, from: from}
}

func (w *WhatsApp) Send(ctx context.Context, msg Message) error {
	if msg.To == "" || msg.Body == "" {
		return fmt.Errorf("whatsapp message requires a recipient and a body")
	}

	to := whatsappPrefix + FormatWhatsAppNumber(msg.To)

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(w.from)
	params.SetBody(msg.Body)

	resp, err := w.api.CreateMessage(params)
	if err != nil {
		return fmt.Errorf("twilio create message: %w", err)
	}

	log := slogx.FromContext(ctx)
	if resp != nil && resp.Sid != nil {
		log = log.With("sid", *resp.Sid)
	}
	log.Info("whatsapp message sent", "to", to)
	return nil
}

// FormatWhatsAppNumber normalises a stored phone number to E.164. Numbers that
// already carry a "+" are left alone; bare ten digit numbers are treated as
// Indian mobiles.
func FormatWhatsAppNumber(phone string) string {
	if strings.HasPrefix(phone, "+") {
		return phone
	}
	switch {
	case len(phone) == 10:
		return "+91" + phone
	case len(phone) > 10:
		return "+" + phone
	default:
		return phone
	}
}
