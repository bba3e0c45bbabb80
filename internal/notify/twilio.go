package notify

import (
	"context"
	"fmt"
	"html"
	"log"

	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
)

// TwilioNotifier places an outbound voice call that reads the reminder
// message to the user.
type TwilioNotifier struct {
	client *twilio.RestClient
	from   string
}

func NewTwilioNotifier(accountSID, authToken, fromNumber string) *TwilioNotifier {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})
	return &TwilioNotifier{client: client, from: fromNumber}
}

func (n *TwilioNotifier) SendReminder(ctx context.Context, phoneNumber, message string) error {
	params := &openapi.CreateCallParams{}
	params.SetTo(phoneNumber)
	params.SetFrom(n.from)
	params.SetTwiml(fmt.Sprintf("<Response><Say>%s</Say></Response>", html.EscapeString(message)))

	call, err := n.client.Api.CreateCall(params)
	if err != nil {
		return fmt.Errorf("create call: %w", err)
	}
	if call.Sid != nil {
		log.Printf("[info] call %s placed to %s", *call.Sid, phoneNumber)
	}
	return nil
}
