package notify

import (
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// SMSClient delivers one-time codes over SMS through the Twilio REST API.
// Delivery is fire-and-forget: failures are logged, never returned to the
// caller.
type SMSClient struct {
	accountSID string
	authToken  string
	from       string
	httpClient *http.Client
}

// NewSMSClient creates an SMS client. With empty credentials the client
// logs codes instead of sending them, which is the development mode.
func NewSMSClient(accountSID, authToken, from string) *SMSClient {
	return &SMSClient{
		accountSID: accountSID,
		authToken:  authToken,
		from:       from,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// SendOTP sends the code to the phone number.
func (c *SMSClient) SendOTP(code int, phone string) {
	body := fmt.Sprintf("Your OTP from Lucito is %d.", code)

	if c.accountSID == "" || c.authToken == "" {
		log.Printf("sms disabled, otp for %s: %d", phone, code)
		return
	}

	endpoint := fmt.Sprintf("https://api.twilio.com/2010-04-01/Accounts/%s/Messages.json", c.accountSID)
	form := url.Values{}
	form.Set("From", c.from)
	form.Set("To", phone)
	form.Set("Body", body)

	req, err := http.NewRequest(http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		log.Printf("sms request build failed: %v", err)
		return
	}
	req.SetBasicAuth(c.accountSID, c.authToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("sms delivery to %s failed: %v", phone, err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		log.Printf("sms delivery to %s failed: status %d", phone, resp.StatusCode)
	}
}
