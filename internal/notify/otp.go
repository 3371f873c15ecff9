package notify

import (
	"math/rand"
	"time"
)

// OTPValidity is how long a generated code stays usable.
const OTPValidity = 5 * time.Minute

// GenerateOTP returns a six digit one-time code and its expiry.
func GenerateOTP() (code int, expiry time.Time) {
	code = 100000 + rand.Intn(900000)
	expiry = time.Now().Add(OTPValidity)
	return code, expiry
}
