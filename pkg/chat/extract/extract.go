package extract

import (
	"fmt"
	"regexp"
	"strings"

	"ai-tireshop-be/internal/constant"
)

// Extraction is the rule-based read of a single user message. It is computed
// from the raw message only and is independent of the provider reply.
type Extraction struct {
	TireSize string
	Email    string
	Phone    string
	Intent   string
}

var (
	// 3-2-2 digit groups with permissive separators: 225/65R17, 225-65-17, 225 65 17
	tireSizeRe = regexp.MustCompile(`(\d{3})[^\d]{1,3}(\d{2})[^\d]{0,3}(\d{2})`)

	emailRe = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)

	phoneRe = regexp.MustCompile(`\+?\d{0,3}[-.\s]?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)

	nonDigitRe = regexp.MustCompile(`[^\d]`)
)

// TireSize pulls the first 3-2-2 digit sequence out of the message and
// normalizes it to WWW/AA/DD regardless of the original separators.
func TireSize(message string) string {
	m := tireSizeRe.FindStringSubmatch(message)
	if m == nil {
		return ""
	}
	return fmt.Sprintf("%s/%s/%s", m[1], m[2], m[3])
}

// Email returns the first email-shaped token, or "" if none fits.
func Email(message string) string {
	m := emailRe.FindString(message)
	if m == "" || len(m) > 254 {
		return ""
	}
	return m
}

// Phone returns the first phone-shaped token whose digit-only form is
// 10 to 15 digits long.
func Phone(message string) string {
	for _, m := range phoneRe.FindAllString(message, -1) {
		digits := nonDigitRe.ReplaceAllString(m, "")
		if len(digits) >= 10 && len(digits) <= 15 {
			return strings.TrimSpace(m)
		}
	}
	return ""
}

// intentRule maps any-of keywords to an intent label. Order of the rules
// below is the contract: the first matching rule wins.
type intentRule struct {
	intent   string
	keywords []string
}

var intentRules = []intentRule{
	{constant.IntentDealerInquiry, []string{"dealer", "wholesale", "bulk"}},
	{constant.IntentFleetInquiry, []string{"fleet", "company vehicle"}},
	{constant.IntentBookingRequest, []string{"book", "appointment", "schedule", "service"}},
	{constant.IntentQuoteRequest, []string{"quote", "price", "cost", "how much"}},
	{constant.IntentCallbackRequest, []string{"call", "contact", "reach", "callback"}},
}

// Intent classifies the message with an ordered keyword decision list.
// tireSize is the already-extracted size (may be empty); its presence alone
// is enough to classify as a tire search.
func Intent(message, tireSize string) string {
	lower := strings.ToLower(message)

	for _, rule := range intentRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.intent
			}
		}
	}

	if tireSize != "" {
		return constant.IntentTireSearch
	}
	for _, kw := range []string{"tire", "find", "recommend", "looking for"} {
		if strings.Contains(lower, kw) {
			return constant.IntentTireSearch
		}
	}

	return constant.IntentGeneralInquiry
}

// FromMessage runs the full extraction over one user message.
func FromMessage(message string) Extraction {
	size := TireSize(message)
	return Extraction{
		TireSize: size,
		Email:    Email(message),
		Phone:    Phone(message),
		Intent:   Intent(message, size),
	}
}

// ShouldCaptureLead reports whether this message qualifies for a lead record:
// a qualifying intent, or any contact info regardless of intent.
func (e Extraction) ShouldCaptureLead() bool {
	switch e.Intent {
	case constant.IntentDealerInquiry,
		constant.IntentFleetInquiry,
		constant.IntentBookingRequest,
		constant.IntentQuoteRequest,
		constant.IntentCallbackRequest:
		return true
	}
	return e.Email != "" || e.Phone != ""
}

// SizeParts splits a normalized WWW/AA/DD size into its three components.
// Returns false for anything not in normalized form.
func SizeParts(size string) (width, aspect, diameter string, ok bool) {
	parts := strings.Split(size, "/")
	if len(parts) != 3 {
		return "", "", "", false
	}
	return parts[0], parts[1], parts[2], true
}
