package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendLeadAlert(toEmail string, alert LeadAlert) error
}

// LeadAlert is the staff-facing summary of a freshly captured lead.
type LeadAlert struct {
	LeadId    string
	LeadType  string
	SessionId string
	Email     string
	Phone     string
	TireSize  string
	Notes     string
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
}

func NewEmailService(host string, port int, username, password, senderEmail string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
	}
}

func (s *emailService) SendLeadAlert(toEmail string, alert LeadAlert) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("New chat lead: %s", alert.LeadType))

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>New lead from the chat assistant</h2>
			<table style="border-collapse: collapse;">
				<tr><td style="padding: 4px 12px 4px 0;"><b>Type</b></td><td>%s</td></tr>
				<tr><td style="padding: 4px 12px 4px 0;"><b>Email</b></td><td>%s</td></tr>
				<tr><td style="padding: 4px 12px 4px 0;"><b>Phone</b></td><td>%s</td></tr>
				<tr><td style="padding: 4px 12px 4px 0;"><b>Tire size</b></td><td>%s</td></tr>
				<tr><td style="padding: 4px 12px 4px 0;"><b>Session</b></td><td>%s</td></tr>
			</table>
			<p><b>Customer message:</b></p>
			<blockquote style="border-left: 3px solid #007BFF; margin: 0; padding-left: 12px;">%s</blockquote>
			<p>Lead ID: %s</p>
		</div>
	`, alert.LeadType, orDash(alert.Email), orDash(alert.Phone), orDash(alert.TireSize),
		alert.SessionId, alert.Notes, alert.LeadId)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("send lead alert to %s: %w", toEmail, err)
	}

	return nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
