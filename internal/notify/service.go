package notify

import (
	"bytes"
	"context"
	"html/template"

	"github.com/BruksfildServices01/barbershop-site/internal/config"
	"github.com/BruksfildServices01/barbershop-site/internal/models"
)

// Service composes the two emails the site sends: the booking
// confirmation to the client and the contact notification to the
// admin. Send failures are the caller's problem to swallow; the
// booking and contact flows never let them surface.
type Service struct {
	sender     EmailSender
	adminEmail string
}

func NewService(cfg *config.Config) *Service {
	var sender EmailSender = LogSender{}
	if sg := NewSendGridSender(cfg.SendGridAPIKey, cfg.EmailFrom, cfg.EmailFromName); sg != nil {
		sender = sg
	}
	return &Service{
		sender:     sender,
		adminEmail: cfg.AdminEmail,
	}
}

// NewServiceWithSender is used by tests and custom wiring.
func NewServiceWithSender(sender EmailSender, adminEmail string) *Service {
	return &Service{sender: sender, adminEmail: adminEmail}
}

var confirmationTmpl = template.Must(template.New("confirmation").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <div style="background-color: #2c3e50; color: white; padding: 20px; text-align: center;">
    <h1 style="margin: 0;">Barbershop</h1>
    <p style="margin: 10px 0 0 0;">Appointment Confirmation</p>
  </div>
  <div style="padding: 30px; background-color: #f8f9fa;">
    <h2 style="color: #2c3e50;">Hello {{.Name}},</h2>
    <p>Your appointment has been confirmed! Here are the details:</p>
    <div style="background-color: white; padding: 20px; border-radius: 8px; margin: 20px 0;">
      <h3 style="color: #2c3e50; margin-top: 0;">Appointment Details</h3>
      <p><strong>Service:</strong> {{.Service}}</p>
      <p><strong>Date:</strong> {{.Date}}</p>
      <p><strong>Time:</strong> {{.Time}}</p>
      <p><strong>Status:</strong> <span style="color: #27ae60;">Confirmed</span></p>
      {{if .Notes}}<p><strong>Notes:</strong> {{.Notes}}</p>{{end}}
    </div>
    <p>If you need to reschedule or cancel, please contact us as soon as possible.</p>
    <p>We look forward to seeing you!</p>
  </div>
</div>`))

var contactTmpl = template.Must(template.New("contact").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <div style="background-color: #2c3e50; color: white; padding: 20px; text-align: center;">
    <h1 style="margin: 0;">Barbershop</h1>
    <p style="margin: 10px 0 0 0;">New Contact Form Submission</p>
  </div>
  <div style="padding: 30px; background-color: #f8f9fa;">
    <h3 style="color: #2c3e50;">From: {{.Name}}</h3>
    <p><strong>Email:</strong> {{.Email}}</p>
    {{if .Phone}}<p><strong>Phone:</strong> {{.Phone}}</p>{{end}}
    <p><strong>Subject:</strong> {{.Subject}}</p>
    <div style="background-color: white; padding: 20px; border-radius: 8px; margin: 20px 0;">
      <h4 style="margin-top: 0;">Message:</h4>
      <p style="white-space: pre-wrap;">{{.Message}}</p>
    </div>
  </div>
</div>`))

// SendBookingConfirmation emails the client their appointment details.
func (s *Service) SendBookingConfirmation(ctx context.Context, ap models.Appointment) error {
	var html bytes.Buffer
	if err := confirmationTmpl.Execute(&html, ap); err != nil {
		return err
	}

	return s.sender.Send(ctx, EmailMessage{
		To:      ap.Email,
		ToName:  ap.Name,
		Subject: "Appointment Confirmation - Barbershop",
		HTML:    html.String(),
	})
}

// ContactData is the contact form payload before the subject is
// folded into the stored message body.
type ContactData struct {
	Name    string
	Email   string
	Phone   string
	Subject string
	Message string
}

// SendContactNotification forwards a contact submission to the admin.
func (s *Service) SendContactNotification(ctx context.Context, data ContactData) error {
	var html bytes.Buffer
	if err := contactTmpl.Execute(&html, data); err != nil {
		return err
	}

	return s.sender.Send(ctx, EmailMessage{
		To:      s.adminEmail,
		Subject: "Contact Form: " + data.Subject,
		HTML:    html.String(),
	})
}
