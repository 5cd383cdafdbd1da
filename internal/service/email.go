package service

import (
	"fmt"
	"net/smtp"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/beldyconnect/backend/config"
	"github.com/beldyconnect/backend/internal/models"
)

type EmailService struct {
	smtpHost     string
	smtpPort     string
	smtpUsername string
	smtpPassword string
	fromEmail    string
	fromName     string
	adminEmail   string
	log          *logrus.Logger
}

func NewEmailService(cfg *config.Config, log *logrus.Logger) IEmailService {
	service := &EmailService{
		smtpHost:     cfg.SMTPHost,
		smtpPort:     cfg.SMTPPort,
		smtpUsername: cfg.SMTPUser,
		smtpPassword: cfg.SMTPPassword,
		fromEmail:    cfg.SMTPFrom,
		fromName:     "BeldyConnect",
		adminEmail:   os.Getenv("ADMIN_EMAIL"),
		log:          log,
	}

	if service.smtpHost == "" {
		log.Warn("SMTP not configured, emails will be logged instead of sent")
	}

	return service
}

func (s *EmailService) SendEmail(to, subject, body string) error {
	// If SMTP is not configured, log the email instead.
	if s.smtpHost == "" || s.smtpPort == "" {
		s.log.WithFields(logrus.Fields{
			"to":      to,
			"subject": subject,
		}).Info("SMTP not configured, logging email")
		return nil
	}

	auth := smtp.PlainAuth("", s.smtpUsername, s.smtpPassword, s.smtpHost)

	from := fmt.Sprintf("%s <%s>", s.fromName, s.fromEmail)
	msg := []byte(fmt.Sprintf("To: %s\r\n"+
		"From: %s\r\n"+
		"Subject: %s\r\n"+
		"Content-Type: text/html; charset=UTF-8\r\n"+
		"\r\n"+
		"%s\r\n", to, from, subject, body))

	addr := fmt.Sprintf("%s:%s", s.smtpHost, s.smtpPort)
	if err := smtp.SendMail(addr, auth, s.fromEmail, []string{to}, msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func (s *EmailService) SendOrderNotification(order *models.Order, user *models.User) error {
	toEmail := s.adminEmail
	if toEmail == "" {
		toEmail = s.fromEmail
	}

	subject := fmt.Sprintf("[BeldyConnect] New order from %s %s", user.FirstName, user.LastName)
	return s.SendEmail(toEmail, subject, s.buildOrderEmailBody(order, user))
}

func (s *EmailService) SendFeedbackNotification(feedback *models.Feedback, user *models.User) error {
	toEmail := s.adminEmail
	if toEmail == "" {
		toEmail = s.fromEmail
	}

	subject := fmt.Sprintf("[BeldyConnect] Order feedback: %d/5 from %s", feedback.Rating, user.FirstName)

	body := fmt.Sprintf(`
<h2>New Feedback Received</h2>
<p><strong>Customer:</strong> %s %s (%s)</p>
<p><strong>Order:</strong> %s</p>
<p><strong>Rating:</strong> %d/5</p>
<p><strong>Comments:</strong></p>
<p>%s</p>
`, user.FirstName, user.LastName, user.Email, feedback.OrderID, feedback.Rating, feedback.Comments)

	return s.SendEmail(toEmail, subject, body)
}

func (s *EmailService) buildOrderEmailBody(order *models.Order, user *models.User) string {
	caser := cases.Title(language.English)

	var items strings.Builder
	for _, item := range order.Items {
		items.WriteString(fmt.Sprintf("<li>%s</li>", caser.String(item)))
	}

	return fmt.Sprintf(`
<h2>New Order Received!</h2>
<p><strong>Customer:</strong> %s %s</p>
<p><strong>Phone:</strong> %s</p>
<hr>
<h3>Order Details</h3>
<p><strong>Basket:</strong> %s</p>
<p><strong>Items:</strong></p>
<ul>%s</ul>
<p><strong>Subtotal:</strong> %.2f MAD</p>
<p><strong>Delivery Method:</strong> %s</p>
<p><strong>Delivery Fee:</strong> %.2f MAD</p>
<p><strong>Total:</strong> %.2f MAD</p>
<hr>
<h3>Delivery Information</h3>
<p><strong>Location:</strong> %s</p>
<p><strong>Address:</strong> %s</p>
<p><strong>Time Ordered:</strong> %s</p>
`,
		user.FirstName, user.LastName,
		user.Phone,
		order.BasketName,
		items.String(),
		order.Subtotal,
		order.DeliveryMethod,
		order.DeliveryFee,
		order.Total,
		order.DeliveryLocation,
		order.Address,
		order.CreatedAt.Format("2006-01-02 15:04:05"),
	)
}
