package service

import (
	"context"
	"fmt"
	"strings"

	"showroom-backend/internal/domain"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type emailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewEmailService(apiKey, fromEmail, fromName string) EmailService {
	return &emailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *emailService) SendRequestReceived(ctx context.Context, customerEmail, customerName string, requestType domain.RequestType, vin string) error {
	subject := fmt.Sprintf("%s request received", titleCase(requestType))
	body := fmt.Sprintf("Hello %s,\n\nWe received your %s request for vehicle %s. Our staff will review it shortly.\n\nBest regards,\nThe Showroom Team",
		customerName, strings.ToLower(string(requestType)), vin)
	return s.send(customerEmail, customerName, subject, body)
}

func (s *emailService) SendRequestDecision(ctx context.Context, customerEmail, customerName string, requestType domain.RequestType, vin string, accepted bool) error {
	decision := "accepted"
	if !accepted {
		decision = "rejected"
	}
	subject := fmt.Sprintf("%s request %s", titleCase(requestType), decision)
	body := fmt.Sprintf("Hello %s,\n\nYour %s request for vehicle %s has been %s.\n\nBest regards,\nThe Showroom Team",
		customerName, strings.ToLower(string(requestType)), vin, decision)
	return s.send(customerEmail, customerName, subject, body)
}

func (s *emailService) SendPendingRequestsReminder(ctx context.Context, managerEmail string, pendingCount int) error {
	subject := "Pending customer requests need review"
	body := fmt.Sprintf("There are %d customer requests waiting for a decision. Please review them in the showroom dashboard.", pendingCount)
	return s.send(managerEmail, "", subject, body)
}

func (s *emailService) send(to, toName, subject, plainText string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(toName, to)

	message := mail.NewSingleEmail(from, subject, recipient, plainText, "")

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}

func titleCase(t domain.RequestType) string {
	s := strings.ToLower(string(t))
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
