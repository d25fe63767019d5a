package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/smtp"
	"time"

	"github.com/turnario/turnario-backend-go/internal/config"
)

//go:embed templates/*.html
var templateFS embed.FS

const maxRetries = 3

// EmailService defines the interface for sending emails
type EmailService interface {
	SendShiftAssignment(to, operatorName, eventTitle, shiftDate, startTime, endTime, address string) error
	SendMissedCheckinDigest(to, plannerName, reportDate string, entries []MissedCheckinEntry) error
}

type emailServiceImpl struct {
	cfg       config.SMTPConfig
	templates *template.Template
}

// NewEmailService creates a new email service instance
func NewEmailService(cfg config.SMTPConfig) (EmailService, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse email templates: %w", err)
	}

	return &emailServiceImpl{
		cfg:       cfg,
		templates: tmpl,
	}, nil
}

type shiftAssignmentEmailData struct {
	OperatorName string
	EventTitle   string
	ShiftDate    string
	StartTime    string
	EndTime      string
	Address      string
}

// SendShiftAssignment notifies an operator that a shift slot was assigned to them
func (s *emailServiceImpl) SendShiftAssignment(to, operatorName, eventTitle, shiftDate, startTime, endTime, address string) error {
	data := shiftAssignmentEmailData{
		OperatorName: operatorName,
		EventTitle:   eventTitle,
		ShiftDate:    shiftDate,
		StartTime:    startTime,
		EndTime:      endTime,
		Address:      address,
	}

	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "shift_assignment.html", data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	return s.sendHTML(to, fmt.Sprintf("Nuovo turno assegnato: %s", eventTitle), body.String())
}

// MissedCheckinEntry is one row of the nightly missed check-in digest
type MissedCheckinEntry struct {
	OperatorName string
	EventTitle   string
	ShiftDate    string
	StartTime    string
}

type missedCheckinDigestData struct {
	PlannerName string
	ReportDate  string
	Entries     []MissedCheckinEntry
}

// SendMissedCheckinDigest sends the nightly summary of shifts with no check-in to a planner
func (s *emailServiceImpl) SendMissedCheckinDigest(to, plannerName, reportDate string, entries []MissedCheckinEntry) error {
	data := missedCheckinDigestData{
		PlannerName: plannerName,
		ReportDate:  reportDate,
		Entries:     entries,
	}

	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "missed_checkins.html", data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	return s.sendHTML(to, fmt.Sprintf("Presenze mancanti del %s", reportDate), body.String())
}

func (s *emailServiceImpl) sendHTML(to, subject, htmlBody string) error {
	// Skip sending if SMTP is not configured
	if s.cfg.Host == "" {
		slog.Warn("SMTP not configured, skipping email send", "to", to, "subject", subject)
		return nil
	}

	from := s.cfg.From

	headers := fmt.Sprintf("From: %s <%s>\r\n", s.cfg.FromName, from)
	headers += fmt.Sprintf("To: %s\r\n", to)
	headers += fmt.Sprintf("Subject: %s\r\n", subject)
	headers += "MIME-Version: 1.0\r\n"
	headers += "Content-Type: text/html; charset=\"UTF-8\"\r\n"
	headers += "\r\n"

	message := []byte(headers + htmlBody)

	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		err := smtp.SendMail(addr, auth, from, []string{to}, message)
		if err == nil {
			slog.Info("Email sent successfully", "to", to, "subject", subject, "attempt", attempt)
			return nil
		}

		lastErr = err
		slog.Error("Failed to send email",
			"to", to,
			"subject", subject,
			"attempt", attempt,
			"max_retries", maxRetries,
			"error", err,
		)

		// Wait before retrying (exponential backoff: 1s, 2s, 4s)
		if attempt < maxRetries {
			time.Sleep(time.Duration(1<<(attempt-1)) * time.Second)
		}
	}

	return fmt.Errorf("failed to send email after %d attempts: %w", maxRetries, lastErr)
}
