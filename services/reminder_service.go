package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"time"

	"github.com/resend/resend-go/v2"

	"github.com/wisemoney/wisemoney-backend/logger"
	"github.com/wisemoney/wisemoney-backend/models"
)

const reminderEmailTemplate = `<h2>Wise Money Reminder</h2>
<p>Hi {{.Name}}, you have the following outstanding balances:</p>
<table cellspacing="0" cellpadding="0" border="1" style="border-collapse:collapse;">
  <thead>
    <tr><th>To</th><th>Amount</th><th>Since</th></tr>
  </thead>
  <tbody>
    {{range .Debts}}<tr>
      <td style="padding:4px 8px;">{{.Name}}</td>
      <td style="padding:4px 8px;">{{.Amount}}</td>
      <td style="padding:4px 8px;">{{.Since}}</td>
    </tr>{{end}}
  </tbody>
</table>
<p>Please settle up soon. Thanks!</p>`

// reminderRow is one preformatted debt line of the reminder email.
type reminderRow struct {
	Name   string
	Amount string
	Since  string
}

// ReminderService periodically emails every user with outstanding personal
// debts a summary of who they owe, how much, and since when.
type ReminderService struct {
	debts    *DebtsService
	client   *resend.Client
	from     string
	interval time.Duration
	tmpl     *template.Template
}

// NewReminderService creates a new reminder service
func NewReminderService(debts *DebtsService, apiKey, from string, interval time.Duration) *ReminderService {
	return &ReminderService{
		debts:    debts,
		client:   resend.NewClient(apiKey),
		from:     from,
		interval: interval,
		tmpl:     template.Must(template.New("reminder").Parse(reminderEmailTemplate)),
	}
}

// Run sends reminders on the configured interval until the context is
// cancelled.
func (s *ReminderService) Run(ctx context.Context) {
	log := logger.GetLogger()
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	log.Infow("Payment reminder job started", "interval", s.interval)
	for {
		select {
		case <-ctx.Done():
			log.Info("Payment reminder job stopped")
			return
		case <-ticker.C:
			sent, err := s.SendReminders()
			if err != nil {
				log.Errorw("Payment reminder run failed", "error", err)
				continue
			}
			log.Infow("Payment reminder run finished", "sent", sent)
		}
	}
}

// SendReminders computes every user's outstanding debts and emails the
// debtors. Users without email or without debts are skipped. Returns the
// number of emails sent.
func (s *ReminderService) SendReminders() (int, error) {
	log := logger.GetLogger()

	usersDebts, err := s.debts.UsersWithOutstandingDebts()
	if err != nil {
		return 0, fmt.Errorf("failed to compute outstanding debts: %w", err)
	}

	sent := 0
	for _, ud := range usersDebts {
		if ud.Email == "" {
			continue
		}

		html, err := s.renderEmail(ud)
		if err != nil {
			log.Errorw("Failed to render reminder email", "userId", ud.UserID, "error", err)
			continue
		}

		params := &resend.SendEmailRequest{
			From:    s.from,
			To:      []string{ud.Email},
			Subject: "You have pending payments on Wise Money",
			Html:    html,
		}
		if _, err := s.client.Emails.Send(params); err != nil {
			log.Errorw("Failed to send reminder email", "userId", ud.UserID, "error", err)
			continue
		}
		sent++
	}
	return sent, nil
}

func (s *ReminderService) renderEmail(ud models.UserDebts) (string, error) {
	rows := make([]reminderRow, len(ud.Debts))
	for i, d := range ud.Debts {
		rows[i] = reminderRow{
			Name:   d.Name,
			Amount: fmt.Sprintf("%.2f", d.Amount),
			Since:  time.UnixMilli(d.Since).Format("Jan 2, 2006"),
		}
	}

	var buf bytes.Buffer
	data := struct {
		Name  string
		Debts []reminderRow
	}{Name: ud.Name, Debts: rows}

	if err := s.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.String(), nil
}
