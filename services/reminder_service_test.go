package services

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/wisemoney/wisemoney-backend/models"
)

func TestRenderReminderEmail(t *testing.T) {
	svc := NewReminderService(nil, "test-key", "Wise Money <noreply@example.com>", time.Hour)

	since := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.Local).UnixMilli()
	html, err := svc.renderEmail(models.UserDebts{
		UserID: "alice",
		Name:   "Alice",
		Email:  "alice@example.com",
		Debts: []models.OutstandingDebt{
			{UserID: "bob", Name: "Bob", Amount: 42.5, Since: since},
		},
	})
	assert.NoError(t, err)
	assert.True(t, strings.Contains(html, "Hi Alice"))
	assert.True(t, strings.Contains(html, "Bob"))
	assert.True(t, strings.Contains(html, "42.50"))
	assert.True(t, strings.Contains(html, "Mar 15, 2026"))
}

func TestRenderReminderEmailEscapesContent(t *testing.T) {
	svc := NewReminderService(nil, "test-key", "Wise Money <noreply@example.com>", time.Hour)

	html, err := svc.renderEmail(models.UserDebts{
		Name: "<script>alert(1)</script>",
	})
	assert.NoError(t, err)
	assert.False(t, strings.Contains(html, "<script>"))
}
