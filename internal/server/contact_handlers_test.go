package server

import (
	"errors"
	"net/http"
	"strconv"
	"sync"
	"testing"
	"time"

	"showcase/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingMailer always errors on relay, to prove the submit response
// does not depend on the notification outcome.
type failingMailer struct {
	mu    sync.Mutex
	calls int
}

func (m *failingMailer) SendContactNotification(msg *models.ContactMessage) error {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()
	return errors.New("smtp: relay refused")
}

func (m *failingMailer) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

func TestSubmitContactMessage(t *testing.T) {
	app, _, db := setupTestServer(t, nil)

	resp, body := doJSON(t, app, http.MethodPost, "/api/contact", map[string]any{
		"name":    "Jane Visitor",
		"email":   "jane@example.com",
		"message": "I would like to talk about a project.",
	}, "")

	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "Contact message sent successfully", body["message"])

	contact, ok := body["contact"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Jane Visitor", contact["name"])
	assert.Equal(t, false, contact["read"])

	var count int64
	require.NoError(t, db.Model(&models.ContactMessage{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestSubmitContactMessageValidation(t *testing.T) {
	app, _, db := setupTestServer(t, nil)

	resp, body := doJSON(t, app, http.MethodPost, "/api/contact", map[string]any{
		"name":  "Jane Visitor",
		"email": "jane@example.com",
	}, "")

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Name, email, and message are required", body["message"])

	var count int64
	require.NoError(t, db.Model(&models.ContactMessage{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestSubmitContactMessageSurvivesRelayFailure(t *testing.T) {
	mail := &failingMailer{}
	app, _, db := setupTestServer(t, mail)

	resp, _ := doJSON(t, app, http.MethodPost, "/api/contact", map[string]any{
		"name":    "Jane Visitor",
		"email":   "jane@example.com",
		"message": "Hello there.",
	}, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var count int64
	require.NoError(t, db.Model(&models.ContactMessage{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	// Notification runs off-request; give it a moment to fire.
	deadline := time.Now().Add(2 * time.Second)
	for mail.callCount() == 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	assert.Equal(t, 1, mail.callCount())
}

func TestListContactMessagesRequiresAuth(t *testing.T) {
	app, _, _ := setupTestServer(t, nil)

	resp, body := doJSON(t, app, http.MethodGet, "/api/contact", nil, "")
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Authentication required", body["message"])
}

func TestListContactMessagesNewestFirst(t *testing.T) {
	app, srv, db := setupTestServer(t, nil)
	_, token := createTestUser(t, srv, db, "admin@example.com", "password123")

	older := &models.ContactMessage{Name: "First", Email: "a@example.com", Message: "older"}
	require.NoError(t, db.Create(older).Error)
	require.NoError(t, db.Model(older).Update("created_at", time.Now().Add(-time.Hour)).Error)
	require.NoError(t, db.Create(&models.ContactMessage{
		Name: "Second", Email: "b@example.com", Message: "newer",
	}).Error)

	resp, list := doJSONList(t, app, http.MethodGet, "/api/contact", token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, list, 2)
	assert.Equal(t, "Second", list[0]["name"])
	assert.Equal(t, "First", list[1]["name"])
}

func TestDeleteContactMessage(t *testing.T) {
	app, srv, db := setupTestServer(t, nil)
	_, token := createTestUser(t, srv, db, "admin@example.com", "password123")

	msg := &models.ContactMessage{Name: "Jane", Email: "jane@example.com", Message: "hi"}
	require.NoError(t, db.Create(msg).Error)

	resp, body := doJSON(t, app, http.MethodDelete, "/api/contact/"+strconv.Itoa(int(msg.ID)), nil, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Contact message deleted successfully", body["message"])

	var count int64
	require.NoError(t, db.Model(&models.ContactMessage{}).Count(&count).Error)
	assert.Zero(t, count)

	resp, body = doJSON(t, app, http.MethodDelete, "/api/contact/"+strconv.Itoa(int(msg.ID)), nil, token)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Message not found", body["message"])
}

func TestDeleteContactMessageRequiresAuth(t *testing.T) {
	app, _, db := setupTestServer(t, nil)

	msg := &models.ContactMessage{Name: "Jane", Email: "jane@example.com", Message: "hi"}
	require.NoError(t, db.Create(msg).Error)

	resp, _ := doJSON(t, app, http.MethodDelete, "/api/contact/"+strconv.Itoa(int(msg.ID)), nil, "")
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	var count int64
	require.NoError(t, db.Model(&models.ContactMessage{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
