package service

import (
	"context"
	"testing"
	"time"

	"showcase/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockContactRepository is a mock of the ContactRepository interface
type MockContactRepository struct {
	mock.Mock
}

func (m *MockContactRepository) List(ctx context.Context) ([]models.ContactMessage, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ContactMessage), args.Error(1)
}

func (m *MockContactRepository) Create(ctx context.Context, msg *models.ContactMessage) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func (m *MockContactRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// recordingMailer captures notification attempts and can be told to fail.
type recordingMailer struct {
	err  error
	sent chan *models.ContactMessage
}

func newRecordingMailer(err error) *recordingMailer {
	return &recordingMailer{err: err, sent: make(chan *models.ContactMessage, 1)}
}

func (m *recordingMailer) SendContactNotification(msg *models.ContactMessage) error {
	m.sent <- msg
	return m.err
}

func waitForNotification(t *testing.T, m *recordingMailer) *models.ContactMessage {
	t.Helper()
	select {
	case msg := <-m.sent:
		return msg
	case <-time.After(2 * time.Second):
		t.Fatal("notification was never attempted")
		return nil
	}
}

func TestContactService_SubmitPersistsAndNotifies(t *testing.T) {
	mockRepo := new(MockContactRepository)
	mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	mail := newRecordingMailer(nil)
	svc := NewContactService(mockRepo, mail)

	msg, err := svc.Submit(context.Background(), "A", "a@x.com", "hello")
	require.NoError(t, err)
	assert.Equal(t, "A", msg.Name)

	notified := waitForNotification(t, mail)
	assert.Equal(t, "hello", notified.Message)
	mockRepo.AssertCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestContactService_RelayFailureDoesNotFailSubmit(t *testing.T) {
	mockRepo := new(MockContactRepository)
	mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	mail := newRecordingMailer(assert.AnError)
	svc := NewContactService(mockRepo, mail)

	// The submission succeeds even though the relay will fail.
	msg, err := svc.Submit(context.Background(), "A", "a@x.com", "hello")
	require.NoError(t, err)
	require.NotNil(t, msg)

	waitForNotification(t, mail)
}

func TestContactService_SubmitWithoutMailer(t *testing.T) {
	mockRepo := new(MockContactRepository)
	mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	svc := NewContactService(mockRepo, nil)

	_, err := svc.Submit(context.Background(), "A", "a@x.com", "hello")
	assert.NoError(t, err)
}

func TestContactService_SubmitValidation(t *testing.T) {
	mockRepo := new(MockContactRepository)
	mail := newRecordingMailer(nil)
	svc := NewContactService(mockRepo, mail)

	_, err := svc.Submit(context.Background(), "", "a@x.com", "hello")
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)

	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	assert.Empty(t, mail.sent, "no notification for a rejected submission")
}

func TestContactService_PersistFailureSkipsNotification(t *testing.T) {
	mockRepo := new(MockContactRepository)
	mockRepo.On("Create", mock.Anything, mock.Anything).Return(models.NewInternalError(assert.AnError))
	mail := newRecordingMailer(nil)
	svc := NewContactService(mockRepo, mail)

	_, err := svc.Submit(context.Background(), "A", "a@x.com", "hello")
	require.Error(t, err)
	assert.Empty(t, mail.sent)
}
