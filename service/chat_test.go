package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"eldercare_booking/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockCompleter struct {
	mock.Mock
}

func (m *mockCompleter) Complete(ctx context.Context, system string, messages []model.ChatMessage) (*model.ChatReply, error) {
	args := m.Called(system, messages)
	reply, _ := args.Get(0).(*model.ChatReply)
	return reply, args.Error(1)
}

func (m *mockCompleter) Stream(ctx context.Context, system string, messages []model.ChatMessage, onDelta func(string) error) error {
	args := m.Called(system, messages)
	for _, chunk := range []string{"Xin ", "chào"} {
		if err := onDelta(chunk); err != nil {
			return err
		}
	}
	return args.Error(0)
}

func chatInput() *model.ChatInput {
	return &model.ChatInput{Messages: []model.ChatMessage{{Role: "user", Content: "Có lớp yoga không?"}}}
}

func TestChat_NotConfigured(t *testing.T) {
	f := newFixture(t)
	svc := NewChatService(nil, f.activities)

	assert.ErrorIs(t, svc.Ready(), ErrNotConfigured)
	_, err := svc.Chat(context.Background(), chatInput())
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestChat_PromptListsActiveActivities(t *testing.T) {
	f := newFixture(t)
	admin := f.newAdmin(t)
	_, err := f.activity.Create(context.Background(), admin, activityInput("Yoga Buoi Sang"))
	require.NoError(t, err)

	completer := &mockCompleter{}
	reply := &model.ChatReply{Message: model.ChatMessage{Role: "assistant", Content: "Có ạ"}}
	completer.On("Complete", mock.MatchedBy(func(system string) bool {
		return assert.Contains(t, system, "Yoga Buoi Sang") && assert.Contains(t, system, "Sống Vui Khỏe")
	}), chatInput().Messages).Return(reply, nil)

	svc := NewChatService(completer, f.activities)
	got, err := svc.Chat(context.Background(), chatInput())
	require.NoError(t, err)
	assert.Equal(t, "Có ạ", got.Message.Content)
	completer.AssertExpectations(t)
}

func TestChat_ProviderFailure(t *testing.T) {
	f := newFixture(t)
	completer := &mockCompleter{}
	completer.On("Complete", mock.Anything, mock.Anything).Return(nil, errors.New("quota exceeded"))

	_, err := NewChatService(completer, f.activities).Chat(context.Background(), chatInput())
	assert.ErrorIs(t, err, ErrAIUnavailable)
}

func TestChat_Validation(t *testing.T) {
	f := newFixture(t)
	svc := NewChatService(&mockCompleter{}, f.activities)

	_, err := svc.Chat(context.Background(), &model.ChatInput{})
	assert.True(t, IsValidation(err))

	_, err = svc.Chat(context.Background(), &model.ChatInput{Messages: []model.ChatMessage{{Role: "system", Content: "x"}}})
	assert.True(t, IsValidation(err))
}

func TestChat_Stream(t *testing.T) {
	f := newFixture(t)
	completer := &mockCompleter{}
	completer.On("Stream", mock.Anything, mock.Anything).Return(nil)

	var got string
	err := NewChatService(completer, f.activities).Stream(context.Background(), chatInput(), func(delta string) error {
		got += delta
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "Xin chào", got)
}

type fakeSigner struct {
	folder string
}

func (s *fakeSigner) SignUpload(folder string, now time.Time) (*model.UploadSignature, error) {
	s.folder = folder
	return &model.UploadSignature{Folder: folder, Timestamp: now.Unix(), Signature: "sig"}, nil
}

func TestUploadSignature(t *testing.T) {
	f := newFixture(t)
	user, admin := f.newUser(t), f.newAdmin(t)
	signer := &fakeSigner{}
	svc := NewUploadService(signer)

	sig, err := svc.Signature(user, &model.UploadSignatureInput{})
	require.NoError(t, err)
	assert.Equal(t, elderDocumentFolder, sig.Folder)

	_, err = svc.Signature(user, &model.UploadSignatureInput{Folder: "activities"})
	assert.ErrorIs(t, err, ErrForbidden)

	sig, err = svc.Signature(admin, &model.UploadSignatureInput{Folder: "activities"})
	require.NoError(t, err)
	assert.Equal(t, activityImageFolder, sig.Folder)

	_, err = svc.Signature(model.Actor{}, &model.UploadSignatureInput{})
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = NewUploadService(nil).Signature(user, &model.UploadSignatureInput{})
	assert.ErrorIs(t, err, ErrNotConfigured)
}
