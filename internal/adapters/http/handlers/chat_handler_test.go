package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/ore-roller/internal/adapters/http/dto"
	"github.com/jsamuelsen11/ore-roller/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/ore-roller/internal/domain"
	"github.com/jsamuelsen11/ore-roller/internal/domain/chat"
	"github.com/jsamuelsen11/ore-roller/mocks"
)

func newChatLogHandler(t *testing.T) (*handlers.ChatLogHandler, *mocks.MockChatLog) {
	t.Helper()
	log := mocks.NewMockChatLog(t)
	return handlers.NewChatLogHandler(log), log
}

func TestListMessages(t *testing.T) {
	t.Parallel()

	t.Run("default limit", func(t *testing.T) {
		t.Parallel()
		h, log := newChatLogHandler(t)

		log.EXPECT().ListMessages(mock.Anything, 0).Return([]chat.Message{
			{ID: "m-2", User: "gm", Content: "<div/>", CreatedAt: testTime},
		}, nil)

		rec := httptest.NewRecorder()
		h.ListMessages(rec, httptest.NewRequest(http.MethodGet, "/api/v1/chat/messages", nil))

		requireStatus(t, rec, http.StatusOK)
		resp := decodeJSON[dto.ChatMessageListResponse](t, rec)
		if resp.Count != 1 || resp.Messages[0].ID != "m-2" {
			t.Errorf("response = %+v, want one message m-2", resp)
		}
	})

	t.Run("explicit limit", func(t *testing.T) {
		t.Parallel()
		h, log := newChatLogHandler(t)

		log.EXPECT().ListMessages(mock.Anything, 5).Return(nil, nil)

		rec := httptest.NewRecorder()
		h.ListMessages(rec, httptest.NewRequest(http.MethodGet, "/api/v1/chat/messages?limit=5", nil))

		requireStatus(t, rec, http.StatusOK)
		resp := decodeJSON[dto.ChatMessageListResponse](t, rec)
		if resp.Count != 0 || resp.Messages == nil {
			t.Errorf("response = %+v, want empty non-nil list", resp)
		}
	})

	for _, q := range []string{"abc", "-1"} {
		t.Run("invalid limit "+q, func(t *testing.T) {
			t.Parallel()
			h, _ := newChatLogHandler(t)

			rec := httptest.NewRecorder()
			h.ListMessages(rec, httptest.NewRequest(http.MethodGet, "/api/v1/chat/messages?limit="+q, nil))

			requireStatus(t, rec, http.StatusBadRequest)
		})
	}

	t.Run("storage failure", func(t *testing.T) {
		t.Parallel()
		h, log := newChatLogHandler(t)

		log.EXPECT().ListMessages(mock.Anything, 0).Return(nil, domain.ErrUnavailable)

		rec := httptest.NewRecorder()
		h.ListMessages(rec, httptest.NewRequest(http.MethodGet, "/api/v1/chat/messages", nil))

		requireStatus(t, rec, http.StatusBadGateway)
	})
}

func TestListNotifications(t *testing.T) {
	t.Parallel()

	t.Run("filters by user", func(t *testing.T) {
		t.Parallel()
		h, log := newChatLogHandler(t)

		log.EXPECT().ListNotifications(mock.Anything, "bob", 10).Return([]chat.Notification{
			{ID: "n-1", Level: chat.LevelError, User: "bob", Text: "Failed parsing ORE command: \n/ore abc", CreatedAt: testTime},
		}, nil)

		rec := httptest.NewRecorder()
		h.ListNotifications(rec, httptest.NewRequest(http.MethodGet, "/api/v1/notifications?user=bob&limit=10", nil))

		requireStatus(t, rec, http.StatusOK)
		resp := decodeJSON[dto.NotificationListResponse](t, rec)
		if resp.Count != 1 || resp.Notifications[0].Level != "error" {
			t.Errorf("response = %+v, want one error notification", resp)
		}
	})

	t.Run("everyone", func(t *testing.T) {
		t.Parallel()
		h, log := newChatLogHandler(t)

		log.EXPECT().ListNotifications(mock.Anything, "", 0).Return(nil, nil)

		rec := httptest.NewRecorder()
		h.ListNotifications(rec, httptest.NewRequest(http.MethodGet, "/api/v1/notifications", nil))

		requireStatus(t, rec, http.StatusOK)
	})
}
