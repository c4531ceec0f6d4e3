package notification

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Rice-Bikes/ricebikesbackend/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlackNotifier_Send(t *testing.T) {
	var received slackPayload

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, &received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	notifier := NewSlackNotifier(server.URL, slog.Default())

	err := notifier.Send(t.Context(), models.NotificationRequest{
		Kind:    models.NotificationBuildComplete,
		Message: "Build complete for transaction #42",
	})
	require.NoError(t, err)
	assert.Equal(t, "Build complete for transaction #42", received.Text)
}

func TestSlackNotifier_Send_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	notifier := NewSlackNotifier(server.URL, slog.Default())

	err := notifier.Send(t.Context(), models.NotificationRequest{Message: "hello"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}
