package whatsapp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendText_PostsToMessagesEndpoint(t *testing.T) {
	var got sendMessageRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/phone-1/messages", r.URL.Path)
		assert.Equal(t, "Bearer secret-token", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "secret-token", "phone-1", 3)
	c.step = time.Millisecond

	err := c.SendText(context.Background(), "+27821234567", "hello")
	require.NoError(t, err)

	assert.Equal(t, "+27821234567", got.To)
	assert.Equal(t, "text", got.Type)
	assert.Equal(t, "hello", got.Text.Body)
}

func TestSendText_RetriesUpToLimit(t *testing.T) {
	var calls int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "secret-token", "phone-1", 3)
	c.step = time.Millisecond

	err := c.SendText(context.Background(), "+27821234567", "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed after 3 attempts")
	assert.EqualValues(t, 3, atomic.LoadInt32(&calls))
}

func TestSendText_RecoversOnLaterAttempt(t *testing.T) {
	var calls int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 2 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "secret-token", "phone-1", 3)
	c.step = time.Millisecond

	err := c.SendText(context.Background(), "+27821234567", "hello")
	require.NoError(t, err)
	assert.EqualValues(t, 2, atomic.LoadInt32(&calls))
}

func TestSendText_SimulationModeSkipsHTTP(t *testing.T) {
	var calls int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))
	defer srv.Close()

	// Missing token: the client must not be live even with a reachable URL.
	c := NewClient(srv.URL, "", "phone-1", 3)

	err := c.SendText(context.Background(), "+27821234567", "hello")
	require.NoError(t, err)
	assert.EqualValues(t, 0, atomic.LoadInt32(&calls))
}

func TestNewClient_DefaultsRetries(t *testing.T) {
	c := NewClient("http://api", "token", "phone-1", 0)
	assert.Equal(t, defaultRetries, c.retries)

	c = NewClient("http://api", "token", "phone-1", -5)
	assert.Equal(t, defaultRetries, c.retries)
}

func TestSendPoll_BuildsOptions(t *testing.T) {
	var got sendPollRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "secret-token", "phone-1", 3)
	c.step = time.Millisecond

	long := strings.Repeat("x", 150)
	// 99 ASCII runes plus two multi-byte runes: rune 100 sits on a
	// multi-byte boundary.
	multiByte := strings.Repeat("x", 99) + "é…"

	options := []string{"Strawberries — R45.00", long, multiByte}
	err := c.SendPoll(context.Background(), "+27821234567", "Which produce?", options, true)
	require.NoError(t, err)

	assert.Equal(t, "poll", got.Type)
	assert.Equal(t, "Which produce?", got.Poll.Question)
	assert.True(t, got.Poll.AllowMultipleAnswers)

	require.Len(t, got.Poll.Options, 3)
	assert.Equal(t, "opt_0", got.Poll.Options[0].ID)
	assert.Equal(t, "Strawberries — R45.00", got.Poll.Options[0].Title)
	assert.Equal(t, "opt_1", got.Poll.Options[1].ID)
	assert.Equal(t, strings.Repeat("x", maxOptionLength), got.Poll.Options[1].Title)

	truncated := got.Poll.Options[2].Title
	assert.Len(t, []rune(truncated), maxOptionLength)
	assert.Equal(t, strings.Repeat("x", 99)+"é", truncated)
	assert.True(t, utf8.ValidString(truncated))
	assert.NotContains(t, truncated, "�")
}

func TestSendPoll_SimulationModeSkipsHTTP(t *testing.T) {
	c := NewClient("", "", "", 0)

	err := c.SendPoll(context.Background(), "+27821234567", "Which produce?", []string{"a", "b"}, false)
	require.NoError(t, err)
}
