package ui

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/dsaccounts/internal/logging"
)

func TestKind_Class(t *testing.T) {
	assert.Equal(t, "message error", KindError.Class())
	assert.Equal(t, "message success", KindSuccess.Class())
}

func TestMessage_Initial(t *testing.T) {
	m := NewMessage("signup-message", time.Second)
	text, class := m.Text()
	assert.Equal(t, "", text)
	assert.Equal(t, "message", class)
	assert.Equal(t, "signup-message", m.ID())
}

func TestMessage_ErrorStays(t *testing.T) {
	m := NewMessage("m", 10*time.Millisecond)
	m.Show("Incorrect password.", KindError)

	time.Sleep(50 * time.Millisecond)
	text, class := m.Text()
	assert.Equal(t, "Incorrect password.", text)
	assert.Equal(t, "message error", class)
}

func TestMessage_SuccessClears(t *testing.T) {
	m := NewMessage("m", 20*time.Millisecond)
	m.Show("Signed in. Redirecting...", KindSuccess)

	text, class := m.Text()
	require.Equal(t, "Signed in. Redirecting...", text)
	require.Equal(t, "message success", class)

	require.Eventually(t, func() bool {
		text, class := m.Text()
		return text == "" && class == "message"
	}, time.Second, 5*time.Millisecond)
}

func TestMessage_NewerShowCancelsPendingClear(t *testing.T) {
	m := NewMessage("m", 30*time.Millisecond)
	m.Show("Account created. Redirecting...", KindSuccess)
	m.Show("Passwords do not match.", KindError)

	time.Sleep(80 * time.Millisecond)
	text, class := m.Text()
	assert.Equal(t, "Passwords do not match.", text)
	assert.Equal(t, "message error", class)
}

func TestMessage_CloseStopsClear(t *testing.T) {
	m := NewMessage("m", 20*time.Millisecond)
	m.Show("ok", KindSuccess)
	m.Close()

	time.Sleep(60 * time.Millisecond)
	text, _ := m.Text()
	assert.Equal(t, "ok", text)
}

func TestMessage_OnChange(t *testing.T) {
	m := NewMessage("signin-message", 10*time.Millisecond)

	var mu sync.Mutex
	var got []string
	m.OnChange(func(id, text, class string) {
		mu.Lock()
		defer mu.Unlock()
		got = append(got, id+"|"+text+"|"+class)
	})

	m.Show("Signed in. Redirecting...", KindSuccess)

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(got) == 2
	}, time.Second, 5*time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{
		"signin-message|Signed in. Redirecting...|message success",
		"signin-message||message",
	}, got)
}

func TestLocation_Navigate(t *testing.T) {
	l := NewLocation(logging.Discard())
	assert.Equal(t, StartPage, l.Current())

	require.NoError(t, l.Navigate(context.Background(), "dashboard.html"))
	assert.Equal(t, "dashboard.html", l.Current())
}

func TestLocation_Navigate_CancelledContext(t *testing.T) {
	l := NewLocation(logging.Discard())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.ErrorIs(t, l.Navigate(ctx, "dashboard.html"), context.Canceled)
	assert.Equal(t, StartPage, l.Current())
}
