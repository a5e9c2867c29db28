// Package ui holds the presentation state the form handler writes to: the
// message region under each form and the current location.
package ui

import (
	"sync"
	"time"
)

type Kind int

const (
	KindError Kind = iota
	KindSuccess
)

const (
	ClassBase    = "message"
	ClassError   = "message error"
	ClassSuccess = "message success"
)

func (k Kind) Class() string {
	if k == KindSuccess {
		return ClassSuccess
	}
	return ClassError
}

// Message is a text region with a style class. Success messages clear
// themselves after the configured delay; a later Show cancels a pending clear.
type Message struct {
	mu        sync.Mutex
	id        string
	text      string
	class     string
	delay     time.Duration
	timer     *time.Timer
	gen       uint64
	listeners []func(id, text, class string)
}

func NewMessage(id string, clearDelay time.Duration) *Message {
	return &Message{id: id, class: ClassBase, delay: clearDelay}
}

func (m *Message) ID() string { return m.id }

// OnChange registers fn to be called after every change of text or class.
// Listeners run outside the message lock.
func (m *Message) OnChange(fn func(id, text, class string)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listeners = append(m.listeners, fn)
}

func (m *Message) Show(text string, kind Kind) {
	m.mu.Lock()
	m.gen++
	gen := m.gen
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
	m.text = text
	m.class = kind.Class()
	if kind == KindSuccess {
		m.timer = time.AfterFunc(m.delay, func() { m.clear(gen) })
	}
	m.mu.Unlock()

	m.notify(text, kind.Class())
}

// Text returns the visible text and the current class.
func (m *Message) Text() (string, string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text, m.class
}

// Close stops a pending clear.
func (m *Message) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gen++
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
}

func (m *Message) clear(gen uint64) {
	m.mu.Lock()
	if gen != m.gen {
		m.mu.Unlock()
		return
	}
	m.text = ""
	m.class = ClassBase
	m.timer = nil
	m.mu.Unlock()

	m.notify("", ClassBase)
}

func (m *Message) notify(text, class string) {
	m.mu.Lock()
	listeners := append([]func(id, text, class string){}, m.listeners...)
	m.mu.Unlock()

	for _, fn := range listeners {
		fn(m.id, text, class)
	}
}
