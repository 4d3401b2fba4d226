package ui

import (
	"movieflix/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// pagerMsg reports that the pager was closed
type pagerMsg struct {
	what string
	err  error
}
