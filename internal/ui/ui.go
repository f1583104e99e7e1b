// Package ui holds the small view toggles of the site: sidebar, reply forms and the blog modal.
package ui

import (
	"sort"
	"strconv"
	"strings"
)

const (
	ClassActive = "active"
	ClassShow   = "show"
)

// Toggle flips an element's active state.
func Toggle(active bool) bool {
	return !active
}

// ClassList appends the state class to the base classes when on is set.
func ClassList(base, stateClass string, on bool) string {
	if !on {
		return base
	}
	return strings.TrimSpace(base + " " + stateClass)
}

type ModalTrigger string

const (
	ModalTriggerCloseButton ModalTrigger = "close-button"
	ModalTriggerClick       ModalTrigger = "click"
	ModalTriggerKeydown     ModalTrigger = "keydown"
)

// ModalEvent is an interaction observed while the blog modal is open.
type ModalEvent struct {
	Trigger ModalTrigger `json:"trigger"`
	// Key is set for keydown events, e.g. "Escape".
	Key string `json:"key,omitempty"`
	// OnBackdrop is set for clicks that hit the backdrop itself, not the dialog.
	OnBackdrop bool `json:"onBackdrop,omitempty"`
}

// ModalShouldClose reports whether ev closes the modal: the close button,
// a click on the backdrop, or the Escape key.
func ModalShouldClose(ev ModalEvent) bool {
	switch ev.Trigger {
	case ModalTriggerCloseButton:
		return true
	case ModalTriggerClick:
		return ev.OnBackdrop
	case ModalTriggerKeydown:
		return ev.Key == "Escape"
	default:
		return false
	}
}

// ReplyForms is the set of posts whose reply form is open.
type ReplyForms map[int]bool

// ParseReplyForms reads a comma separated list of post ids, skipping anything
// that is not a number.
func ParseReplyForms(raw string) ReplyForms {
	forms := ReplyForms{}
	for _, part := range strings.Split(raw, ",") {
		id, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			continue
		}
		forms[id] = true
	}
	return forms
}

func (f ReplyForms) IsOpen(postID int) bool {
	return f[postID]
}

// Toggle opens or closes the reply form of one post and returns its new state.
// Other forms are left as they are.
func (f ReplyForms) Toggle(postID int) bool {
	if f[postID] {
		delete(f, postID)
		return false
	}
	f[postID] = true
	return true
}

func (f ReplyForms) String() string {
	ids := make([]int, 0, len(f))
	for id := range f {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ",")
}
