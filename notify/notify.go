// Copyright (c) Toit contributors. All rights reserved.
// Licensed under the MIT License.

// Package notify provides cross-platform desktop notification support,
// delegating platform differences to github.com/gen2brain/beeep.
package notify

import (
	"fmt"

	"github.com/gen2brain/beeep"
)

// Notification represents a desktop notification to be displayed.
type Notification struct {
	// Title is the notification title.
	Title string

	// Message is the notification body.
	Message string

	// Urgent marks the notification as an alert rather than a plain
	// informational notification.
	Urgent bool

	// Icon is an optional path to an icon image. Empty uses the
	// platform default.
	Icon string
}

// Send displays the notification through the OS notification system.
// Unlike browser launching this is not fire-and-forget: the caller decides
// whether a missed notification matters.
func Send(n Notification) error {
	var err error
	if n.Urgent {
		err = beeep.Alert(n.Title, n.Message, n.Icon)
	} else {
		err = beeep.Notify(n.Title, n.Message, n.Icon)
	}
	if err != nil {
		return fmt.Errorf("send notification: %w", err)
	}
	return nil
}
