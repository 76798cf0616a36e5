package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconClose    = "×"
	IconReminder = "🔔"
	IconWarning  = "⚠"
)

// Text fragments
const (
	DashPlaceholder = "-"
	ChatLineFormat  = "%s: %s"
)

// Layout sizing
const (
	LoginFormWidth float32 = 360

	TableDateColumnWidth   float32 = 160
	TableNameColumnWidth   float32 = 180
	TableReasonColumnWidth float32 = 320
	TableShortColumnWidth  float32 = 120

	DialogWidth  float32 = 480
	DialogHeight float32 = 360
)

// Notification bar behavior
const (
	NotificationAutoHide = 8 * time.Second
)

// Window size
const (
	WindowWidth  = 900
	WindowHeight = 640
)
