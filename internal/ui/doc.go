package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// It shows the login screen, then one tab per backend resource (appointments,
// prescriptions, chat, profile, patients), and relays chat socket events into
// the window. All UI strings are localized via Localization.
