package platform

// Package platform contains OS integration: per-user directories for logs and
// revealing files in the system file manager.
