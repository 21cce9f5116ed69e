package ui

// Package ui contains the Fyne-based desktop user interface of the editor.
// It collects the file selection and operation parameters, hands requests to
// the edit service and renders the running task and its result. All UI
// strings are localized via Localization.
