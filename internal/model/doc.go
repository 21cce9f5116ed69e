package model

// Package model defines domain data structures used across the app: the file
// selection, editing operations, background edit tasks, status enums and the
// result of an operation. Structures are designed for direct binding in the UI
// and explicit state transitions.
