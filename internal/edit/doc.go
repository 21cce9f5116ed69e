package edit

// Package edit turns a file selection and an operation choice into a call on
// the media engine. It checks preconditions before anything runs, validates
// operation parameters, names default outputs, maps outcomes to model.Result
// and runs operations in the background with progress and cancellation.
