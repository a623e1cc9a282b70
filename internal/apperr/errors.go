package apperr

import (
	"errors"
	"fmt"
)

// Kind categorises an error by how the presentation layer should react to it.
type Kind string

const (
	KindMissingFile      Kind = "missing_file"
	KindEmptyInput       Kind = "empty_input"
	KindInvalidInput     Kind = "invalid_input"
	KindNoSelection      Kind = "no_selection"
	KindNoResults        Kind = "no_results"
	KindFragmentNotFound Kind = "fragment_not_found"
	KindWrongPassword    Kind = "wrong_password"
	KindStorage          Kind = "storage"
	KindConfig           Kind = "config"
)

// Error is a structured application error carrying a dialog title and a
// message suitable for the user.
type Error struct {
	Kind        Kind
	Code        string
	Message     string
	Title       string
	UserMessage string
	Err         error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s:%s] %s: %v", e.Kind, e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s:%s] %s", e.Kind, e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports a match when target is an *Error of the same Kind. This lets
// callers compare against the predefined values below with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// WithUserMessage returns a copy of e with a different user-facing message.
func (e *Error) WithUserMessage(msg string) *Error {
	c := *e
	c.UserMessage = msg
	return &c
}

func New(kind Kind, code, message string) *Error {
	return &Error{Kind: kind, Code: code, Message: message}
}

// Wrap attaches kind and code to an underlying error.
func Wrap(err error, kind Kind, code, message string) *Error {
	return &Error{Kind: kind, Code: code, Message: message, Err: err}
}

// KindOf returns the Kind of the first *Error in err's chain, or "" if none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// UserMessage returns the user-facing message for err, falling back to err.Error().
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if e.UserMessage != "" {
			return e.UserMessage
		}
		return e.Message
	}
	if err == nil {
		return ""
	}
	return err.Error()
}

// Title returns the dialog title for err, or fallback when none is set.
func Title(err error, fallback string) string {
	var e *Error
	if errors.As(err, &e) && e.Title != "" {
		return e.Title
	}
	return fallback
}

var (
	ErrMissingFile = &Error{
		Kind: KindMissingFile, Code: "DIARY_MISSING", Message: "diary file does not exist",
		Title: "No Entries", UserMessage: "No diary entries yet!",
	}

	ErrEmptyEntry = &Error{
		Kind: KindEmptyInput, Code: "EMPTY_ENTRY", Message: "entry body is empty",
		Title: "Empty Entry", UserMessage: "Write something before saving!",
	}

	ErrInvalidMood = &Error{
		Kind: KindInvalidInput, Code: "INVALID_MOOD", Message: "mood is not one of the offered moods",
		Title: "Invalid Mood", UserMessage: "Pick one of the listed moods.",
	}

	ErrEmptyKeyword = &Error{
		Kind: KindEmptyInput, Code: "EMPTY_KEYWORD", Message: "search keyword is empty",
		Title: "Search", UserMessage: "Enter a keyword to search.",
	}

	ErrEmptyReplacement = &Error{
		Kind: KindEmptyInput, Code: "EMPTY_REPLACEMENT", Message: "replacement text is empty",
		Title: "Edit Entry", UserMessage: "The new text cannot be empty.",
	}

	ErrNoSelection = &Error{
		Kind: KindNoSelection, Code: "NO_SELECTION", Message: "no text selected",
		Title: "Select Text", UserMessage: "Select an entry first.",
	}

	ErrNoResults = &Error{
		Kind: KindNoResults, Code: "NO_RESULTS", Message: "no matching entries",
		Title: "No Results", UserMessage: "No matching entries found.",
	}

	ErrFragmentNotFound = &Error{
		Kind: KindFragmentNotFound, Code: "FRAGMENT_NOT_FOUND", Message: "selected text not found in diary",
		Title: "Not Found", UserMessage: "The selected text could not be found in the diary file.",
	}

	ErrBlockOutOfRange = &Error{
		Kind: KindNoSelection, Code: "BLOCK_OUT_OF_RANGE", Message: "entry index out of range",
		Title: "Select Entry", UserMessage: "That entry no longer exists.",
	}

	ErrWrongPassword = &Error{
		Kind: KindWrongPassword, Code: "WRONG_PASSWORD", Message: "password mismatch",
		Title: "Access Denied", UserMessage: "Wrong Password! ❌",
	}
)
