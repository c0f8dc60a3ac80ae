// Package errors provides structured error handling for the richtext library.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindInit indicates an initialization error.
	KindInit
	// KindFont indicates a font registration or resolution error.
	KindFont
	// KindParse indicates a source parsing failure.
	KindParse
	// KindHighlight indicates a syntax highlighting error.
	KindHighlight
	// KindConfig indicates a stylesheet or configuration error.
	KindConfig
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindInit:
		return "init"
	case KindFont:
		return "font"
	case KindParse:
		return "parse"
	case KindHighlight:
		return "highlight"
	case KindConfig:
		return "config"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// RichtextError represents a structured error in the richtext library.
type RichtextError struct {
	// Op is the operation that failed (e.g., "fonts.Manager.Resolve").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *RichtextError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *RichtextError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "markdown.Converter.Convert").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ParseError represents a failure to parse source input.
// It is returned instead of aborting, so callers can substitute
// fallback content and continue.
type ParseError struct {
	// Format is the input format ("markdown", "color", "stylesheet").
	Format string
	// Input is a short excerpt of the offending input.
	Input string
	// Reason describes why parsing failed.
	Reason string
	// Err is the underlying error, if any.
	Err error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("failed to parse %s input: %v", e.Format, e.Err)
	}
	if e.Input != "" {
		return fmt.Sprintf("failed to parse %s input %q: %s", e.Format, e.Input, e.Reason)
	}
	return fmt.Sprintf("failed to parse %s input: %s", e.Format, e.Reason)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ErrorHandler receives errors reported by the richtext library.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *RichtextError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
