package errors

import (
	"fmt"
)

// EnvelopeError represents an inbound push message that could not be decoded.
type EnvelopeError struct {
	Tag     string
	Message string
	Err     error
}

// NewEnvelopeError constructs an EnvelopeError.
func NewEnvelopeError(tag string, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &EnvelopeError{Tag: tag, Message: message, Err: err}
}

func (e *EnvelopeError) Error() string {
	if e == nil {
		return ""
	}
	if e.Tag != "" {
		return fmt.Sprintf("envelope error: %s: %s", e.Tag, e.Message)
	}
	return fmt.Sprintf("envelope error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *EnvelopeError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// AttributeError captures a host attribute value that failed to parse.
type AttributeError struct {
	Attribute string
	Value     string
	Err       error
}

// NewAttributeError constructs an AttributeError.
func NewAttributeError(attribute, value string, err error) error {
	return &AttributeError{Attribute: attribute, Value: value, Err: err}
}

func (e *AttributeError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("attribute error: %s=%q: %v", e.Attribute, e.Value, e.Err)
}

// Unwrap exposes the underlying error.
func (e *AttributeError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ConnectionError represents a failure while establishing or using a push connection.
type ConnectionError struct {
	URL string
	Err error
}

// NewConnectionError constructs a ConnectionError.
func NewConnectionError(url string, err error) error {
	return &ConnectionError{URL: url, Err: err}
}

func (e *ConnectionError) Error() string {
	if e == nil {
		return ""
	}
	if e.URL != "" {
		return fmt.Sprintf("connection error: %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("connection error: %v", e.Err)
}

// Unwrap exposes the root error.
func (e *ConnectionError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ManifestError captures an embed manifest that failed to load or validate.
type ManifestError struct {
	Path    string
	Message string
	Err     error
}

// NewManifestError constructs a ManifestError.
func NewManifestError(path, message string, err error) error {
	return &ManifestError{Path: path, Message: message, Err: err}
}

func (e *ManifestError) Error() string {
	if e == nil {
		return ""
	}
	if e.Path != "" {
		return fmt.Sprintf("manifest error: %s: %s", e.Path, e.Message)
	}
	return fmt.Sprintf("manifest error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ManifestError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
