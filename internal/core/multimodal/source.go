package multimodal

import (
	perr "ingestlab/internal/platform/errors"
)

// Source identifies who produced a configuration update
type Source uint8

const (
	// User is a human driving the UI
	User Source = iota + 1

	// AIAssistant is the automated conversation assistant
	AIAssistant

	// System is the platform applying defaults
	System
)

// Sources lists every valid source in declaration order
var Sources = []Source{User, AIAssistant, System}

// String returns the wire name of the source
func (s Source) String() string {
	switch s {
	case User:
		return "user"
	case AIAssistant:
		return "ai_assistant"
	case System:
		return "system"
	default:
		return "unknown"
	}
}

// Valid reports whether s is one of the declared sources
func (s Source) Valid() bool {
	switch s {
	case User, AIAssistant, System:
		return true
	default:
		return false
	}
}

// ParseSource maps a wire name to a Source
func ParseSource(v string) (Source, error) {
	switch v {
	case "user":
		return User, nil
	case "ai_assistant":
		return AIAssistant, nil
	case "system":
		return System, nil
	default:
		return 0, perr.InvalidArgf("unknown update source %q", v)
	}
}

// MarshalText implements encoding.TextMarshaler
func (s Source) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, perr.InvalidArgf("unknown update source %d", uint8(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (s *Source) UnmarshalText(b []byte) error {
	v, err := ParseSource(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}
