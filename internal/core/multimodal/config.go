// Package multimodal holds the multimodal processing configuration value types
// and the pure rules that operate on them
package multimodal

import "encoding/json"

// Config is the full multimodal processing configuration for one session
// values are immutable; every change produces a new Config
type Config struct {
	Transcription  bool `json:"transcription"  example:"true"`
	OCR            bool `json:"ocr"            example:"false"`
	ImageCaption   bool `json:"imageCaption"   example:"true"`
	VisualAnalysis bool `json:"visualAnalysis" example:"true"`
}

// Default returns the system default configuration (everything off)
func Default() Config { return Config{} }

// Key returns the canonical serialized form used to detect real changes
func (c Config) Key() string {
	// struct field order is fixed so the encoding is stable
	b, _ := json.Marshal(c)
	return string(b)
}

// Equal reports whether both configs carry the same flags
func (c Config) Equal(o Config) bool { return c == o }

// Partial is a configuration update that names only the fields it changes
// a nil field means no change requested
type Partial struct {
	Transcription  *bool `json:"transcription,omitempty"  example:"true"`
	OCR            *bool `json:"ocr,omitempty"            example:"false"`
	ImageCaption   *bool `json:"imageCaption,omitempty"   example:"true"`
	VisualAnalysis *bool `json:"visualAnalysis,omitempty" example:"true"`
}

// Bool returns a pointer to v for building partials
func Bool(v bool) *bool { return &v }

// IsEmpty reports whether p requests no change at all
func (p Partial) IsEmpty() bool {
	return p.Transcription == nil && p.OCR == nil && p.ImageCaption == nil && p.VisualAnalysis == nil
}

// Apply merges p into cfg field by field and returns the result
// fields absent from p keep their current value, so applying the same partial
// twice is the same as applying it once
func Apply(cfg Config, p Partial) Config {
	if p.Transcription != nil {
		cfg.Transcription = *p.Transcription
	}
	if p.OCR != nil {
		cfg.OCR = *p.OCR
	}
	if p.ImageCaption != nil {
		cfg.ImageCaption = *p.ImageCaption
	}
	if p.VisualAnalysis != nil {
		cfg.VisualAnalysis = *p.VisualAnalysis
	}
	return cfg
}

// Full returns a partial that sets every field to the values in cfg
func Full(cfg Config) Partial {
	return Partial{
		Transcription:  Bool(cfg.Transcription),
		OCR:            Bool(cfg.OCR),
		ImageCaption:   Bool(cfg.ImageCaption),
		VisualAnalysis: Bool(cfg.VisualAnalysis),
	}
}

// FillForAssistant applies the assistant defaults to p
// transcription is always forced on; the other flags are switched on only when
// the partial leaves them unset
func FillForAssistant(p Partial) Partial {
	p.Transcription = Bool(true)
	if p.OCR == nil {
		p.OCR = Bool(true)
	}
	if p.ImageCaption == nil {
		p.ImageCaption = Bool(true)
	}
	if p.VisualAnalysis == nil {
		p.VisualAnalysis = Bool(true)
	}
	return p
}
