// Package domain holds DTOs for analysis http and service contracts
package domain

import (
	"time"

	"ingestlab/internal/core/configsync"
	"ingestlab/internal/core/multimodal"
)

// AnalyzeInput describes an uploaded file by name, type and size only
type AnalyzeInput struct {
	FileName  string `json:"fileName"            validate:"required,filename,max=255"  example:"Q3 Financial Report.pdf"`
	FileType  string `json:"fileType"            validate:"omitempty,mimetype,max=255" example:"application/pdf"`
	FileSize  int64  `json:"fileSize"            validate:"min=0"                      example:"2457600"`
	SessionID string `json:"sessionId,omitempty" validate:"omitempty,max=64"           example:"0199f2c1-7c1e-7b4a-9d0e-2f7b1c9a0e11"`
}

// Structure is the fabricated layout of the document
type Structure struct {
	Pages      int `json:"pages"      example:"12"`
	Sections   int `json:"sections"   example:"7"`
	Tables     int `json:"tables"     example:"3"`
	Images     int `json:"images"     example:"4"`
	FormFields int `json:"formFields" example:"0"`
}

// ContentFeatures summarizes the fabricated text content
type ContentFeatures struct {
	WordCount     int    `json:"wordCount"     example:"4210"`
	EntityCount   int    `json:"entityCount"   example:"31"`
	Language      string `json:"language"      example:"en"`
	HasTables     bool   `json:"hasTables"     example:"true"`
	HasImages     bool   `json:"hasImages"     example:"true"`
	HasFormFields bool   `json:"hasFormFields" example:"false"`
}

// Relationships counts links between fabricated entities and sections
type Relationships struct {
	EntityLinks     int `json:"entityLinks"     example:"18"`
	CrossReferences int `json:"crossReferences" example:"5"`
}

// Analysis is the mock characterization of one document
type Analysis struct {
	ID              string                      `json:"id"            example:"0199f2c1-8a10-7e55-b3a4-1c2d3e4f5a6b"`
	FileName        string                      `json:"fileName"      example:"q3 financial report.pdf"`
	DocumentType    string                      `json:"documentType"  example:"pdf_document"`
	DocumentLabel   string                      `json:"documentLabel" example:"Pdf Document"`
	Structure       Structure                   `json:"structure"`
	ContentFeatures ContentFeatures             `json:"contentFeatures"`
	Relationships   Relationships               `json:"relationships"`
	Confidence      float64                     `json:"confidence"    example:"0.87"`
	Recommendations []multimodal.Recommendation `json:"recommendations"`
	AnalyzedAt      time.Time                   `json:"analyzedAt"    example:"2025-09-03T13:05:00Z"`

	// Session is the verdict when the recommendations were pushed to a session
	Session *configsync.Outcome `json:"session,omitempty"`
}

// AnalyzeResponse is the body of the analyze endpoint on success and on failure
type AnalyzeResponse struct {
	Success  bool      `json:"success"            example:"true"`
	Analysis *Analysis `json:"analysis,omitempty"`
	Error    string    `json:"error,omitempty"    example:"analysis failed"`
}

// RecentQuery bounds the history listing
type RecentQuery struct {
	Limit int `json:"limit" validate:"min=0,max=100" example:"20"`
}

// RecentRow is one persisted analysis
type RecentRow struct {
	ID              string    `json:"id"              example:"0199f2c1-8a10-7e55-b3a4-1c2d3e4f5a6b"`
	FileName        string    `json:"fileName"        example:"q3 financial report.pdf"`
	FileType        string    `json:"fileType"        example:"application/pdf"`
	FileSize        int64     `json:"fileSize"        example:"2457600"`
	DocumentType    string    `json:"documentType"    example:"pdf_document"`
	Confidence      float64   `json:"confidence"      example:"0.87"`
	Recommendations int       `json:"recommendations" example:"3"`
	CreatedAt       time.Time `json:"createdAt"       example:"2025-09-03T13:05:00Z"`
}
