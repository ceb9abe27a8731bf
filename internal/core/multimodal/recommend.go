package multimodal

// ProcessingType names a processing recommendation kind
type ProcessingType string

// Processing types produced by the document analyzer
const (
	SemanticSearch       ProcessingType = "semantic_search"
	RelationshipGraph    ProcessingType = "relationship_graph"
	StructuredExtraction ProcessingType = "structured_extraction"
	ImageUnderstanding   ProcessingType = "image_understanding"
)

// Recommendation is a single processing suggestion for a document
type Recommendation struct {
	ProcessingType ProcessingType `json:"processingType" validate:"required,oneof=semantic_search relationship_graph structured_extraction image_understanding" example:"semantic_search"`
	Priority       string         `json:"priority"       validate:"omitempty,oneof=high medium low" example:"high"`
	Reason         string         `json:"reason"         validate:"omitempty,max=500" example:"long document benefits from semantic retrieval"`
}

// PartialFromRecommendations turns recommendations into an explicit partial
// every flag is set: recommended ones on, the rest off; unknown processing types are ignored
func PartialFromRecommendations(recs []Recommendation) Partial {
	var cfg Config
	for _, r := range recs {
		switch r.ProcessingType {
		case SemanticSearch:
			cfg.Transcription = true
		case RelationshipGraph:
			cfg.VisualAnalysis = true
		case StructuredExtraction:
			cfg.OCR = true
		case ImageUnderstanding:
			cfg.ImageCaption = true
		}
	}
	return Full(cfg)
}
