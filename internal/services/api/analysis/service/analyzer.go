package service

import (
	"hash/fnv"
	"math"
	"math/rand/v2"
	"strings"

	"ingestlab/internal/core/multimodal"
	"ingestlab/internal/core/normalize"
	"ingestlab/internal/services/api/analysis/domain"
)

// Document types produced by the analyzer
const (
	TypePDF          = "pdf_document"
	TypeWord         = "word_document"
	TypeSpreadsheet  = "spreadsheet"
	TypePresentation = "presentation"
	TypeImage        = "image"
	TypeText         = "text"
	TypeWebPage      = "web_page"
	TypeUnknown      = "unknown"
)

// thresholds for recommendations
const (
	semanticWords      = 1000
	relationshipEntity = 5
)

var byExtension = map[string]string{
	"pdf":  TypePDF,
	"doc":  TypeWord,
	"docx": TypeWord,
	"odt":  TypeWord,
	"rtf":  TypeWord,
	"xls":  TypeSpreadsheet,
	"xlsx": TypeSpreadsheet,
	"ods":  TypeSpreadsheet,
	"csv":  TypeSpreadsheet,
	"ppt":  TypePresentation,
	"pptx": TypePresentation,
	"odp":  TypePresentation,
	"key":  TypePresentation,
	"png":  TypeImage,
	"jpg":  TypeImage,
	"jpeg": TypeImage,
	"gif":  TypeImage,
	"bmp":  TypeImage,
	"tif":  TypeImage,
	"tiff": TypeImage,
	"webp": TypeImage,
	"txt":  TypeText,
	"md":   TypeText,
	"log":  TypeText,
	"html": TypeWebPage,
	"htm":  TypeWebPage,
}

// DocumentType classifies a normalized file name, falling back to the MIME type
func DocumentType(name, mime string) string {
	if t, ok := byExtension[normalize.Extension(name)]; ok {
		return t
	}
	m := strings.ToLower(strings.TrimSpace(mime))
	switch {
	case m == "application/pdf":
		return TypePDF
	case strings.HasPrefix(m, "image/"):
		return TypeImage
	case m == "text/html":
		return TypeWebPage
	case strings.HasPrefix(m, "text/csv"), strings.Contains(m, "spreadsheet"), strings.Contains(m, "excel"):
		return TypeSpreadsheet
	case strings.Contains(m, "presentation"), strings.Contains(m, "powerpoint"):
		return TypePresentation
	case strings.Contains(m, "wordprocessing"), m == "application/msword":
		return TypeWord
	case strings.HasPrefix(m, "text/"):
		return TypeText
	default:
		return TypeUnknown
	}
}

// seed derives the generator state from the normalized name and the size
func seed(name string, size int64) (uint64, uint64) {
	h := fnv.New64a()
	_, _ = h.Write([]byte(name))
	return h.Sum64(), uint64(size) ^ 0x9e3779b97f4a7c15
}

// Fabricate builds a plausible analysis for a file; the same name and size always give the same result
// name must already be normalized
func Fabricate(name, mime string, size int64) domain.Analysis {
	s1, s2 := seed(name, size)
	r := rand.New(rand.NewPCG(s1, s2))
	kind := DocumentType(name, mime)

	st := structure(r, kind, name, size)
	cf := content(r, kind, st)
	rel := domain.Relationships{
		EntityLinks:     cf.EntityCount * r.IntN(3),
		CrossReferences: r.IntN(st.Sections + 1),
	}

	return domain.Analysis{
		FileName:        name,
		DocumentType:    kind,
		DocumentLabel:   normalize.Title(kind),
		Structure:       st,
		ContentFeatures: cf,
		Relationships:   rel,
		Confidence:      math.Round((0.75+r.Float64()*0.20)*100) / 100,
		Recommendations: Recommend(cf),
	}
}

func structure(r *rand.Rand, kind, name string, size int64) domain.Structure {
	pages := 1
	if kind != TypeImage {
		// roughly one page per 50KB with +-20% jitter
		base := max(int(size/50_000), 1)
		pages = min(max(base+r.IntN(base/5*2+1)-base/5, 1), 500)
	}

	st := domain.Structure{Pages: pages, Sections: 1 + r.IntN(pages*2+3)}
	switch kind {
	case TypeSpreadsheet:
		st.Tables = 1 + r.IntN(10)
		st.Images = r.IntN(2)
	case TypePDF:
		st.Tables = r.IntN(6)
		st.Images = r.IntN(pages+1) / 2
		if r.IntN(3) == 0 {
			st.FormFields = r.IntN(20)
		}
	case TypeWord:
		st.Tables = r.IntN(6)
		st.Images = r.IntN(pages+1) / 2
		st.FormFields = r.IntN(5)
	case TypePresentation:
		st.Tables = r.IntN(4)
		st.Images = r.IntN(pages + 1)
	case TypeImage:
		st.Images = 1
	case TypeWebPage:
		st.Tables = r.IntN(3)
		st.Images = r.IntN(8)
	}
	if strings.Contains(name, "form") || strings.Contains(name, "application") {
		st.FormFields = max(st.FormFields, 5+r.IntN(15))
	}
	return st
}

var languages = []string{"en", "en", "en", "en", "de", "fr", "es"}

func content(r *rand.Rand, kind string, st domain.Structure) domain.ContentFeatures {
	var words int
	switch kind {
	case TypeImage:
		words = r.IntN(50)
	case TypeSpreadsheet:
		words = st.Pages * (100 + r.IntN(200))
	default:
		words = st.Pages * (250 + r.IntN(300))
	}
	return domain.ContentFeatures{
		WordCount:     words,
		EntityCount:   words/150 + r.IntN(6),
		Language:      languages[r.IntN(len(languages))],
		HasTables:     st.Tables > 0,
		HasImages:     st.Images > 0,
		HasFormFields: st.FormFields > 0,
	}
}

// Recommend applies the threshold rules to the content features
func Recommend(cf domain.ContentFeatures) []multimodal.Recommendation {
	out := []multimodal.Recommendation{}
	if cf.WordCount > semanticWords {
		out = append(out, multimodal.Recommendation{
			ProcessingType: multimodal.SemanticSearch,
			Priority:       "high",
			Reason:         "long document benefits from semantic retrieval",
		})
	}
	if cf.EntityCount > relationshipEntity {
		out = append(out, multimodal.Recommendation{
			ProcessingType: multimodal.RelationshipGraph,
			Priority:       "medium",
			Reason:         "many named entities can be linked in a graph",
		})
	}
	if cf.HasTables || cf.HasFormFields {
		out = append(out, multimodal.Recommendation{
			ProcessingType: multimodal.StructuredExtraction,
			Priority:       "high",
			Reason:         "tables or form fields hold structured data",
		})
	}
	if cf.HasImages {
		out = append(out, multimodal.Recommendation{
			ProcessingType: multimodal.ImageUnderstanding,
			Priority:       "low",
			Reason:         "embedded images carry content",
		})
	}
	return out
}
