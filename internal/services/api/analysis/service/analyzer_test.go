package service

import (
	"fmt"
	"reflect"
	"testing"

	"ingestlab/internal/core/multimodal"
	"ingestlab/internal/services/api/analysis/domain"
)

func TestDocumentType(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name, mime, want string
	}{
		{"report.pdf", "", TypePDF},
		{"letter.docx", "", TypeWord},
		{"budget.xlsx", "", TypeSpreadsheet},
		{"data.csv", "", TypeSpreadsheet},
		{"pitch.pptx", "", TypePresentation},
		{"scan.jpeg", "", TypeImage},
		{"readme.md", "", TypeText},
		{"index.html", "", TypeWebPage},
		{"upload", "application/pdf", TypePDF},
		{"upload", "image/heic", TypeImage},
		{"upload", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", TypeSpreadsheet},
		{"upload", "application/vnd.ms-powerpoint", TypePresentation},
		{"upload", "application/msword", TypeWord},
		{"upload", "text/plain", TypeText},
		{"upload.bin", "application/octet-stream", TypeUnknown},
		{"report.pdf", "image/png", TypePDF},
	}
	for _, tc := range cases {
		if got := DocumentType(tc.name, tc.mime); got != tc.want {
			t.Fatalf("DocumentType(%q, %q) = %q, want %q", tc.name, tc.mime, got, tc.want)
		}
	}
}

func TestFabricate_Deterministic(t *testing.T) {
	t.Parallel()

	a := Fabricate("q3 report.pdf", "application/pdf", 2_457_600)
	b := Fabricate("q3 report.pdf", "application/pdf", 2_457_600)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("same input produced different output:\n%+v\n%+v", a, b)
	}

	differs := false
	for size := int64(1); size <= 10 && !differs; size++ {
		differs = !reflect.DeepEqual(a, Fabricate("q3 report.pdf", "application/pdf", 2_457_600+size))
	}
	if !differs {
		t.Fatal("size did not influence the result")
	}
}

func TestFabricate_Invariants(t *testing.T) {
	t.Parallel()

	names := []string{"a.pdf", "b.docx", "c.xlsx", "d.pptx", "e.png", "f.txt", "g.html", "h.bin", "application form.pdf"}
	for _, n := range names {
		for _, size := range []int64{0, 1, 40_000, 900_000, 25_000_000, 1 << 40} {
			a := Fabricate(n, "", size)
			t.Run(fmt.Sprintf("%s/%d", n, size), func(t *testing.T) {
				if a.Confidence < 0.75 || a.Confidence > 0.95 {
					t.Fatalf("confidence %v out of range", a.Confidence)
				}
				st, cf := a.Structure, a.ContentFeatures
				if st.Pages < 1 || st.Pages > 500 || st.Sections < 1 {
					t.Fatalf("structure = %+v", st)
				}
				if cf.HasTables != (st.Tables > 0) || cf.HasImages != (st.Images > 0) || cf.HasFormFields != (st.FormFields > 0) {
					t.Fatalf("features disagree with structure: %+v %+v", cf, st)
				}
				if !reflect.DeepEqual(a.Recommendations, Recommend(cf)) {
					t.Fatalf("recommendations do not follow the rules: %+v", a.Recommendations)
				}
				if a.DocumentLabel == "" {
					t.Fatal("missing label")
				}
			})
		}
	}
}

func TestFabricate_ImageAndForms(t *testing.T) {
	t.Parallel()

	img := Fabricate("photo.png", "", 5_000_000)
	if img.Structure.Pages != 1 || img.Structure.Images != 1 || img.DocumentLabel != "Image" {
		t.Fatalf("image = %+v", img)
	}
	form := Fabricate("tax form.pdf", "", 100_000)
	if form.Structure.FormFields < 5 {
		t.Fatalf("form fields = %d", form.Structure.FormFields)
	}
}

func kinds(recs []multimodal.Recommendation) []multimodal.ProcessingType {
	out := []multimodal.ProcessingType{}
	for _, r := range recs {
		out = append(out, r.ProcessingType)
	}
	return out
}

func TestRecommend_Thresholds(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   domain.ContentFeatures
		want []multimodal.ProcessingType
	}{
		{name: "nothing", in: domain.ContentFeatures{}, want: []multimodal.ProcessingType{}},
		{name: "1000 words is not long", in: domain.ContentFeatures{WordCount: 1000}, want: []multimodal.ProcessingType{}},
		{name: "1001 words", in: domain.ContentFeatures{WordCount: 1001}, want: []multimodal.ProcessingType{multimodal.SemanticSearch}},
		{name: "5 entities", in: domain.ContentFeatures{EntityCount: 5}, want: []multimodal.ProcessingType{}},
		{name: "6 entities", in: domain.ContentFeatures{EntityCount: 6}, want: []multimodal.ProcessingType{multimodal.RelationshipGraph}},
		{name: "tables", in: domain.ContentFeatures{HasTables: true}, want: []multimodal.ProcessingType{multimodal.StructuredExtraction}},
		{name: "forms and tables once", in: domain.ContentFeatures{HasTables: true, HasFormFields: true}, want: []multimodal.ProcessingType{multimodal.StructuredExtraction}},
		{name: "images", in: domain.ContentFeatures{HasImages: true}, want: []multimodal.ProcessingType{multimodal.ImageUnderstanding}},
		{
			name: "everything",
			in:   domain.ContentFeatures{WordCount: 5000, EntityCount: 40, HasTables: true, HasImages: true},
			want: []multimodal.ProcessingType{multimodal.SemanticSearch, multimodal.RelationshipGraph, multimodal.StructuredExtraction, multimodal.ImageUnderstanding},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Recommend(tc.in)
			if got == nil {
				t.Fatal("recommendations must never be nil")
			}
			if !reflect.DeepEqual(kinds(got), tc.want) {
				t.Fatalf("got %v want %v", kinds(got), tc.want)
			}
		})
	}
}
