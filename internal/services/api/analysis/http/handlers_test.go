package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	perr "ingestlab/internal/platform/errors"
	phttp "ingestlab/internal/platform/net/http"
	"ingestlab/internal/services/api/analysis/domain"

	"github.com/go-chi/chi/v5"
)

type fakeSvc struct {
	in       domain.AnalyzeInput
	err      error
	panicMsg string
	limit    int
}

func (f *fakeSvc) Analyze(_ context.Context, in domain.AnalyzeInput) (domain.Analysis, error) {
	if f.panicMsg != "" {
		panic(f.panicMsg)
	}
	f.in = in
	if f.err != nil {
		return domain.Analysis{}, f.err
	}
	return domain.Analysis{ID: "a1", FileName: in.FileName, DocumentType: "pdf_document", Confidence: 0.8}, nil
}

func (f *fakeSvc) Recent(_ context.Context, q domain.RecentQuery) ([]domain.RecentRow, error) {
	f.limit = q.Limit
	return []domain.RecentRow{{ID: "a1"}}, nil
}

func newMux(svc domain.ServicePort) *chi.Mux {
	mux := chi.NewRouter()
	phttp.AdaptChi(mux).Route("/analysis", func(r phttp.Router) { Register(r, svc) })
	return mux
}

func analyze(t *testing.T, svc domain.ServicePort, body string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/analysis/analyze", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	newMux(svc).ServeHTTP(rec, req)

	var out map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
	return rec.Code, out
}

func TestAnalyze_Success(t *testing.T) {
	t.Parallel()

	svc := &fakeSvc{}
	code, body := analyze(t, svc, `{"fileName":"report.pdf","fileType":"application/pdf","fileSize":1024}`)
	if code != http.StatusOK {
		t.Fatalf("status = %d body=%v", code, body)
	}
	if body["success"] != true {
		t.Fatalf("success = %v", body["success"])
	}
	a := body["analysis"].(map[string]any)
	if a["documentType"] != "pdf_document" || a["id"] != "a1" {
		t.Fatalf("analysis = %v", a)
	}
	if _, wrapped := body["data"]; wrapped {
		t.Fatal("analyze must not use the envelope")
	}
	if svc.in.FileSize != 1024 || svc.in.FileType != "application/pdf" {
		t.Fatalf("service input = %+v", svc.in)
	}
}

func TestAnalyze_Failures(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		svc    *fakeSvc
		body   string
		status int
		errMsg string
	}{
		{name: "missing name", svc: &fakeSvc{}, body: `{"fileSize":1}`, status: http.StatusBadRequest},
		{name: "negative size", svc: &fakeSvc{}, body: `{"fileName":"a","fileSize":-5}`, status: http.StatusBadRequest},
		{name: "not json", svc: &fakeSvc{}, body: `{"fileName":`, status: http.StatusBadRequest},
		{name: "unknown session", svc: &fakeSvc{err: perr.NotFoundf("session %q not found", "s")}, body: `{"fileName":"a.pdf","sessionId":"s"}`, status: http.StatusNotFound, errMsg: `session "s" not found`},
		{name: "internal error hidden", svc: &fakeSvc{err: errors.New("disk on fire")}, body: `{"fileName":"a.pdf"}`, status: http.StatusInternalServerError, errMsg: "analysis failed"},
		{name: "panic", svc: &fakeSvc{panicMsg: "boom"}, body: `{"fileName":"a.pdf"}`, status: http.StatusInternalServerError, errMsg: "analysis failed"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, body := analyze(t, tc.svc, tc.body)
			if code != tc.status {
				t.Fatalf("status = %d want %d body=%v", code, tc.status, body)
			}
			if body["success"] != false {
				t.Fatalf("success = %v", body["success"])
			}
			msg, _ := body["error"].(string)
			if msg == "" || (tc.errMsg != "" && msg != tc.errMsg) {
				t.Fatalf("error = %q want %q", msg, tc.errMsg)
			}
		})
	}
}

func TestRecent(t *testing.T) {
	t.Parallel()

	svc := &fakeSvc{}
	mux := newMux(svc)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/analysis/recent?limit=7", nil))
	if rec.Code != http.StatusOK || svc.limit != 7 {
		t.Fatalf("status = %d limit = %d", rec.Code, svc.limit)
	}
	var env struct {
		Data []domain.RecentRow `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil || len(env.Data) != 1 {
		t.Fatalf("body = %s", rec.Body.String())
	}

	for _, bad := range []string{"0", "101", "x"} {
		rec = httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/analysis/recent?limit="+bad, nil))
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("limit=%s status = %d", bad, rec.Code)
		}
	}
}
