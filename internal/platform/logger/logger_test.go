package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, ln := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(ln), &m), ln)
		out = append(out, m)
	}
	return out
}

func TestBuild_JSONFieldsAndLevel(t *testing.T) {
	var buf bytes.Buffer
	l := build(Options{
		Level:        "warning",
		Format:       "json",
		Service:      "ingestlab",
		Writer:       &buf,
		StaticFields: map[string]string{"build": "test"},
	})
	l.Info().Msg("dropped")
	l.Warn().Str("session_id", "s1").Msg("late recommendation")

	got := lines(t, &buf)
	require.Len(t, got, 1)
	assert.Equal(t, "warn", got[0]["level"])
	assert.Equal(t, "ingestlab", got[0]["service"])
	assert.Equal(t, "test", got[0]["build"])
	assert.Equal(t, "late recommendation", got[0]["message"])
	assert.NotContains(t, got[0], "component")
}

func TestBuild_UnknownLevelIsDebug(t *testing.T) {
	for _, lvl := range []string{"", "loud", "  INFO "} {
		l := build(Options{Level: lvl, Format: "json", Writer: &bytes.Buffer{}})
		want := zerolog.DebugLevel
		if strings.TrimSpace(lvl) == "INFO" {
			want = zerolog.InfoLevel
		}
		assert.Equal(t, want, l.GetLevel(), lvl)
	}
}

func TestBuild_ConsoleByDefault(t *testing.T) {
	var buf bytes.Buffer
	l := build(Options{Writer: &buf})
	l.Info().Str("source", "user").Msg("applied")
	assert.Contains(t, buf.String(), "applied")
	assert.Contains(t, buf.String(), "source=")
	assert.False(t, json.Valid(bytes.TrimSpace(buf.Bytes())))
}

func TestWithRequest_LayersIDs(t *testing.T) {
	var buf bytes.Buffer
	base := build(Options{Format: "json", Writer: &buf}).WithContext(context.Background())

	ctx := WithRequest(base, "req-1", "")
	ctx = WithRequest(ctx, "", "sess-9")
	assert.Equal(t, ctx, WithRequest(ctx, "", ""))

	C(ctx).Info().Msg("update applied")
	got := lines(t, &buf)
	require.Len(t, got, 1)
	assert.Equal(t, "req-1", got[0]["request_id"])
	assert.Equal(t, "sess-9", got[0]["session_id"])
}

func TestNamedAndC_Fallbacks(t *testing.T) {
	assert.Same(t, Get(), Named(""))
	assert.NotNil(t, Named("kafka"))
	assert.NotNil(t, C(context.Background()))
}

func TestFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("LOG_FORMAT", "JSON")
	t.Setenv("LOG_COMPONENT", "api")
	t.Setenv("LOG_CALLER", "yes")
	t.Setenv("LOG_SAMPLE_EVERY", "5")

	opt := FromEnv()
	assert.Equal(t, Options{Level: "warn", Format: "json", Service: "ingestlab", Component: "api", WithCaller: true, SampleEvery: 5}, opt)
}
