// Package config reads namespaced settings from the environment
// Must getters panic through the logger, May getters warn and fall back
package config

import (
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"ingestlab/internal/platform/logger"
)

// Conf is a view over env vars sharing a prefix such as CORE_API_
type Conf struct{ prefix string }

// New is the unprefixed root view
func New() Conf { return Conf{} }

// Prefix nests p under the current prefix
func (c Conf) Prefix(p string) Conf { return Conf{prefix: c.prefix + p} }

// Key is the full env var name for k
func (c Conf) Key(k string) string { return c.prefix + k }

func (c Conf) lookup(k string) string { return strings.TrimSpace(os.Getenv(c.Key(k))) }

// may parses the value of k, blank gives def and a parse failure logs and gives def
func may[T any](c Conf, k string, def T, parse func(string) (T, error)) T {
	s := c.lookup(k)
	if s == "" {
		return def
	}
	v, err := parse(s)
	if err != nil {
		logger.Get().Warn().Str("key", c.Key(k)).Str("value", s).Interface("default", def).Msg("unparsable env, using default")
		return def
	}
	return v
}

// MustString panics when k is unset or blank
func (c Conf) MustString(k string) string {
	v := c.lookup(k)
	if v == "" {
		logger.Get().Panic().Str("key", c.Key(k)).Msg("missing required env")
	}
	return v
}

// MayString is the trimmed value of k or def
func (c Conf) MayString(k, def string) string {
	return may(c, k, def, func(s string) (string, error) { return s, nil })
}

// MayInt parses k as a base 10 int
func (c Conf) MayInt(k string, def int) int { return may(c, k, def, strconv.Atoi) }

// MayBool parses k with strconv.ParseBool
func (c Conf) MayBool(k string, def bool) bool { return may(c, k, def, strconv.ParseBool) }

// MayDuration parses k as a Go duration like 250ms or 2s
func (c Conf) MayDuration(k string, def time.Duration) time.Duration {
	return may(c, k, def, time.ParseDuration)
}

// MayCSV splits k on commas dropping blanks, def when nothing remains
func (c Conf) MayCSV(k string, def []string) []string {
	var out []string
	for _, p := range strings.Split(c.lookup(k), ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}

// MayEnum lower cases k and panics unless it is one of allowed
func (c Conf) MayEnum(k, def string, allowed ...string) string {
	v := strings.ToLower(c.MayString(k, def))
	if !slices.Contains(allowed, v) {
		logger.Get().Panic().Str("key", c.Key(k)).Str("value", v).Strs("allowed", allowed).Msg("env not in allowed set")
	}
	return v
}
