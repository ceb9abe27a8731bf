// Package raw reads LOG_ style bootstrap settings without logging, so the logger can use it
package raw

import (
	"os"
	"strconv"
	"strings"
)

// Conf is a prefixed env view with silent fallbacks
type Conf struct{ prefix string }

// New is the unprefixed root view
func New() Conf { return Conf{} }

// Prefix nests p under the current prefix
func (c Conf) Prefix(p string) Conf { return Conf{prefix: c.prefix + p} }

func (c Conf) get(k string) string { return strings.TrimSpace(os.Getenv(c.prefix + k)) }

// Get is the value of k or def when blank
func (c Conf) Get(k, def string) string {
	if v := c.get(k); v != "" {
		return v
	}
	return def
}

// GetBool accepts 1, true and yes as true, anything else set is false
func (c Conf) GetBool(k string, def bool) bool {
	switch v := strings.ToLower(c.get(k)); v {
	case "":
		return def
	case "1", "true", "yes":
		return true
	default:
		return false
	}
}

// GetInt is k as a non negative int, def when blank or malformed
func (c Conf) GetInt(k string, def int) int {
	n, err := strconv.ParseUint(c.get(k), 10, 31)
	if err != nil {
		return def
	}
	return int(n)
}
