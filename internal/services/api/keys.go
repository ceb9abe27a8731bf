package api

import (
	"strings"

	perr "ingestlab/internal/platform/errors"
)

// ParseAPIKeys turns client:key entries into the table Options.APIKeys expects
func ParseAPIKeys(entries []string) (map[string]string, error) {
	out := make(map[string]string, len(entries))
	for _, e := range entries {
		e = strings.TrimSpace(e)
		if e == "" {
			continue
		}
		client, key, ok := strings.Cut(e, ":")
		client, key = strings.TrimSpace(client), strings.TrimSpace(key)
		if !ok || client == "" || key == "" {
			return nil, perr.InvalidArgf("api key entry %q must look like client:key", e)
		}
		if _, dup := out[client]; dup {
			return nil, perr.InvalidArgf("api key client %q listed twice", client)
		}
		out[client] = key
	}
	return out, nil
}
