// Package version provides information about the build version of the service.
package version

// BuildInfo holds version information about the service build.
type BuildInfo struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// Info returns the build information. The version, commit, and date variables
// are intended to be set at build time using -ldflags.
func Info() BuildInfo {
	// Set via -ldflags "-X 'ingestlab/internal/core/version.version=v0.1.0'
	// -X 'ingestlab/internal/core/version.commit=abcd' -X 'ingestlab/internal/core/version.date=2025-09-02'"
	return BuildInfo{
		Service: ServiceName,
		Version: version,
		Commit:  commit,
		Date:    date,
	}
}

// ServiceName is the name reported by meta endpoints and client info
const ServiceName = "ingestlab-api"

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)
