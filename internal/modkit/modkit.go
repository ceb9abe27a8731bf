// Package modkit provides module wiring and core deps
package modkit

import (
	"net/http"

	"ingestlab/internal/modkit/repokit"
	"ingestlab/internal/platform/config"
	"ingestlab/internal/platform/logger"
	phttp "ingestlab/internal/platform/net/http"
	"ingestlab/internal/platform/store"
	str "ingestlab/internal/platform/strings"
)

// Deps holds core dependencies passed to modules
// PG and CH are nil when the backend is disabled
type Deps struct {
	Log logger.Logger
	Cfg config.Conf
	PG  repokit.TxRunner
	CH  store.Clickhouse
}

// Option tunes a module Base
type Option func(*Base)

// WithName overrides the module name used in logs and the registry
func WithName(name string) Option { return func(b *Base) { b.name = name } }

// WithPrefix overrides the mount path
func WithPrefix(prefix string) Option { return func(b *Base) { b.prefix = prefix } }

// WithMiddlewares appends module scoped middleware, applied in order
func WithMiddlewares(mw ...func(http.Handler) http.Handler) Option {
	return func(b *Base) { b.mws = append(b.mws, mw...) }
}

// WithPorts injects ports owned by another module
func WithPorts(p any) Option { return func(b *Base) { b.ports = p } }

// Base is embedded by modules for the name, mount prefix, middleware and injected ports
type Base struct {
	name   string
	prefix string
	mws    []func(http.Handler) http.Handler
	ports  any
}

// NewBase applies opts over the module defaults
func NewBase(name, prefix string, opts ...Option) Base {
	b := Base{name: name, prefix: prefix}
	for _, o := range opts {
		o(&b)
	}
	return b
}

// Name returns the module name
func (b Base) Name() string { return str.MustString(b.name, "module") }

// Prefix returns the normalized mount path
func (b Base) Prefix() string { return str.MustPrefix(b.prefix) }

// Mount opens the module subtree on r, applies the module middleware and hands it to register
func (b Base) Mount(r phttp.Router, register func(phttp.Router)) {
	r.Route(b.Prefix(), func(sub phttp.Router) {
		for _, mw := range b.mws {
			sub.Use(mw)
		}
		register(sub)
	})
}

// Injected returns the ports passed with WithPorts, the zero T when absent or of another type
func Injected[T any](b Base) T {
	p, _ := b.ports.(T)
	return p
}
