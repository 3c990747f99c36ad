package cache

// ArtifactKeyOpts are the inputs of a rendered artifact besides the layout.
type ArtifactKeyOpts struct {
	Format     string  `json:"format"`
	Container  string  `json:"container,omitempty"`
	SVGClass   string  `json:"svg_class,omitempty"`
	Outlines   bool    `json:"outlines,omitempty"`
	FontFamily string  `json:"font_family,omitempty"`
	Background string  `json:"background,omitempty"`
	Scale      float64 `json:"scale,omitempty"`
	PDFEngine  string  `json:"pdf_engine,omitempty"`
}

// Keyer builds cache keys.
type Keyer interface {
	ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer produces "artifact:<sha256>" keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default key scheme.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

func (DefaultKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", layoutHash, opts)
}

// ScopedKeyer prefixes every key of an inner keyer, giving callers that
// share one backend separate namespaces.
//
//	serverKeyer := cache.NewScopedKeyer(nil, "chartframe:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer wraps inner, or the default keyer when inner is nil.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

func (k *ScopedKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(layoutHash, opts)
}
