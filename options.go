package yamlptr

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/signadot/yamlptr/materialize"
)

// Options controls ParseWithPointers.  It can be loaded from a YAML file
// with LoadOptions.
type Options struct {
	// JSON selects the lenient mode.  When false a duplicate key is an
	// error.
	JSON bool `yaml:"json" json:"json"`
	// IgnoreDuplicateKeys suppresses duplicate key diagnostics.
	IgnoreDuplicateKeys  bool `yaml:"ignoreDuplicateKeys" json:"ignoreDuplicateKeys"`
	DuplicateKeysAsHints bool `yaml:"duplicateKeysAsHints" json:"duplicateKeysAsHints"`
	MergeKeys            bool `yaml:"mergeKeys" json:"mergeKeys"`
	BigInt               bool `yaml:"bigInt" json:"bigInt"`
	PreserveKeyOrder     bool `yaml:"preserveKeyOrder" json:"preserveKeyOrder"`
	AttachComments       bool `yaml:"attachComments" json:"attachComments"`
	MaxDepth             int  `yaml:"maxDepth" json:"maxDepth"`
}

func DefaultOptions() Options {
	return Options{
		JSON:                true,
		IgnoreDuplicateKeys: true,
		MaxDepth:            materialize.DefaultMaxDepth,
	}
}

type ParseOption func(*Options)

func JSON(v bool) ParseOption {
	return func(o *Options) { o.JSON = v }
}
func IgnoreDuplicateKeys(v bool) ParseOption {
	return func(o *Options) { o.IgnoreDuplicateKeys = v }
}
func DuplicateKeysAsHints(v bool) ParseOption {
	return func(o *Options) { o.DuplicateKeysAsHints = v }
}
func MergeKeys(v bool) ParseOption {
	return func(o *Options) { o.MergeKeys = v }
}
func BigInt(v bool) ParseOption {
	return func(o *Options) { o.BigInt = v }
}
func PreserveKeyOrder(v bool) ParseOption {
	return func(o *Options) { o.PreserveKeyOrder = v }
}
func AttachComments(v bool) ParseOption {
	return func(o *Options) { o.AttachComments = v }
}
func MaxDepth(n int) ParseOption {
	return func(o *Options) { o.MaxDepth = n }
}

// WithOptions replaces all options by o.
func WithOptions(o Options) ParseOption {
	return func(dst *Options) { *dst = o }
}

// LoadOptions reads options from YAML.  Fields which are absent keep
// their defaults; unknown fields are an error.
func LoadOptions(d []byte) (Options, error) {
	o := DefaultOptions()
	if err := yaml.UnmarshalWithOptions(d, &o, yaml.DisallowUnknownField()); err != nil {
		return Options{}, fmt.Errorf("could not load options: %w", err)
	}
	if o.MaxDepth <= 0 {
		o.MaxDepth = materialize.DefaultMaxDepth
	}
	return o, nil
}

func LoadOptionsFile(path string) (Options, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return Options{}, err
	}
	return LoadOptions(d)
}

func (o *Options) materialize() materialize.Options {
	return materialize.Options{
		JSON:                 o.JSON,
		IgnoreDuplicateKeys:  o.IgnoreDuplicateKeys,
		DuplicateKeysAsHints: o.DuplicateKeysAsHints,
		MergeKeys:            o.MergeKeys,
		BigInt:               o.BigInt,
		PreserveKeyOrder:     o.PreserveKeyOrder,
		MaxDepth:             o.MaxDepth,
	}
}
