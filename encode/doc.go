// Package encode writes materialized values as YAML or JSON text.
//
// YAML is produced with github.com/goccy/go-yaml.  Comments attached by
// package comments can be written back next to the values they annotate.
//
//	out, err := encode.Stringify(v, encode.EncodeComments(res.Comments))
package encode
