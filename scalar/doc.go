// Package scalar resolves YAML scalars to typed values using the YAML 1.2
// core schema, and classifies block scalar headers.
package scalar
