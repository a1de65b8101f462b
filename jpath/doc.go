// Package jpath holds JSONPath-style locations into a materialized value.
//
// A Path is a list of segments, each a mapping key or a sequence index.
// Paths print as JSONPath ("$.a[0]['b.c']") or as JSON pointers
// ("#/a/0/b.c") and marshal to JSON as arrays (["a",0,"b.c"]).
package jpath
