package cst

import "strings"

const (
	TagPrefix  = "tag:yaml.org,2002:"
	TagInclude = "!include"
)

var coreTags = map[string]bool{
	"str":       true,
	"int":       true,
	"float":     true,
	"bool":      true,
	"null":      true,
	"map":       true,
	"seq":       true,
	"binary":    true,
	"timestamp": true,
	"set":       true,
	"omap":      true,
	"pairs":     true,
	"merge":     true,
}

// ExpandTag resolves the shorthand "!!x" and verbatim "!<x>" forms of an
// authored tag.
func ExpandTag(tag string) string {
	switch {
	case strings.HasPrefix(tag, "!!"):
		return TagPrefix + tag[2:]
	case strings.HasPrefix(tag, "!<") && strings.HasSuffix(tag, ">"):
		return tag[2 : len(tag)-1]
	}
	return tag
}

// CoreTag returns the core schema name ("str", "int", ...) of tag, or ""
// if tag is not a core schema tag.
func CoreTag(tag string) string {
	t := ExpandTag(tag)
	if !strings.HasPrefix(t, TagPrefix) {
		return ""
	}
	name := t[len(TagPrefix):]
	if !coreTags[name] {
		return ""
	}
	return name
}

func KnownTag(tag string) bool {
	return tag == "!" || tag == TagInclude || CoreTag(tag) != ""
}
