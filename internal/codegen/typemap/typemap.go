// Package typemap holds the canonical annotation-token to portable-spelling
// table shared by every emitted artifact, with per-artifact overrides where
// the artifacts genuinely diverge. Unmapped tokens pass through unchanged:
// fixed-width integers and previously declared aliases are already portable.
package typemap

// canonical maps raw annotation tokens to the portable C spellings used by
// the generated header.
var canonical = map[string]string{
	"objectPtr":           "void*",
	"voidPtr":             "void*",
	"CharPtr":             "char*",
	"StringCharPtr":       "const char*",
	"OutputStringViewPtr": "struct CAPIStringView*",
	"OutputStringBufPtr":  "struct CAPIStringBuffer*",
	"ComponentVersionPtr": "struct ComponentVersion*",
}

// docs is the documentation-oriented table for apidocs.json. It is flatter
// than the header table: language-neutral spellings, applied to the raw token
// directly.
var docs = map[string]string{
	"objectPtr":           "uintptr",
	"voidPtr":             "uintptr",
	"CharPtr":             "string",
	"StringCharPtr":       "string",
	"OutputStringViewPtr": "string_view",
	"OutputStringBufPtr":  "string_buffer",
	"ComponentVersionPtr": "version",
}

// events maps event-schema argument types. Event arguments arrive by value,
// so the string view is spelled as the record itself rather than a pointer.
var events = map[string]string{
	"CAPIStringView": "struct CAPIStringView",
	"objectPtr":      "void*",
	"voidPtr":        "void*",
}

func lookup(table map[string]string, token string) string {
	if mapped, ok := table[token]; ok {
		return mapped
	}
	return token
}

// Header returns the portable C spelling of a signature type token.
func Header(token string) string { return lookup(canonical, token) }

// Docs returns the documentation spelling of a signature type token.
func Docs(token string) string { return lookup(docs, token) }

// Event returns the portable C spelling of an event-argument type token.
func Event(token string) string { return lookup(events, token) }
