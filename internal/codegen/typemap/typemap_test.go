package typemap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeaderSpellings(t *testing.T) {
	assert.Equal(t, "void*", Header("objectPtr"))
	assert.Equal(t, "void*", Header("voidPtr"))
	assert.Equal(t, "const char*", Header("StringCharPtr"))
	assert.Equal(t, "struct CAPIStringView*", Header("OutputStringViewPtr"))
	assert.Equal(t, "struct CAPIStringBuffer*", Header("OutputStringBufPtr"))
	assert.Equal(t, "struct ComponentVersion*", Header("ComponentVersionPtr"))

	// Already portable tokens pass through.
	assert.Equal(t, "int", Header("int"))
	assert.Equal(t, "uint32_t", Header("uint32_t"))
	assert.Equal(t, "float*", Header("float*"))
	assert.Equal(t, "Player", Header("Player"))
}

func TestDocsSpellings(t *testing.T) {
	assert.Equal(t, "uintptr", Docs("objectPtr"))
	assert.Equal(t, "string", Docs("StringCharPtr"))
	assert.Equal(t, "string_view", Docs("OutputStringViewPtr"))
	assert.Equal(t, "int", Docs("int"))
}

func TestEventSpellings(t *testing.T) {
	assert.Equal(t, "struct CAPIStringView", Event("CAPIStringView"))
	assert.Equal(t, "void*", Event("objectPtr"))
	assert.Equal(t, "int", Event("int"))
}

func TestNormalizationIsIdempotent(t *testing.T) {
	tokens := []string{"objectPtr", "voidPtr", "StringCharPtr", "OutputStringViewPtr",
		"OutputStringBufPtr", "ComponentVersionPtr", "CAPIStringView", "int", "float", "bool"}

	for _, tok := range tokens {
		assert.Equal(t, Header(tok), Header(Header(tok)), "Header not idempotent for %s", tok)
		assert.Equal(t, Docs(tok), Docs(Docs(tok)), "Docs not idempotent for %s", tok)
		assert.Equal(t, Event(tok), Event(Event(tok)), "Event not idempotent for %s", tok)
	}
}
