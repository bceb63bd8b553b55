package hgen

import (
	"strings"
	"text/template"

	"github.com/openmultiplayer/open.mp-capi/internal/codegen/scanner"
	"github.com/openmultiplayer/open.mp-capi/internal/codegen/typemap"
)

func tplFuncs() template.FuncMap {
	return template.FuncMap{
		"ctype":     typemap.Header,
		"etype":     typemap.Event,
		"paramList": paramList,
	}
}

// paramList renders a normalized, name-annotated C parameter list. An empty
// list is spelled (void) so the typedef stays a full prototype.
func paramList(params []scanner.Param) string {
	if len(params) == 0 {
		return "void"
	}
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = typemap.Header(p.Type) + " " + p.Name
	}
	return strings.Join(parts, ", ")
}
