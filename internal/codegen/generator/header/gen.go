package hgen

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"text/template"

	"github.com/openmultiplayer/open.mp-capi/internal/codegen/meta"
)

const headerTmpl = `#ifndef OMPCAPI_H
#define OMPCAPI_H

/* Auto-generated open.mp C API interface. Do not edit. */

#include <stdbool.h>
#include <stdint.h>

#if defined(_WIN32) || defined(_WIN64)
	#include <Windows.h>
	#define LIBRARY_OPEN(path) LoadLibraryA(path)
	#define LIBRARY_GET_ADDR(lib, name) GetProcAddress((HMODULE)(lib), name)
#else
	#include <dlfcn.h>
	#define LIBRARY_OPEN(path) dlopen(path, RTLD_LAZY | RTLD_LOCAL)
	#define LIBRARY_GET_ADDR(lib, name) dlsym(lib, name)
#endif

/* Event dispatch priority, mirrored from the engine. */
enum EventPriorityType
{
	EventPriorityType_Highest,
	EventPriorityType_FairlyHigh,
	EventPriorityType_Default,
	EventPriorityType_FairlyLow,
	EventPriorityType_Lowest
};

/* Generic event argument pack. */
struct EventArgs_Common
{
	int size;
	void** list;
};

typedef bool (*EventCallback_Common)(struct EventArgs_Common* args);

struct ComponentVersion
{
	uint8_t major;
	uint8_t minor;
	uint8_t patch;
	uint16_t prerel;
};

/* Non-owning read-only view; the engine owns the bytes. */
struct CAPIStringView
{
	unsigned int len;
	char* data;
};

/* Caller-owned writable buffer; the callee sets written. */
struct CAPIStringBuffer
{
	char* data;
	unsigned int capacity;
	unsigned int written;
};

/* ========================================================================
 * Entity handles
 * ======================================================================== */

{{range .Aliases -}}
typedef void* {{.}};
{{end}}
/* ========================================================================
 * Function pointer types
 * ======================================================================== */
{{range .Groups}}
/* {{.Name}} */
{{range .Funcs -}}
typedef {{ctype .ReturnType}} (*{{.Group}}_{{.Name}}_t)({{paramList .Params}});
{{end}}{{end}}
/* ========================================================================
 * Event callbacks
 * ======================================================================== */
{{range .Events}}
/* {{.Name}} events */
{{range .Events}}struct {{.Name}}_Args
{
{{- range .Args}}
	{{etype .Type}} {{.Name}};
{{- end}}
};
typedef bool (*{{.Name}}_Callback)(struct {{.Name}}_Args* args);

{{end}}{{end -}}

/* ========================================================================
 * Dispatch tables
 * ======================================================================== */
{{range .Groups}}
struct {{.Name}}API
{
{{- range .Funcs}}
	{{.Group}}_{{.Name}}_t {{.Name}};
{{- end}}
};
{{end}}
struct OMPAPI_t
{
{{- range .Groups}}
	struct {{.Name}}API {{.Name}};
{{- end}}
};

static inline bool omp_initialize_capi(struct OMPAPI_t* ompapi)
{
#if defined(_WIN32) || defined(_WIN64)
	void* capi_lib = (void*)LIBRARY_OPEN("./components/$CAPI.dll");
#else
	void* capi_lib = (void*)LIBRARY_OPEN("./components/$CAPI.so");
#endif
	if (capi_lib == NULL)
	{
		return false;
	}

	/* The tick counter is always exported; its absence means a wrong or
	 * incompatible library. Optional symbols below stay NULL when absent and
	 * must be null-checked by the caller. */
	if (LIBRARY_GET_ADDR(capi_lib, "Core_TickCount") == NULL)
	{
		return false;
	}
{{range .Groups}}
	/* {{.Name}} */
{{- range .Funcs}}
	ompapi->{{.Group}}.{{.Name}} = ({{.Group}}_{{.Name}}_t)LIBRARY_GET_ADDR(capi_lib, "{{.Group}}_{{.Name}}");
{{- end}}
{{end}}
	return true;
}

#endif /* OMPCAPI_H */
`

// Generate renders the full interface header from the in-memory model in one
// template pass and writes it with a single WriteFile, so section order can
// never depend on emission-time state.
func Generate(logger *slog.Logger, outPath string, md *meta.Metadata) error {
	t := template.Must(template.New("ompcapi.h").Funcs(tplFuncs()).Parse(headerTmpl))

	data := struct {
		*meta.Metadata
		Aliases []string
	}{
		Metadata: md,
		Aliases:  meta.EntityAliases,
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return fmt.Errorf("exec header tmpl: %w", err)
	}
	if err := os.WriteFile(outPath, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	logger.Info("Generated C header", "file", outPath)
	return nil
}
