package hgen

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openmultiplayer/open.mp-capi/internal/codegen/meta"
	"github.com/openmultiplayer/open.mp-capi/internal/codegen/scanner"
	"github.com/openmultiplayer/open.mp-capi/internal/codegen/schema"
)

func testMetadata() *meta.Metadata {
	return &meta.Metadata{
		Groups: []scanner.APIGroup{
			{
				Name: "Vehicle",
				Funcs: []scanner.APIRecord{
					{Group: "Vehicle", Name: "Create", ReturnType: "objectPtr", Params: []scanner.Param{
						{Name: "modelid", Type: "int"},
					}},
				},
			},
			{
				Name: "Actor",
				Funcs: []scanner.APIRecord{
					{Group: "Actor", Name: "Create", ReturnType: "objectPtr", Params: []scanner.Param{
						{Name: "modelid", Type: "int"},
						{Name: "x", Type: "float"},
						{Name: "y", Type: "float"},
						{Name: "z", Type: "float"},
						{Name: "rotation", Type: "float"},
						{Name: "id", Type: "int*"},
					}},
					{Group: "Actor", Name: "GetName", ReturnType: "bool", Params: []scanner.Param{
						{Name: "actor", Type: "objectPtr"},
						{Name: "name", Type: "OutputStringViewPtr"},
					}},
				},
			},
			{
				Name: "Core",
				Funcs: []scanner.APIRecord{
					{Group: "Core", Name: "TickCount", ReturnType: "int"},
				},
			},
		},
		Events: []schema.Component{
			{
				Name: "Core",
				Events: []schema.Event{
					{Name: "OnPlayerConnect", Args: []schema.Argument{
						{Name: "playerid", Type: "int"},
						{Name: "ip", Type: "CAPIStringView"},
					}},
				},
			},
		},
	}
}

func generate(t *testing.T) string {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	out := filepath.Join(t.TempDir(), "ompcapi.h")
	require.NoError(t, Generate(logger, out, testMetadata()))
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	return string(data)
}

func TestGenerateDeclarations(t *testing.T) {
	header := generate(t)

	for _, alias := range meta.EntityAliases {
		assert.Contains(t, header, "typedef void* "+alias+";")
	}

	assert.Contains(t, header,
		"typedef void* (*Actor_Create_t)(int modelid, float x, float y, float z, float rotation, int* id);")
	assert.Contains(t, header,
		"typedef bool (*Actor_GetName_t)(void* actor, struct CAPIStringView* name);")
	assert.Contains(t, header, "typedef int (*Core_TickCount_t)(void);")

	assert.Contains(t, header, "struct OnPlayerConnect_Args")
	assert.Contains(t, header, "\tstruct CAPIStringView ip;")
	assert.Contains(t, header,
		"typedef bool (*OnPlayerConnect_Callback)(struct OnPlayerConnect_Args* args);")

	assert.Contains(t, header, "struct ActorAPI")
	assert.Contains(t, header, "\tActor_Create_t Create;")
	assert.Contains(t, header, "struct OMPAPI_t")
	assert.Contains(t, header, "\tstruct VehicleAPI Vehicle;")
}

func TestGenerateSectionOrder(t *testing.T) {
	header := generate(t)

	sections := []string{
		"#define LIBRARY_OPEN",
		"enum EventPriorityType",
		"struct CAPIStringView",
		"typedef void* Player;",
		"typedef void* (*Vehicle_Create_t)",
		"struct OnPlayerConnect_Args",
		"struct VehicleAPI",
		"struct OMPAPI_t",
		"static inline bool omp_initialize_capi",
	}
	last := -1
	for _, section := range sections {
		idx := strings.Index(header, section)
		require.NotEqual(t, -1, idx, "section %q missing", section)
		assert.Greater(t, idx, last, "section %q out of order", section)
		last = idx
	}

	// Group order is discovery order, in every section.
	assert.Less(t,
		strings.Index(header, "typedef void* (*Vehicle_Create_t)"),
		strings.Index(header, "typedef void* (*Actor_Create_t)"))
	assert.Less(t,
		strings.Index(header, "struct VehicleAPI Vehicle;"),
		strings.Index(header, "struct ActorAPI Actor;"))
}

func TestGenerateInitializerContract(t *testing.T) {
	header := generate(t)

	sentinel := strings.Index(header, `LIBRARY_GET_ADDR(capi_lib, "Core_TickCount")`)
	firstAssign := strings.Index(header, "ompapi->Vehicle.Create = (Vehicle_Create_t)LIBRARY_GET_ADDR(capi_lib, \"Vehicle_Create\");")
	require.NotEqual(t, -1, sentinel)
	require.NotEqual(t, -1, firstAssign)
	assert.Less(t, sentinel, firstAssign, "sentinel must be resolved before any dispatch assignment")

	assert.Contains(t, header, `ompapi->Actor.GetName = (Actor_GetName_t)LIBRARY_GET_ADDR(capi_lib, "Actor_GetName");`)
	assert.Contains(t, header, `LIBRARY_OPEN("./components/$CAPI.dll")`)
	assert.Contains(t, header, `LIBRARY_OPEN("./components/$CAPI.so")`)
}

func TestGenerateIsDeterministic(t *testing.T) {
	assert.Equal(t, generate(t), generate(t))
}
