package schema

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSchema(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "events.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadSortsComponents(t *testing.T) {
	path := writeSchema(t, `{
		"Vehicle": [ { "name": "OnVehicleSpawn", "args": [ { "name": "vehicleid", "type": "int" } ] } ],
		"Core": [
			{ "name": "OnPlayerConnect", "args": [
				{ "name": "playerid", "type": "int" },
				{ "name": "ip", "type": "CAPIStringView" }
			] }
		]
	}`)

	components, err := Load(path)
	require.NoError(t, err)
	require.Len(t, components, 2)

	assert.Equal(t, "Core", components[0].Name)
	assert.Equal(t, "Vehicle", components[1].Name)

	connect := components[0].Events[0]
	assert.Equal(t, "OnPlayerConnect", connect.Name)
	require.Len(t, connect.Args, 2)
	assert.Equal(t, Argument{Name: "playerid", Type: "int"}, connect.Args[0])
	assert.Equal(t, Argument{Name: "ip", Type: "CAPIStringView"}, connect.Args[1])
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestLoadBadJSON(t *testing.T) {
	path := writeSchema(t, `{ "Core": `)
	_, err := Load(path)
	assert.Error(t, err)
}
