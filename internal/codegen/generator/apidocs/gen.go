// Package docsgen emits the documentation artifact: one JSON document mapping
// each group to its functions with flat names and documentation type
// spellings. Nothing about dispatch tables or library loading appears here.
package docsgen

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/openmultiplayer/open.mp-capi/internal/codegen/meta"
	"github.com/openmultiplayer/open.mp-capi/internal/codegen/scanner"
	"github.com/openmultiplayer/open.mp-capi/internal/codegen/typemap"
)

type docFunction struct {
	Name   string          `json:"name"`
	Ret    string          `json:"ret"`
	Params []scanner.Param `json:"params"`
}

// Generate writes apidocs.json. The top-level object is assembled by hand
// because encoding/json sorts map keys, and group order must stay discovery
// order.
func Generate(logger *slog.Logger, outPath string, md *meta.Metadata) error {
	var buf bytes.Buffer
	buf.WriteString("{\n")
	for i, group := range md.Groups {
		funcs := make([]docFunction, 0, len(group.Funcs))
		for _, rec := range group.Funcs {
			params := make([]scanner.Param, 0, len(rec.Params))
			for _, p := range rec.Params {
				params = append(params, scanner.Param{Name: p.Name, Type: typemap.Docs(p.Type)})
			}
			funcs = append(funcs, docFunction{
				Name:   rec.FullName(),
				Ret:    typemap.Docs(rec.ReturnType),
				Params: params,
			})
		}

		key, err := json.Marshal(group.Name)
		if err != nil {
			return fmt.Errorf("marshal group name: %w", err)
		}
		body, err := json.MarshalIndent(funcs, "  ", "  ")
		if err != nil {
			return fmt.Errorf("marshal group %s: %w", group.Name, err)
		}
		fmt.Fprintf(&buf, "  %s: %s", key, body)
		if i < len(md.Groups)-1 {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
	}
	buf.WriteString("}\n")

	if err := os.WriteFile(outPath, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("write apidocs: %w", err)
	}
	logger.Info("Generated API docs", "file", outPath)
	return nil
}
