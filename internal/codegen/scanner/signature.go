package scanner

import (
	"fmt"
	"log/slog"
	"strings"
)

// Param is one named parameter of an annotated function. Type holds the raw
// annotation token; normalization happens per artifact in typemap.
type Param struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// APIRecord describes one annotated function. Identity within a generation
// run is (Group, Name).
type APIRecord struct {
	Group      string  `json:"group"`
	Name       string  `json:"name"`
	ReturnType string  `json:"returnType"`
	Params     []Param `json:"params"`
}

// FullName returns the exported symbol name, e.g. "Actor_Create".
func (r APIRecord) FullName() string {
	return r.Group + "_" + r.Name
}

// APIGroup is an ordered slice of records sharing one group name.
type APIGroup struct {
	Name  string
	Funcs []APIRecord
}

// ParseSignature parses one annotation line of the form
//
//	OMP_CAPI(Group_Name, ReturnType(Type0 name0, Type1 name1, ...))
//
// The first underscore-delimited token of the full name is the group; the
// rest (underscores preserved) is the name. Parameter tokens missing either
// a type or a name are dropped rather than failing the whole record.
func ParseSignature(line string) (APIRecord, error) {
	body := strings.TrimPrefix(strings.TrimSpace(line), AnnotationPrefix)

	fullName, rest, ok := strings.Cut(body, ", ")
	if !ok {
		return APIRecord{}, fmt.Errorf("no name/signature separator in %q", line)
	}

	group, name, ok := strings.Cut(fullName, "_")
	if !ok {
		return APIRecord{}, fmt.Errorf("function name %q has no group segment", fullName)
	}

	returnType, _, ok := strings.Cut(rest, "(")
	if !ok {
		return APIRecord{}, fmt.Errorf("no parameter list in %q", line)
	}

	paramList, err := balancedGroup(rest[len(returnType):])
	if err != nil {
		return APIRecord{}, fmt.Errorf("parameter list of %q: %w", fullName, err)
	}

	rec := APIRecord{
		Group:      group,
		Name:       name,
		ReturnType: strings.TrimSpace(returnType),
	}
	if strings.TrimSpace(paramList) != "" {
		for _, tok := range strings.Split(paramList, ", ") {
			typ, pname, ok := strings.Cut(strings.TrimSpace(tok), " ")
			if !ok {
				// Malformed parameter: keep the record, drop the token.
				continue
			}
			rec.Params = append(rec.Params, Param{Name: pname, Type: typ})
		}
	}
	return rec, nil
}

// balancedGroup extracts the contents of the first balanced parenthesized
// group in s, counting depth so that parentheses nested inside the group do
// not truncate it.
func balancedGroup(s string) (string, error) {
	start := strings.IndexByte(s, '(')
	if start < 0 {
		return "", fmt.Errorf("no opening parenthesis")
	}
	depth := 0
	for i := start; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return s[start+1 : i], nil
			}
		}
	}
	return "", fmt.Errorf("unbalanced parentheses")
}

// Group buckets records by group name, preserving discovery order of both
// groups and members. A duplicate (group, name) replaces the earlier record
// in place and is logged; with strict set it is an error instead.
func Group(logger *slog.Logger, records []APIRecord, strict bool) ([]APIGroup, error) {
	var groups []APIGroup
	// group name -> groups index, and group name -> func name -> Funcs index
	index := make(map[string]int)
	seen := make(map[string]map[string]int)

	for _, rec := range records {
		gi, ok := index[rec.Group]
		if !ok {
			gi = len(groups)
			index[rec.Group] = gi
			groups = append(groups, APIGroup{Name: rec.Group})
			seen[rec.Group] = make(map[string]int)
		}
		if fi, dup := seen[rec.Group][rec.Name]; dup {
			if strict {
				return nil, fmt.Errorf("duplicate function %s", rec.FullName())
			}
			logger.Warn("Duplicate function, keeping later definition", "function", rec.FullName())
			groups[gi].Funcs[fi] = rec
			continue
		}
		seen[rec.Group][rec.Name] = len(groups[gi].Funcs)
		groups[gi].Funcs = append(groups[gi].Funcs, rec)
	}
	return groups, nil
}
