// Package variables assembles the key→value map handed to the templating
// engine. Variables follow a strict presence model: a name is either present
// with a non-empty value or absent from the map entirely, never present with
// an empty placeholder.
package variables

// Reserved variable names with special meaning to the templating engine.
const (
	// InputTextFile is the resolved input file path.
	InputTextFile = "input_text_file"
	// InputText is the raw input read from stdin.
	InputText = "input_text"
	// DestinationPath is the resolved output file path.
	DestinationPath = "destination_path"
	// SchemaFile is the candidate schema file path.
	SchemaFile = "schema_file"
)

// reservedNames is the closed set of names user variables must not use.
var reservedNames = map[string]bool{
	InputTextFile:   true,
	InputText:       true,
	DestinationPath: true,
	SchemaFile:      true,
}

// IsReserved reports whether name is reserved for the templating engine.
func IsReserved(name string) bool {
	return reservedNames[name]
}

// VariableMap is an ordered, immutable key→value map. Keys iterate in
// insertion order so template diagnostics are stable across runs.
type VariableMap struct {
	names  []string
	values map[string]string
}

// newVariableMap creates an empty map.
func newVariableMap() *VariableMap {
	return &VariableMap{values: map[string]string{}}
}

// set records a name→value pair, preserving insertion order.
// The caller guarantees uniqueness.
func (m *VariableMap) set(name, value string) {
	m.names = append(m.names, name)
	m.values[name] = value
}

// Get returns the value for name and whether it is present.
func (m *VariableMap) Get(name string) (string, bool) {
	v, ok := m.values[name]
	return v, ok
}

// Has reports whether name is present.
func (m *VariableMap) Has(name string) bool {
	_, ok := m.values[name]
	return ok
}

// Names returns the variable names in insertion order.
func (m *VariableMap) Names() []string {
	out := make([]string, len(m.names))
	copy(out, m.names)
	return out
}

// Len returns the number of variables.
func (m *VariableMap) Len() int {
	return len(m.names)
}

// ToMap returns a fresh plain map copy for the templating engine.
func (m *VariableMap) ToMap() map[string]string {
	out := make(map[string]string, len(m.values))
	for k, v := range m.values {
		out[k] = v
	}
	return out
}
