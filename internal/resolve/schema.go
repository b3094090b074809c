package resolve

import "path/filepath"

// SchemaFileName is the fixed schema file name under each directive/layer
// directory. Schema presence is optional metadata, so resolution never
// probes for it and never fails.
const SchemaFileName = "base.schema.md"

// ResolveSchemaPath returns the candidate schema path for a directive/layer
// pair. The file may or may not exist; absence is handled by the caller.
func (r *Resolver) ResolveSchemaPath(directive, layer string) string {
	return filepath.Join(r.SchemaBaseDir, directive, layer, SchemaFileName)
}
