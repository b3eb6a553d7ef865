package core

// KeyFormatter binds a (key_type, key_id) pair to a display name and an
// optional content renderer, per spec.md §4.5. Exactly one of the render
// fields is meaningful for a given key type; which one is determined by
// the key type of the formatterKey it is registered under (an immediate
// key only ever sets ImmediateRender, a leaf key only ever sets
// LeafRender, and so on), not by a separate tag.
type KeyFormatter struct {
	// Name is the display name prefixed to the rendered entry, e.g.
	// "unit" or "command set".
	Name string

	// ImmediateRender renders an immediate entry's 24-bit value as a
	// string. May be nil, in which case the raw hex value is shown.
	ImmediateRender func(value uint32) string

	// LeafRender renders the content of a leaf block whose referencing
	// entry matched this formatter. specName is the resolved spec
	// display name (may be empty).
	LeafRender func(w *Writer, block *Block, specName string)

	// DirectoryRender renders the content of a directory block whose
	// referencing entry matched this formatter, beyond the generic
	// entry-by-entry rendering every directory already receives.
	// Usually nil: spec.md §4.6 has no directory variant in its worked
	// examples, but the table shape in §4.5 allows one, so it is
	// supported for a spec that needs a directory-level summary line.
	DirectoryRender func(w *Writer, block *Block, spec SpecIdentifier)
}

// formatterKey is the (key_type, key_id) lookup key a registry table is
// indexed by.
type formatterKey struct {
	KeyType KeyType
	KeyID   uint8
}

// specTable is one entry of the closed spec registry of spec.md §6: a
// (specifier_id, version) pair, its display name, and its key-formatter
// table.
type specTable struct {
	SpecifierID uint32
	Version     uint32
	Name        string
	Entries     map[formatterKey]*KeyFormatter
}

// specRegistry is the closed, static set of recognized specifications.
// Populated by the registry_*.go files' init functions.
var specRegistry []specTable

func registerSpec(specifierID, version uint32, name string, entries map[formatterKey]*KeyFormatter) {
	specRegistry = append(specRegistry, specTable{
		SpecifierID: specifierID,
		Version:     version,
		Name:        name,
		Entries:     entries,
	})
}

// Lookup resolves the KeyFormatter for a directory entry or leaf
// reference, per the search order of spec.md §4.5 step 2–4: the matched
// spec's table, then the IEEE 1394 bus table, then the generic CSR
// (IEEE 1212) table, then a per-key-type default. It returns the
// formatter together with the spec display name that should be
// prefixed to the rendered entry (empty unless a registered spec
// matched).
func Lookup(id SpecIdentifier, kt KeyType, keyID uint8) (*KeyFormatter, string) {
	key := formatterKey{KeyType: kt, KeyID: keyID}

	for _, spec := range specRegistry {
		if spec.SpecifierID == id.SpecifierID && spec.Version == id.Version {
			if f, ok := spec.Entries[key]; ok {
				return f, spec.Name
			}
			break
		}
	}

	if f, ok := ieee1394BusTable[key]; ok {
		return f, ""
	}
	if f, ok := genericCSRTable[key]; ok {
		return f, ""
	}
	return defaultFormatter(kt, keyID), ""
}

// defaultFormatter is the final fallback of spec.md §4.5 step 4. It
// returns the same formatter for every key type and key id: its Name is
// "(unspecified)" and it has no content renderer, so an immediate entry
// shows its raw value.
func defaultFormatter(kt KeyType, keyID uint8) *KeyFormatter {
	return &KeyFormatter{Name: "(unspecified)"}
}
