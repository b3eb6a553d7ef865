package core

// Generic CSR key ids relevant to spec-identifier accumulation.
const (
	keyIDVendorInfo  uint8 = 0x03
	keyIDSpecifierID uint8 = 0x12
	keyIDVersion     uint8 = 0x13
)

// unsetSpecField is the IEEE 1212 sentinel for "not yet determined".
const unsetSpecField uint32 = 0xFFFFFFFF

// SpecIdentifier is the (specifier_id, version) pair identifying the
// industry specification that governs a unit. Either field may be
// unsetSpecField, meaning it was never found while walking parent
// directories.
type SpecIdentifier struct {
	SpecifierID uint32
	Version     uint32
}

func unsetSpecIdentifier() SpecIdentifier {
	return SpecIdentifier{SpecifierID: unsetSpecField, Version: unsetSpecField}
}

// vendorInfoSeedsSpecifierID preserves the observable effect of the
// original tool's fall-through on the VENDOR_INFO branch (spec.md §9, Open
// Question 1): an immediate VENDOR_INFO entry (key 0x03) seeds
// specifier_id only if it is still unset, and never seeds version. The
// fall-through reaches `default` afterward, which does nothing else, so
// this one assignment is the entire observable effect.
const vendorInfoSeedsSpecifierID = true

// AccumulateSpecIdentifier walks upward from start (spec.md §9, Open
// Question 2: accumulation for an unrecognized key id during directory
// base computation starts from the directory block itself) through the
// chain of parent directories, taking the first occurrence of
// SPECIFIER_ID and VERSION encountered among each directory's immediate
// entries. start must be a directory-shaped block (root directory or
// directory); passing a leaf's parent directory is the caller's
// responsibility.
func AccumulateSpecIdentifier(start *Block) SpecIdentifier {
	id := unsetSpecIdentifier()
	for dir := start; dir != nil; dir = dir.Parent {
		for _, q := range dir.Quadlets {
			entry := DecodeEntry(q)
			if entry.KeyType != KeyTypeImmediate {
				continue
			}
			switch entry.KeyID {
			case keyIDSpecifierID:
				if id.SpecifierID == unsetSpecField {
					id.SpecifierID = entry.Value
				}
			case keyIDVersion:
				if id.Version == unsetSpecField {
					id.Version = entry.Value
				}
			case keyIDVendorInfo:
				if vendorInfoSeedsSpecifierID && id.SpecifierID == unsetSpecField {
					id.SpecifierID = entry.Value
				}
			}
		}
		if id.SpecifierID != unsetSpecField && id.Version != unsetSpecField {
			break
		}
	}
	return id
}
