package core

// Generic CSR (IEEE 1212) key ids, spec.md §6.
const (
	KeyIDDescriptor       uint8 = 0x01
	KeyIDBusDependentInfo uint8 = 0x02
	KeyIDVendorInfo       uint8 = 0x03
	KeyIDHardwareVersion  uint8 = 0x04
	KeyIDModuleInfo       uint8 = 0x07
	KeyIDNodeCapabilities uint8 = 0x0c
	KeyIDEUI64            uint8 = 0x0d
	KeyIDUnit             uint8 = 0x11
	KeyIDSpecifierID      uint8 = 0x12
	KeyIDVersion          uint8 = 0x13
	KeyIDDependentInfo    uint8 = 0x14
	KeyIDUnitLocation     uint8 = 0x15
	KeyIDModel            uint8 = 0x17
	KeyIDInstance         uint8 = 0x18
	KeyIDKeyword          uint8 = 0x19
	KeyIDFeature          uint8 = 0x1a
	KeyIDModifiableDescr  uint8 = 0x1f
	KeyIDDirectoryID      uint8 = 0x20
)

// genericCSRTable is the last-resort fallback of spec.md §4.5 step 3: bare
// display names for every generic CSR key id, with no spec-specific
// content decoding. This is the table consulted after the IEEE 1394 bus
// table misses, so an entry here never needs a content renderer — if it
// did, it would belong in ieee1394BusTable instead.
var genericCSRTable = map[formatterKey]*KeyFormatter{
	{KeyTypeLeaf, KeyIDDescriptor}:            {Name: "descriptor"},
	{KeyTypeImmediate, KeyIDBusDependentInfo}: {Name: "bus dependent info"},
	{KeyTypeImmediate, KeyIDVendorInfo}:       {Name: "vendor info"},
	{KeyTypeImmediate, KeyIDHardwareVersion}:  {Name: "hardware version"},
	{KeyTypeDirectory, KeyIDModuleInfo}:       {Name: "module info"},
	{KeyTypeImmediate, KeyIDNodeCapabilities}: {Name: "node capabilities"},
	{KeyTypeLeaf, KeyIDEUI64}:                 {Name: "EUI-64"},
	{KeyTypeDirectory, KeyIDUnit}:             {Name: "unit"},
	{KeyTypeImmediate, KeyIDSpecifierID}:      {Name: "specifier id"},
	{KeyTypeImmediate, KeyIDVersion}:          {Name: "version"},
	{KeyTypeDirectory, KeyIDDependentInfo}:    {Name: "dependent info"},
	{KeyTypeLeaf, KeyIDUnitLocation}:          {Name: "unit location"},
	{KeyTypeLeaf, KeyIDModel}:                 {Name: "model"},
	{KeyTypeImmediate, KeyIDInstance}:         {Name: "instance"},
	{KeyTypeLeaf, KeyIDKeyword}:               {Name: "keyword"},
	{KeyTypeImmediate, KeyIDFeature}:          {Name: "feature"},
	{KeyTypeLeaf, KeyIDModifiableDescr}:       {Name: "modifiable descriptor"},
	{KeyTypeImmediate, KeyIDDirectoryID}:      {Name: "directory id"},
}

// ieee1394BusTable is the first fallback of spec.md §4.5 step 3: the
// subset of generic CSR key ids that carry IEEE-1394-specific content
// decoding (textual descriptors, EUI-64, keyword lists, unit locations).
// It is searched before genericCSRTable, so a leaf match here both names
// the entry and renders its referenced block's content; a miss falls
// through to the bare name in genericCSRTable. The unit directory and
// csr-offset dependent info entries carry a name only.
var ieee1394BusTable = map[formatterKey]*KeyFormatter{
	{KeyTypeLeaf, KeyIDDescriptor}: {
		Name:       "descriptor",
		LeafRender: renderDescriptorLeaf,
	},
	{KeyTypeLeaf, KeyIDEUI64}: {
		Name:       "EUI-64",
		LeafRender: renderEUI64Leaf,
	},
	{KeyTypeLeaf, KeyIDKeyword}: {
		Name:       "keyword",
		LeafRender: renderKeywordLeaf,
	},
	{KeyTypeLeaf, KeyIDUnitLocation}: {
		Name:       "unit location",
		LeafRender: renderUnitLocationLeaf,
	},
	{KeyTypeLeaf, KeyIDModel}: {
		Name:       "model",
		LeafRender: renderDescriptorLeaf,
	},
	{KeyTypeDirectory, KeyIDUnit}: {
		Name: "unit",
	},
	{KeyTypeCSROffset, KeyIDDependentInfo}: {
		Name: "dependent info",
	},
}
