package core

// unitOnlyEntries is the minimal table shared by specs whose unit
// directories carry no additional vendor-specific dependent-info
// semantics beyond the generic CSR fields already handled by
// ieee1394BusTable and genericCSRTable: matching the spec still sets
// its display name on the entries it does define (spec.md §4.5 step 2).
var unitOnlyEntries = map[formatterKey]*KeyFormatter{
	{KeyTypeDirectory, KeyIDUnit}: {Name: "unit"},
}

func init() {
	registerSpec(0x00005e, 0x000001, "IPv4 over 1394 (RFC 2734)", unitOnlyEntries)
	registerSpec(0x00005e, 0x000002, "IPv6 over 1394 (RFC 3146)", unitOnlyEntries)
	registerSpec(0x000595, 0x000001, "Alesis audio", unitOnlyEntries)
	registerSpec(0x000a27, 0x000010, "Apple iSight audio", unitOnlyEntries)
	registerSpec(0x000a27, 0x000011, "Apple iSight factory", unitOnlyEntries)
	registerSpec(0x000a27, 0x000012, "Apple iSight iris", unitOnlyEntries)
	registerSpec(0x00d04b, 0x484944, "LaCie HID", unitOnlyEntries)
}
