package matcher

// Exported for white-box testing.
var (
	WordBounded    = wordBounded
	ProtocolDigest = protocolDigest
)
