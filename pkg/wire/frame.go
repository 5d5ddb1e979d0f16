// Package wire frames staticstring values for storage or interchange.
//
// Frame layout:
//
//	magic (2) | type (1) | total length uint32 LE | payload | CRC32 LE
//
// The length counts the entire frame including magic and CRC. The CRC
// is IEEE, computed over everything after the magic.
package wire

const (
	magic0 = 0x53 // "S"
	magic1 = 0x54 // "T"

	// TypeString is the only frame type currently defined.
	TypeString byte = 0x01

	headerSize = 7 // magic + type + length
	crcSize    = 4
)
