package wire

import (
	"encoding/binary"
	"hash/crc32"

	"github.com/chieftain0/staticstring"
)

// Encode serializes s into a framed record. The payload is the content
// bytes only; the sentinel is not transmitted. A nil s yields nil.
func Encode(s *staticstring.String) []byte {
	if s == nil {
		return nil
	}
	content := s.Bytes()
	total := headerSize + len(content) + crcSize

	out := make([]byte, 0, total)
	out = append(out, magic0, magic1, TypeString)
	out = binary.LittleEndian.AppendUint32(out, uint32(total))
	out = append(out, content...)

	crc := crc32.ChecksumIEEE(out[2:])
	out = binary.LittleEndian.AppendUint32(out, crc)
	return out
}
