package heaps

import (
	"unicode/utf16"

	"github.com/google/uuid"
)

// Strings reads the strings heap: null-terminated UTF-8 entries addressed
// by byte offset.
type Strings struct {
	data []byte
}

// NewStrings wraps raw strings-heap bytes. The heap borrows the slice and
// never mutates it.
func NewStrings(data []byte) *Strings {
	return &Strings{data: data}
}

// Lookup returns the string starting at offset. Offsets past the heap or
// entries missing their terminator yield "".
func (h *Strings) Lookup(offset uint32) string {
	if int64(offset) >= int64(len(h.data)) {
		return ""
	}
	rest := h.data[offset:]
	for i, b := range rest {
		if b == 0 {
			return string(rest[:i])
		}
	}
	return ""
}

// Size returns the heap size in bytes.
func (h *Strings) Size() int {
	return len(h.data)
}

// Blobs reads the blob heap: entries addressed by byte offset, each
// prefixed with a compressed length.
type Blobs struct {
	data []byte
}

// NewBlobs wraps raw blob-heap bytes.
func NewBlobs(data []byte) *Blobs {
	return &Blobs{data: data}
}

// Lookup returns the blob starting at offset, without its length prefix.
// Malformed or out-of-range entries yield nil. The returned slice aliases
// the heap and must not be modified.
func (h *Blobs) Lookup(offset uint32) []byte {
	if int64(offset) >= int64(len(h.data)) {
		return nil
	}
	length, n := readCompressedLen(h.data[offset:])
	if n == 0 {
		return nil
	}
	start := int64(offset) + int64(n)
	end := start + int64(length)
	if end > int64(len(h.data)) {
		return nil
	}
	return h.data[start:end]
}

// Size returns the heap size in bytes.
func (h *Blobs) Size() int {
	return len(h.data)
}

// readCompressedLen decodes the 1-, 2-, or 4-byte compressed length
// prefix used by the blob and user-string heaps. Returns the decoded
// length and the number of prefix bytes consumed, or (0, 0) when the
// prefix is malformed.
func readCompressedLen(data []byte) (uint32, int) {
	if len(data) == 0 {
		return 0, 0
	}
	b0 := data[0]
	switch {
	case b0&0x80 == 0:
		return uint32(b0), 1
	case b0&0xC0 == 0x80:
		if len(data) < 2 {
			return 0, 0
		}
		return uint32(b0&0x3F)<<8 | uint32(data[1]), 2
	case b0&0xE0 == 0xC0:
		if len(data) < 4 {
			return 0, 0
		}
		return uint32(b0&0x1F)<<24 | uint32(data[1])<<16 | uint32(data[2])<<8 | uint32(data[3]), 4
	default:
		return 0, 0
	}
}

// GUIDs reads the GUID heap: 16-byte cells addressed by 1-based index.
type GUIDs struct {
	data []byte
}

// NewGUIDs wraps raw GUID-heap bytes.
func NewGUIDs(data []byte) *GUIDs {
	return &GUIDs{data: data}
}

// Lookup returns the GUID at the 1-based index. Index 0 and out-of-range
// indexes yield the nil UUID.
func (h *GUIDs) Lookup(index uint32) uuid.UUID {
	if index == 0 {
		return uuid.Nil
	}
	start := int64(index-1) * 16
	if start+16 > int64(len(h.data)) {
		return uuid.Nil
	}
	// Cells are stored in the mixed-endian layout the format inherits
	// from its platform GUID type.
	var raw [16]byte
	copy(raw[:], h.data[start:start+16])
	raw[0], raw[1], raw[2], raw[3] = raw[3], raw[2], raw[1], raw[0]
	raw[4], raw[5] = raw[5], raw[4]
	raw[6], raw[7] = raw[7], raw[6]
	g, err := uuid.FromBytes(raw[:])
	if err != nil {
		return uuid.Nil
	}
	return g
}

// Count returns the number of whole GUID cells in the heap.
func (h *GUIDs) Count() int {
	return len(h.data) / 16
}

// UserStrings reads the user-string heap: entries addressed by byte
// offset, each a compressed length followed by UTF-16 code units and a
// trailing terminal byte.
type UserStrings struct {
	data []byte
}

// NewUserStrings wraps raw user-string-heap bytes.
func NewUserStrings(data []byte) *UserStrings {
	return &UserStrings{data: data}
}

// Lookup returns the user string starting at offset. Malformed or
// out-of-range entries yield "".
func (h *UserStrings) Lookup(offset uint32) string {
	if int64(offset) >= int64(len(h.data)) {
		return ""
	}
	length, n := readCompressedLen(h.data[offset:])
	if n == 0 || length == 0 {
		return ""
	}
	start := int64(offset) + int64(n)
	end := start + int64(length)
	if end > int64(len(h.data)) {
		return ""
	}
	payload := h.data[start:end]
	// The stored length covers the UTF-16 payload plus one terminal byte.
	if len(payload)%2 == 1 {
		payload = payload[:len(payload)-1]
	}
	units := make([]uint16, len(payload)/2)
	for i := range units {
		units[i] = uint16(payload[2*i]) | uint16(payload[2*i+1])<<8
	}
	return string(utf16.Decode(units))
}

// Size returns the heap size in bytes.
func (h *UserStrings) Size() int {
	return len(h.data)
}

// Set bundles the four heaps of one metadata stream.
type Set struct {
	Strings     *Strings
	Blobs       *Blobs
	GUIDs       *GUIDs
	UserStrings *UserStrings
}

// NewSet builds a heap set from the four raw heap byte slices.
func NewSet(strings, blobs, guids, userStrings []byte) *Set {
	return &Set{
		Strings:     NewStrings(strings),
		Blobs:       NewBlobs(blobs),
		GUIDs:       NewGUIDs(guids),
		UserStrings: NewUserStrings(userStrings),
	}
}
