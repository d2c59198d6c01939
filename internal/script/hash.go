package script

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"io"
)

// Fingerprint computes the deterministic content hash for a segment. The hash
// covers (text, voice, language); changing any one of the three changes the
// result. Language defaults to "en" when empty. Fields are length-prefixed so
// distinct triples can never collide through concatenation.
func Fingerprint(text, voiceID, language string) string {
	if language == "" {
		language = "en"
	}
	h := sha256.New()
	for _, part := range []string{text, voiceID, language} {
		var size [8]byte
		binary.BigEndian.PutUint64(size[:], uint64(len(part)))
		h.Write(size[:])
		io.WriteString(h, part)
	}
	return hex.EncodeToString(h.Sum(nil))
}
