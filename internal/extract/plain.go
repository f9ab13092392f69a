package extract

import "strings"

// decodePlain decodes bytes as text permissively: invalid UTF-8 sequences are
// dropped rather than surfaced as errors, so this path can never fail.
func decodePlain(data []byte) string {
	return strings.ToValidUTF8(string(data), "")
}
