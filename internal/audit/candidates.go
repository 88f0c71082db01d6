package audit

import (
	"bufio"
	"encoding/hex"
	"io"
	"strings"

	"golang.org/x/crypto/sha3"
)

// maxLineLength bounds a single line of a password list.
const maxLineLength = 1 << 20

// ReadCandidates reads one password per line. Trailing carriage returns are
// removed and blank lines are skipped; other whitespace is kept because it
// is part of the password.
func ReadCandidates(r io.Reader) ([]string, error) {
	var candidates []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		candidates = append(candidates, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return candidates, nil
}

// Digest returns the hex SHA3-256 digest of the candidates, each followed by
// a newline. Two audits with the same digest were run over the same list.
func Digest(candidates []string) string {
	h := sha3.New256()
	for _, c := range candidates {
		h.Write([]byte(c))
		h.Write([]byte{'\n'})
	}
	return hex.EncodeToString(h.Sum(nil))
}
