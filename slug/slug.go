// Package slug derives public URL identifiers for articles. A slug keeps the
// title's casing, replaces spaces with hyphens and appends a random
// 20-character suffix so that identical titles still yield distinct slugs.
package slug

import (
	"crypto/rand"
	"math/big"
	"strings"
)

const (
	alphabet     = "abcdefghijklmnopqrstuvwxyz0123456789"
	suffixLength = 20
)

// Generate builds a slug from a title. The random suffix makes collisions
// vanishingly unlikely; the caller still owns collision handling against the
// unique index.
func Generate(title string) string {
	return strings.ReplaceAll(title, " ", "-") + "-" + randomSuffix(suffixLength)
}

func randomSuffix(n int) string {
	var b strings.Builder
	b.Grow(n)
	max := big.NewInt(int64(len(alphabet)))
	for i := 0; i < n; i++ {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand only fails if the platform source is broken.
			panic(err)
		}
		b.WriteByte(alphabet[idx.Int64()])
	}
	return b.String()
}
