package crypto

import (
	"crypto/rand"
	"math"
)

// Entity IDs are NanoIDs: URL-safe, collision-resistant random
// strings generated from crypto/rand.

const (
	idAlphabet string = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789_-"
	idSize     int    = 22 // 22 * 6 = 132 bits of entropy (uuid is 128 bits)
)

type NanoIDGenerator struct {
	alphabet string
	mask     int
}

func NewNanoID() *NanoIDGenerator {
	return &NanoIDGenerator{
		alphabet: idAlphabet,
		mask:     getMask(len(idAlphabet)),
	}
}

func getMask(alphabetLen int) int {
	for i := 1; i <= 8; i++ {
		mask := (2 << uint(i)) - 1
		if mask > alphabetLen-1 {
			return mask
		}
	}
	return 255
}

// Generate returns a fresh random ID.
func (n *NanoIDGenerator) Generate() (string, error) {
	alphabetLen := len(n.alphabet)
	step := int(math.Ceil(1.6 * float64(n.mask*idSize) / float64(alphabetLen)))

	id := make([]byte, idSize)
	buffer := make([]byte, step)

	for position := 0; position < idSize; {
		if _, err := rand.Read(buffer); err != nil {
			return "", err
		}

		// Rejection sampling keeps the distribution uniform across
		// the alphabet.
		for i := 0; i < step && position < idSize; i++ {
			index := buffer[i] & byte(n.mask)
			if int(index) < alphabetLen {
				id[position] = n.alphabet[index]
				position++
			}
		}
	}

	return string(id), nil
}
