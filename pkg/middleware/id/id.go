package id

import (
	"encoding/binary"
	"encoding/hex"
	"math/rand"
)

const Len = 8

// Generate returns a random hex id used to correlate a request with its reply.
func Generate() string {
	return hex.EncodeToString(binary.LittleEndian.AppendUint64(nil, rand.Uint64()))
}
