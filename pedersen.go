package bulletproofs

import (
	"github.com/bwesterb/go-ristretto"
	"github.com/dchest/blake2b"
	"golang.org/x/crypto/sha3"
)

const HashToPointDomainTag = "mc_onetime_key_hash_to_point"

// RistrettoBasePedersenGens uses the ristretto basepoint for the value and
// the SHA3-512 hash of its encoding for the blinding factor.
func RistrettoBasePedersenGens() *PedersenGens {
	var base ristretto.Point
	base.SetBase()

	h := sha3.New512()
	h.Write(base.Bytes())

	return NewPedersenGens(&base, pointFromUniformBytes(h.Sum(nil)))
}

// HashedBasePedersenGens uses the ristretto basepoint for the blinding factor
// and its blake2b hash-to-point for the value.
func HashedBasePedersenGens() *PedersenGens {
	var base ristretto.Point
	base.SetBase()

	return NewPedersenGens(hashToPoint(&base), &base)
}

func hashToPoint(public *ristretto.Point) *ristretto.Point {
	hash := blake2b.New512()
	hash.Write([]byte(HashToPointDomainTag))
	hash.Write(public.Bytes())
	return pointFromUniformBytes(hash.Sum(nil))
}
