package bulletproofs

import (
	"crypto/sha512"
	"errors"
	"fmt"
	"math"

	"github.com/bwesterb/go-ristretto"
)

const (
	GeneratorsChainInitLabel = "GeneratorsChainInit"
	GeneratorsChainNextLabel = "GeneratorsChainNext"

	PedersenBLabel         = "Bulletproofs.Generators.B"
	PedersenBBlindingLabel = "Bulletproofs.Generators.B_blinding"
)

var ErrInvalidShareIndex = errors.New("InvalidShareIndex")

// GeneratorsChain creates an arbitrary-long sequence of orthogonal generators,
// determined by the hash of a label. A chain must not be advanced concurrently.
type GeneratorsChain struct {
	next ristretto.Point
}

func NewGeneratorsChain(label []byte) *GeneratorsChain {
	h := sha512.New()
	h.Write([]byte(GeneratorsChainInitLabel))
	h.Write(label)

	c := &GeneratorsChain{}
	c.next = *pointFromUniformBytes(h.Sum(nil))
	return c
}

func DefaultGeneratorsChain() *GeneratorsChain {
	return NewGeneratorsChain(nil)
}

// Next returns the current point and moves the chain forward.
func (c *GeneratorsChain) Next() *ristretto.Point {
	current := c.next

	h := sha512.New()
	h.Write([]byte(GeneratorsChainNextLabel))
	h.Write(current.Bytes())
	c.next = *pointFromUniformBytes(h.Sum(nil))

	return &current
}

func (c *GeneratorsChain) FastForward(n int) {
	for i := 0; i < n; i++ {
		c.Next()
	}
}

func (c *GeneratorsChain) Take(n int) []*ristretto.Point {
	if n <= 0 {
		return []*ristretto.Point{}
	}
	points := make([]*ristretto.Point, n)
	for i := range points {
		points[i] = c.Next()
	}
	return points
}

// PedersenGens represents a pair of base points for Pedersen commitments.
// B and BBlinding must have no known discrete log relation to each other,
// nothing in this package checks that for caller supplied points.
type PedersenGens struct {
	B         *ristretto.Point
	BBlinding *ristretto.Point
}

func NewPedersenGens(B, BBlinding *ristretto.Point) *PedersenGens {
	return &PedersenGens{
		B:         B,
		BBlinding: BBlinding,
	}
}

func DefaultPedersenGens() *PedersenGens {
	return &PedersenGens{
		B:         NewGeneratorsChain([]byte(PedersenBLabel)).Next(),
		BBlinding: NewGeneratorsChain([]byte(PedersenBBlindingLabel)).Next(),
	}
}

// Commit returns value*B + blinding*BBlinding.
func (pg *PedersenGens) Commit(value, blinding *ristretto.Scalar) *ristretto.Point {
	return multiscalarMul([]*ristretto.Scalar{value, blinding}, []*ristretto.Point{pg.B, pg.BBlinding})
}

func (pg *PedersenGens) CommitUint64(value uint64, blinding *ristretto.Scalar) *ristretto.Point {
	return pg.Commit(uint64ToScalar(value), blinding)
}

// BulletproofGens contains all the generators needed for aggregating m range
// proofs of n bits each. It is immutable once built and may be shared freely.
type BulletproofGens struct {
	n, m   int
	pcGens *PedersenGens
	g      []*ristretto.Point
	h      []*ristretto.Point
}

func NewBulletproofGens(pcGens *PedersenGens, n, m int) *BulletproofGens {
	if n < 0 || m < 0 {
		panic(fmt.Errorf("NewBulletproofGens InvalidGeneratorsLength n: %d, m: %d", n, m))
	}
	if m != 0 && n > math.MaxInt/m {
		panic(fmt.Errorf("NewBulletproofGens InvalidGeneratorsLength n*m overflows, n: %d, m: %d", n, m))
	}

	return &BulletproofGens{
		n:      n,
		m:      m,
		pcGens: pcGens,
		g:      NewGeneratorsChain(pcGens.B.Bytes()).Take(n * m),
		h:      NewGeneratorsChain(pcGens.BBlinding.Bytes()).Take(n * m),
	}
}

func (b *BulletproofGens) N() int {
	return b.n
}

func (b *BulletproofGens) M() int {
	return b.m
}

func (b *BulletproofGens) PedersenGens() *PedersenGens {
	return b.pcGens
}

func (b *BulletproofGens) All() *BulletproofGensView {
	return &BulletproofGensView{
		gens:  b,
		lower: 0,
		upper: len(b.g),
	}
}

// Share returns the generators of the j-th party, G and H restricted to
// [n*j, n*(j+1)).
func (b *BulletproofGens) Share(j int) (*BulletproofGensView, error) {
	if j < 0 || j >= b.m {
		return nil, fmt.Errorf("Share %w %d, parties %d", ErrInvalidShareIndex, j, b.m)
	}
	return &BulletproofGensView{
		gens:  b,
		lower: b.n * j,
		upper: b.n * (j + 1),
	}, nil
}

// BulletproofGensView is a read-only window over a BulletproofGens.
type BulletproofGensView struct {
	gens         *BulletproofGens
	lower, upper int
}

func (v *BulletproofGensView) Len() int {
	return v.upper - v.lower
}

func (v *BulletproofGensView) PedersenGens() *PedersenGens {
	return v.gens.pcGens
}

func (v *BulletproofGensView) G(i int) *ristretto.Point {
	return v.at(v.gens.g, i)
}

func (v *BulletproofGensView) H(i int) *ristretto.Point {
	return v.at(v.gens.h, i)
}

func (v *BulletproofGensView) GVec() []*ristretto.Point {
	return v.copyWindow(v.gens.g)
}

func (v *BulletproofGensView) HVec() []*ristretto.Point {
	return v.copyWindow(v.gens.h)
}

func (v *BulletproofGensView) at(points []*ristretto.Point, i int) *ristretto.Point {
	if i < 0 || i >= v.Len() {
		panic(fmt.Errorf("BulletproofGensView index out of range %d, len %d", i, v.Len()))
	}
	p := *points[v.lower+i]
	return &p
}

func (v *BulletproofGensView) copyWindow(points []*ristretto.Point) []*ristretto.Point {
	out := make([]*ristretto.Point, v.Len())
	for i := range out {
		p := *points[v.lower+i]
		out[i] = &p
	}
	return out
}
