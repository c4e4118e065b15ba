package bulletproofs

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

const testTranscriptLabel = "AggregatedRangeProofTest"

func TestTranscriptOverShares(t *testing.T) {
	assert := assert.New(t)

	n, m := 8, 2
	prover := NewBulletproofGens(DefaultPedersenGens(), n, m)
	verifier := NewBulletproofGens(DefaultPedersenGens(), n, m)

	challenge := func(gens *BulletproofGens, j int) string {
		tt := InitialTranscript(testTranscriptLabel)
		RangeproofDomainSep(uint64(n), uint64(m), tt)
		AppendPedersenGens(tt, gens.PedersenGens())
		share, err := gens.Share(j)
		assert.NoError(err)
		for i := 0; i < share.Len(); i++ {
			AppendPoint("G", share.G(i), tt)
			AppendPoint("H", share.H(i), tt)
		}
		AppendScalar("v", uint64ToScalar(uint64(j)), tt)
		return hex.EncodeToString(ChallengeScalar("y", tt).Bytes())
	}

	for j := 0; j < m; j++ {
		assert.Equal(challenge(prover, j), challenge(verifier, j))
	}
	assert.NotEqual(challenge(prover, 0), challenge(prover, 1))
}

func TestRangeproofDomainSep(t *testing.T) {
	assert := assert.New(t)

	t1 := RangeproofDomainSep(64, 1, InitialTranscript(testTranscriptLabel))
	t2 := RangeproofDomainSep(64, 1, InitialTranscript(testTranscriptLabel))
	t3 := RangeproofDomainSep(32, 2, InitialTranscript(testTranscriptLabel))

	c1 := ChallengeScalar("y", t1)
	assert.True(c1.Equals(ChallengeScalar("y", t2)))
	assert.False(c1.Equals(ChallengeScalar("y", t3)))
}
