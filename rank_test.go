package rope

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func buildRankFixture(t *testing.T) *Rope {
	t.Helper()
	rp := Init(4, 32)
	// "112223" inserted left to right.
	for i, sym := range []Symbol{1, 1, 2, 2, 2, 3} {
		rp.InsertRun(uint64(i), sym, 1)
	}
	checkInvariants(t, rp)
	return rp
}

func TestRankPrefixCounts(t *testing.T) {
	rp := buildRankFixture(t)

	require.Equal(t, counts{}, rp.Rank(0))
	require.Equal(t, counts{0, 1, 0, 0, 0, 0}, rp.Rank(1))
	require.Equal(t, counts{0, 2, 0, 0, 0, 0}, rp.Rank(2))
	require.Equal(t, counts{0, 2, 3, 0, 0, 0}, rp.Rank(5))
	require.Equal(t, rp.C, rp.Rank(6))
}

func TestRankRejectsOutOfRange(t *testing.T) {
	rp := buildRankFixture(t)
	require.Panics(t, func() { rp.Rank(7) })
}

func TestRank2WithinSameLeaf(t *testing.T) {
	rp := Init(64, 512)
	for i, sym := range []Symbol{1, 1, 2, 2, 2, 3} {
		rp.InsertRun(uint64(i), sym, 1)
	}

	cx, cy := rp.Rank2(2, 5)
	require.Equal(t, counts{0, 2, 0, 0, 0, 0}, cx)
	require.Equal(t, counts{0, 2, 3, 0, 0, 0}, cy)
}

func TestRank2AcrossLeaves(t *testing.T) {
	// 200 symbols at block_bytes=32 span many leaves, so positions 1 and
	// 190 cannot share one.
	rp := Init(4, 32)
	for i := 0; i < 200; i++ {
		rp.InsertRun(rp.C.total()/2, Symbol(1+i%5), 1)
	}
	require.False(t, rp.rootIsLeaf)

	cx, cy := rp.Rank2(1, 190)
	require.Equal(t, rp.Rank(1), cx)
	require.Equal(t, rp.Rank(190), cy)
}

func TestRank2SamePositionAgrees(t *testing.T) {
	rp := buildRankFixture(t)
	for _, pos := range []uint64{0, 1, 3, 6} {
		cx, cy := rp.Rank2(pos, pos)
		require.Equal(t, cx, cy, "rank2(%d, %d) must return equal halves", pos, pos)
		require.Equal(t, rp.Rank(pos), cx)
	}
}

func TestRank2YLessThanXIsSinglePositionVariant(t *testing.T) {
	rp := buildRankFixture(t)
	cx, cy := rp.Rank2(5, 1)
	require.Equal(t, rp.Rank(5), cx)
	require.Equal(t, counts{}, cy)
}

func TestRankOnEmptyRope(t *testing.T) {
	rp := Init(8, 64)
	require.Equal(t, counts{}, rp.Rank(0))
}

func TestRank2OnEmptyRope(t *testing.T) {
	rp := Init(8, 64)
	cx, cy := rp.Rank2(0, 0)
	require.Equal(t, counts{}, cx)
	require.Equal(t, counts{}, cy)
}
