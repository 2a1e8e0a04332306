package rope

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func freshLeaf(t *testing.T, capacity int) []byte {
	t.Helper()
	buf := make([]byte, capacity)
	n := encodeLeaf(nil, buf)
	require.Equal(t, 1, n)
	return buf
}

func TestRLEInsertAppend(t *testing.T) {
	buf := freshLeaf(t, 64)

	n, rank := rleInsert(buf, 0, Symbol(1), 3)
	require.Greater(t, n, 0)
	require.Equal(t, uint64(0), rank)
	require.Equal(t, counts{0, 3, 0, 0, 0, 0}, rleCount(buf))

	n, rank = rleInsert(buf, 3, Symbol(2), 2)
	require.Greater(t, n, 0)
	require.Equal(t, uint64(0), rank)
	require.Equal(t, counts{0, 3, 2, 0, 0, 0}, rleCount(buf))
}

func TestRLEInsertCoalesces(t *testing.T) {
	buf := freshLeaf(t, 64)
	rleInsert(buf, 0, Symbol(1), 3)
	n, _ := rleInsert(buf, 1, Symbol(1), 2)
	runs := decodeLeaf(buf[:n])
	require.Len(t, runs, 1, "inserting the same symbol inside a run must coalesce")
	require.Equal(t, uint64(5), runs[0].len)
}

func TestRLEInsertSplitsRun(t *testing.T) {
	buf := freshLeaf(t, 64)
	rleInsert(buf, 0, Symbol(1), 4)
	n, rank := rleInsert(buf, 2, Symbol(3), 1)
	require.Equal(t, uint64(0), rank, "symbol 3 has no prior occurrences in this leaf")

	runs := decodeLeaf(buf[:n])
	require.Equal(t, []run{
		{sym: 1, len: 2},
		{sym: 3, len: 1},
		{sym: 1, len: 2},
	}, runs)
}

func TestRLEInsertPrefixRank(t *testing.T) {
	buf := freshLeaf(t, 64)
	rleInsert(buf, 0, Symbol(1), 2) // "11"
	rleInsert(buf, 2, Symbol(2), 2) // "1122"
	n, rank := rleInsert(buf, 3, Symbol(2), 1)
	require.Equal(t, uint64(1), rank, "one symbol 2 already precedes the insertion point")
	require.Equal(t, counts{0, 2, 3, 0, 0, 0}, rleCount(buf[:n]))
}

func TestRLESplitBalances(t *testing.T) {
	left := freshLeaf(t, 256)
	right := freshLeaf(t, 256)

	for i, sym := range []Symbol{1, 2, 3, 1, 2} {
		rleInsert(left, uint64(i*4), sym, 4)
	}
	before := rleCount(left)

	ln, rn := rleSplit(left, right)
	require.Greater(t, ln, 0)
	require.Greater(t, rn, 0)

	after := rleCount(left[:ln])
	after.add(rleCount(right[:rn]))
	require.Equal(t, before, after, "split must not lose or duplicate symbols")
}

func TestRLERank1a(t *testing.T) {
	buf := freshLeaf(t, 64)
	rleInsert(buf, 0, Symbol(1), 3)
	rleInsert(buf, 3, Symbol(2), 2)

	require.Equal(t, counts{0, 3, 0, 0, 0, 0}, rleRank1a(buf, 3))
	require.Equal(t, counts{0, 3, 1, 0, 0, 0}, rleRank1a(buf, 4))
	require.Equal(t, counts{0, 0, 0, 0, 0, 0}, rleRank1a(buf, 0))
}

func TestRLERank2a(t *testing.T) {
	buf := freshLeaf(t, 64)
	rleInsert(buf, 0, Symbol(1), 3)
	rleInsert(buf, 3, Symbol(2), 2)

	c1, c2 := rleRank2a(buf, 1, 4)
	require.Equal(t, counts{0, 1, 0, 0, 0, 0}, c1)
	require.Equal(t, counts{0, 3, 1, 0, 0, 0}, c2)

	// x == y must agree exactly (scenario 6).
	c1, c2 = rleRank2a(buf, 2, 2)
	require.Equal(t, c1, c2)
}
