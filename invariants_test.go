package rope

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// checkInvariants walks the whole rope and verifies the global invariants
// of §3/§8: every record's (len, counts) matches the exact totals of its
// subtree, leaves decode to exactly their parent record's totals, no
// bucket exceeds max_children, and the root aggregates to rp.C.
func checkInvariants(t *testing.T, rp *Rope) {
	t.Helper()

	if rp.rootIsLeaf {
		if rp.rootLeaf != nil {
			c := rleCount(rp.rootLeaf[:rp.rootLeafLen])
			require.Equal(t, rp.C, c)
			require.LessOrEqual(t, rp.rootLeafLen+rleMinSpace, rp.blockBytes+rleMinSpace)
			require.LessOrEqual(t, rp.rootLeafLen, rp.blockBytes)
		} else {
			require.Equal(t, counts{}, rp.C)
		}
		return
	}

	var total counts
	verifyBucket(t, rp, rp.root, &total)
	require.Equal(t, rp.C, total)
}

func verifyBucket(t *testing.T, rp *Rope, b *bucket, out *counts) {
	t.Helper()
	require.LessOrEqual(t, b.n, rp.maxChildren)

	var agg counts
	for i := 0; i < b.n; i++ {
		rec := b.recs[i]
		require.Equal(t, rec.length, rec.cnt.total(), "record %d length/counts mismatch", i)

		if b.isBottom {
			require.NotNil(t, rec.leaf)
			require.LessOrEqual(t, rec.leafLen, rp.blockBytes)
			c := rleCount(rec.leaf[:rec.leafLen])
			require.Equal(t, rec.cnt, c)
		} else {
			require.NotNil(t, rec.bucket)
			var childTotal counts
			verifyBucket(t, rp, rec.bucket, &childTotal)
			require.Equal(t, rec.cnt, childTotal)
		}
		agg.add(rec.cnt)
	}
	*out = agg
}
