package compactmmr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forestrie/compactmmr/digest"
	"github.com/forestrie/compactmmr/rangearith"
)

func TestAppendFromEmpty(t *testing.T) {
	c := sha256Combiner{}
	a := randomDigest(t, 1)
	b := randomDigest(t, 2)
	d := randomDigest(t, 3)
	e := randomDigest(t, 4)

	m := New(c)

	m.Append(a)
	want, err := FromParams(c, 0, 1, []digest.Digest{a})
	require.NoError(t, err)
	requireMMREqual(t, want, m)

	m.Append(b)
	root10 := c.Combine(a, b)
	want, err = FromParams(c, 0, 2, []digest.Digest{root10})
	require.NoError(t, err)
	requireMMREqual(t, want, m)

	m.Append(d)
	want, err = FromParams(c, 0, 3, []digest.Digest{root10, d})
	require.NoError(t, err)
	requireMMREqual(t, want, m)

	m.Append(e)
	root11 := c.Combine(d, e)
	root02 := c.Combine(root10, root11)
	want, err = FromParams(c, 0, 4, []digest.Digest{root02})
	require.NoError(t, err)
	requireMMREqual(t, want, m)
}

func TestAppendNonZeroStart(t *testing.T) {
	c := sha256Combiner{}
	e1 := randomDigest(t, 1)
	e2 := randomDigest(t, 2)
	e3 := randomDigest(t, 3)
	e4 := randomDigest(t, 4)

	m, err := FromParams(c, 1, 1, nil)
	require.NoError(t, err)

	m.Append(e1)
	want, err := FromParams(c, 1, 2, []digest.Digest{e1})
	require.NoError(t, err)
	requireMMREqual(t, want, m)

	m.Append(e2)
	want, err = FromParams(c, 1, 3, []digest.Digest{e1, e2})
	require.NoError(t, err)
	requireMMREqual(t, want, m)

	m.Append(e3)
	node11 := c.Combine(e2, e3)
	want, err = FromParams(c, 1, 4, []digest.Digest{e1, node11})
	require.NoError(t, err)
	requireMMREqual(t, want, m)

	m.Append(e4)
	want, err = FromParams(c, 1, 5, []digest.Digest{e1, node11, e4})
	require.NoError(t, err)
	requireMMREqual(t, want, m)
}

func TestAppendLargeRange(t *testing.T) {
	c := sha256Combiner{}
	e1 := randomDigest(t, 1)
	e2 := randomDigest(t, 2)

	m, err := FromParams(c, 1<<19, 1<<20, []digest.Digest{e1})
	require.NoError(t, err)

	m.Append(e2)

	want, err := FromParams(c, 1<<19, (1<<20)+1, []digest.Digest{e1, e2})
	require.NoError(t, err)
	requireMMREqual(t, want, m)
}

func TestAppendNearU64Max(t *testing.T) {
	c := sha256Combiner{}
	e1 := randomDigest(t, 1)
	e2 := randomDigest(t, 2)

	const maxU64 = ^uint64(0)
	m, err := FromParams(c, maxU64-2, maxU64-1, []digest.Digest{e1})
	require.NoError(t, err)

	m.Append(e2)

	want, err := FromParams(c, maxU64-2, maxU64, []digest.Digest{e1, e2})
	require.NoError(t, err)
	requireMMREqual(t, want, m)
	assert.Equal(t, c.Combine(e1, e2), m.Root())
}

// TestAppendCollapsesPeaksAtPowerOfTwoBoundary exercises the boundary
// behavior from spec.md §8: appending at end = 2^k - 1 collapses all
// existing peaks into a single new peak.
func TestAppendCollapsesPeaksAtPowerOfTwoBoundary(t *testing.T) {
	c := sha256Combiner{}
	m := New(c)
	for i := 0; i < 7; i++ { // leaves up to end=7, one short of 2^3
		m.Append(randomDigest(t, byte(i)))
	}
	require.Len(t, m.Peaks(), 3) // heights 0,1,2 -> peaks [h2, h1, h0]

	m.Append(randomDigest(t, 99))
	require.True(t, rangearith.IsPow2(m.End()))
	assert.Len(t, m.Peaks(), 1)
	assert.Equal(t, uint64(8), m.End())
}
