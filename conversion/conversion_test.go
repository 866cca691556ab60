package conversion

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

func TestDbToLinearAnchors(t *testing.T) {
	var tests = []struct {
		db     float64
		linear float64
	}{
		{0, 1},
		{10, 10},
		{20, 100},
		{-10, 0.1},
		{3, 1.9952623149688795},
	}
	for _, tt := range tests {
		assert.True(t, floats.EqualWithinRel(DbToLinear(tt.db), tt.linear, 1e-12),
			"DbToLinear(%v)", tt.db)
	}
}

func TestLinearToDbRoundTrip(t *testing.T) {
	for _, db := range []float64{-50, -3, 0, 2.5, 17.5, 30, 46} {
		got, err := LinearToDb(DbToLinear(db))
		require.NoError(t, err)
		assert.True(t, floats.EqualWithinAbs(got, db, 1e-9), "round trip %v -> %v", db, got)
	}
}

func TestLinearToDbDomainError(t *testing.T) {
	for _, linear := range []float64{0, -1, -1e9} {
		_, err := LinearToDb(linear)
		require.Error(t, err, "LinearToDb(%v)", linear)
		var derr *DomainError
		assert.True(t, errors.As(err, &derr))
	}
}

func TestDbmWattAnchors(t *testing.T) {
	assert.True(t, floats.EqualWithinRel(DbmToW(30), 1.0, 1e-12))
	assert.True(t, floats.EqualWithinRel(DbmToW(0), 0.001, 1e-12))

	got, err := WToDbm(1.0)
	require.NoError(t, err)
	assert.True(t, floats.EqualWithinAbs(got, 30, 1e-9))
}

func TestDbmWattRoundTrip(t *testing.T) {
	for _, dbm := range []float64{-121.45, -104.5, 0, 23, 46} {
		got, err := WToDbm(DbmToW(dbm))
		require.NoError(t, err)
		assert.True(t, floats.EqualWithinAbs(got, dbm, 1e-9), "round trip %v -> %v", dbm, got)
	}
}

func TestWToDbmDomainError(t *testing.T) {
	for _, w := range []float64{0, -0.5} {
		_, err := WToDbm(w)
		require.Error(t, err, "WToDbm(%v)", w)
	}
}
