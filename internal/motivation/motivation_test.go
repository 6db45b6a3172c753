package motivation_test

import (
	"math/rand/v2"
	"testing"

	"github.com/rpggio/taskboard/internal/motivation"
	"github.com/stretchr/testify/require"
)

func TestBandFor_Boundaries(t *testing.T) {
	cases := []struct {
		rate int
		want motivation.Band
	}{
		{0, motivation.BandNotStarted},
		{1, motivation.BandStarted},
		{24, motivation.BandStarted},
		{25, motivation.BandOnTheWay},
		{49, motivation.BandOnTheWay},
		{50, motivation.BandPastHalfway},
		{74, motivation.BandPastHalfway},
		{75, motivation.BandAlmostDone},
		{99, motivation.BandAlmostDone},
		{100, motivation.BandComplete},
		{-5, motivation.BandNotStarted},
		{150, motivation.BandComplete},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, motivation.BandFor(tc.rate), "rate %d", tc.rate)
	}
}

func TestProgressMessage(t *testing.T) {
	require.Contains(t, motivation.ProgressMessage(0), "get started")
	require.Contains(t, motivation.ProgressMessage(50), "More than halfway")
	require.Contains(t, motivation.ProgressMessage(100), "Congratulations")

	seen := map[string]bool{}
	for _, rate := range []int{0, 10, 30, 60, 80, 100} {
		seen[motivation.ProgressMessage(rate)] = true
	}
	require.Len(t, seen, 6, "each band has a distinct message")
}

func TestBand_MarshalText(t *testing.T) {
	text, err := motivation.BandPastHalfway.MarshalText()
	require.NoError(t, err)
	require.Equal(t, "past_halfway", string(text))
	require.Equal(t, "unknown", motivation.Band(42).String())
	require.Empty(t, motivation.Band(42).Message())
}

func TestTipAt_Wraps(t *testing.T) {
	n := motivation.TipCount()
	require.Equal(t, 8, n)
	require.Equal(t, motivation.TipAt(0), motivation.TipAt(n))
	require.Equal(t, motivation.TipAt(n-1), motivation.TipAt(-1))
	require.Equal(t, "The Two-Minute Rule", motivation.TipAt(0).Title)
	require.Equal(t, "Batch Similar Tasks", motivation.TipAt(-1).Title)
}

func TestRandomPicksAreReproducible(t *testing.T) {
	a := rand.New(rand.NewPCG(1, 2))
	b := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 5; i++ {
		require.Equal(t, motivation.RandomQuote(a), motivation.RandomQuote(b))
		require.Equal(t, motivation.RandomAffirmation(a), motivation.RandomAffirmation(b))
	}
	require.Len(t, motivation.Quotes(), 10)
}
