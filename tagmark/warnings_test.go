package tagmark

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func collector(t *testing.T, policy WarningOverflowPolicy, capacity int) *Warnings {
	t.Helper()
	w, err := NewWarnings(policy, capacity)
	require.NoError(t, err)
	return &w
}

func unknownAt(pos int) Warning {
	return Warning{Issue: IssueUnknownTag, Span: Span{pos, pos + 1}}
}

func TestNewWarnings_NegativeCapacity(t *testing.T) {
	_, err := NewWarnings(WarnOverflowDrop, -1)

	var ce *ConfigError
	require.ErrorAs(t, err, &ce)
	require.Equal(t, IssueNegativeWarningsCap, ce.Issue)
}

func TestWarnings_Policies(t *testing.T) {
	tests := []struct {
		name       string
		policy     WarningOverflowPolicy
		capacity   int
		adds       int
		wantLen    int
		overflowed bool
		dropped    int
		dropStart  int
	}{
		{name: "no_rec", policy: WarnOverflowNoRec, capacity: 3, adds: 5},
		{name: "no_cap", policy: WarnOverflowNoCap, capacity: 2, adds: 10, wantLen: 10},
		{name: "drop_under_capacity", policy: WarnOverflowDrop, capacity: 3, adds: 3, wantLen: 3},
		{name: "drop", policy: WarnOverflowDrop, capacity: 3, adds: 5, wantLen: 3, overflowed: true, dropStart: 3},
		{name: "trunc", policy: WarnOverflowTrunc, capacity: 3, adds: 5, wantLen: 3, overflowed: true, dropped: 3, dropStart: 2},
		{name: "trunc_zero_capacity", policy: WarnOverflowTrunc, capacity: 0, adds: 2, overflowed: true, dropped: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := collector(t, tt.policy, tt.capacity)

			for i := range tt.adds {
				w.Add(unknownAt(i))
			}

			require.Len(t, w.List(), tt.wantLen)
			require.Equal(t, tt.overflowed, w.Overflowed())
			require.Equal(t, tt.dropped, w.Dropped())
			require.Equal(t, tt.dropStart, w.DropStart())
		})
	}
}

func TestWarnings_TruncMarker(t *testing.T) {
	w := collector(t, WarnOverflowTrunc, 2)
	w.Add(unknownAt(0))
	w.Add(unknownAt(4))

	list := w.List()
	require.Len(t, list, 2)
	require.Equal(t, IssueUnknownTag, list[0].Issue)
	require.Equal(t, IssueWarningsTruncated, list[1].Issue)
	require.Equal(t, Span{4, 4}, list[1].Span)
}

func TestWarnings_NilReceiver(t *testing.T) {
	var w *Warnings
	require.NotPanics(t, func() {
		w.Add(unknownAt(0))
		w.addf(IssueUnknownTag, Span{}, "x")
	})
}

func TestParse_WarningsAreCapped(t *testing.T) {
	p, _ := newTestParser(t, WithLimits(Limits{MaxWarnings: 2}))

	w := collector(t, WarnOverflowTrunc, p.Limits().MaxWarnings)
	_, err := p.ParseTree("<x><y><z></q>", nil, w)
	require.NoError(t, err)

	require.Len(t, w.List(), 2)
	require.Equal(t, 3, w.Dropped())
}

func TestIssueString(t *testing.T) {
	require.Equal(t, "Close Order", IssueCloseOrder.String())
	require.Equal(t, "Unknown Issue", Issue(-1).String())

	b, err := IssueUnknownTag.MarshalText()
	require.NoError(t, err)
	require.Equal(t, "Unknown Tag", string(b))
}
