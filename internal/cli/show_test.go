package cli

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/roach88/relay/internal/chain"
)

// Golden file locks the chain's rendered form. Regenerate with:
//
//	go test ./internal/cli -update
func TestRenderChainGolden(t *testing.T) {
	entries := []chain.Entry{
		{
			Run:       1,
			Timestamp: "2026-01-02 15:04:05",
			Message:   "i am here. i add: i wonder who comes next.",
			Session:   1,
		},
		{
			Run:       2,
			Timestamp: "2026-01-02 15:05:05",
			Message:   "1 others have passed through. i add: this too will be read.",
			Session:   1,
		},
	}

	buf := &bytes.Buffer{}
	renderChain(buf, entries)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "show_chain", buf.Bytes())
}

func TestRenderChainEmpty(t *testing.T) {
	buf := &bytes.Buffer{}
	renderChain(buf, nil)
	if buf.Len() != 0 {
		t.Fatalf("expected no output for empty chain, got %q", buf.String())
	}
}
