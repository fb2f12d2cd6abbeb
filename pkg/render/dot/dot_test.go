package dot

import (
	"context"
	"strings"
	"testing"

	"github.com/chainscope/chainscope/pkg/layout"
	"github.com/chainscope/chainscope/pkg/trace"
)

func TestToDOT(t *testing.T) {
	txs := []trace.Transaction{
		{TxID: "tx-1", From: "0xfocal", To: "0xalice"},
		{TxID: "tx-2", From: "0xbob", To: "0xfocal"},
	}
	l := layout.Compute("0xfocal", txs, 800, 600)

	dot := ToDOT(&l)

	for _, want := range []string{
		"graph trace {",
		`"0xfocal" [label="0xfocal", shape=doublecircle`,
		`"0xalice" [label="0xalice"];`,
		`"0xbob" [label="0xbob"];`,
		`"0xfocal" -- "0xalice";`,
		`"0xbob" -- "0xfocal";`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q:\n%s", want, dot)
		}
	}
}

func TestToDOT_ElidesLongAddresses(t *testing.T) {
	long := "0x742d35Cc6634C0532925a3b844Bc"
	l := layout.Compute(long, nil, 800, 600)

	dot := ToDOT(&l)

	if !strings.Contains(dot, trace.ElideAddress(long)) {
		t.Errorf("DOT does not contain elided label %q:\n%s", trace.ElideAddress(long), dot)
	}
}

func TestToDOT_UnsampledEndpointCollapsesToCenter(t *testing.T) {
	var txs []trace.Transaction
	for i := 0; i < layout.MaxPeers; i++ {
		txs = append(txs, trace.Transaction{From: "0xfocal", To: strings.Repeat("p", 4) + string(rune('a'+i))})
	}
	txs = append(txs, trace.Transaction{From: "0xfocal", To: "overflow"})
	l := layout.Compute("0xfocal", txs, 800, 600)

	dot := ToDOT(&l)

	if strings.Contains(dot, "overflow") {
		t.Errorf("unsampled endpoint leaked into DOT:\n%s", dot)
	}
	if !strings.Contains(dot, `"0xfocal" -- "0xfocal";`) {
		t.Errorf("overflow edge did not collapse to center:\n%s", dot)
	}
}

func TestRenderSVG(t *testing.T) {
	txs := []trace.Transaction{
		{TxID: "tx-1", From: "0xfocal", To: "0xalice"},
	}
	l := layout.Compute("0xfocal", txs, 800, 600)

	svg, err := RenderSVG(context.Background(), ToDOT(&l))
	if err != nil {
		t.Fatalf("RenderSVG() error: %v", err)
	}

	if !strings.Contains(string(svg), "<svg") {
		t.Error("RenderSVG() output missing <svg> tag")
	}
}

func TestRenderSVG_InvalidDOT(t *testing.T) {
	_, err := RenderSVG(context.Background(), `not valid DOT {{{`)
	if err == nil {
		t.Error("RenderSVG() should return error for invalid DOT")
	}
}
