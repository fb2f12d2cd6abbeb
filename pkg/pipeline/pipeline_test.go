package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"image/png"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	cserrors "github.com/chainscope/chainscope/pkg/errors"
	"github.com/chainscope/chainscope/pkg/layout"
	"github.com/chainscope/chainscope/pkg/render"
	"github.com/chainscope/chainscope/pkg/risk"
	"github.com/chainscope/chainscope/pkg/trace"
)

// fakeFetcher returns a canned trace result without any network access.
type fakeFetcher struct {
	result *trace.Result
	err    error
	calls  int
}

func (f *fakeFetcher) FetchTrace(ctx context.Context, chain, address string, refresh bool) (*trace.Result, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func testTrace() *trace.Result {
	return &trace.Result{
		Address:   "0x1111111111111111111111111111111111111111",
		Chain:     "ethereum",
		RiskScore: 35,
		Transactions: []trace.Transaction{
			{TxID: "aaa", From: "0x1111111111111111111111111111111111111111", To: "0xpeer1", Amount: 1.5, Symbol: "ETH"},
			{TxID: "bbb", From: "0xpeer2", To: "0x1111111111111111111111111111111111111111", Amount: 0.3, Symbol: "ETH"},
		},
	}
}

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}

func TestOptionsValidateAndSetDefaults(t *testing.T) {
	opts := Options{Chain: "ethereum", Address: "0xabc"}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults() error = %v", err)
	}
	if opts.Width != DefaultWidth || opts.Height != DefaultHeight {
		t.Errorf("dimensions = %vx%v, want %vx%v", opts.Width, opts.Height, DefaultWidth, DefaultHeight)
	}
	if opts.Scale != DefaultScale {
		t.Errorf("Scale = %v, want %v", opts.Scale, DefaultScale)
	}
	if len(opts.Formats) != 1 || opts.Formats[0] != FormatPNG {
		t.Errorf("Formats = %v, want [png]", opts.Formats)
	}
}

func TestOptionsValidateErrors(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{"missing chain", Options{Address: "0xabc"}},
		{"missing address", Options{Chain: "ethereum"}},
		{"bad chain", Options{Chain: "Not A Chain", Address: "0xabc"}},
		{"bad format", Options{Chain: "ethereum", Address: "0xabc", Formats: []string{"gif"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.opts.ValidateAndSetDefaults(); err == nil {
				t.Error("ValidateAndSetDefaults() = nil, want error")
			}
		})
	}
}

func TestRunnerExecute(t *testing.T) {
	f := &fakeFetcher{result: testTrace()}
	r := NewRunner(f, quietLogger())

	result, err := r.Execute(context.Background(), Options{
		Chain:   "ethereum",
		Address: "0x1111111111111111111111111111111111111111",
		Formats: []string{FormatPNG, FormatSVG, FormatJSON, FormatDOT},
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if f.calls != 1 {
		t.Errorf("fetcher calls = %d, want 1", f.calls)
	}
	if result.Tier != risk.Moderate {
		t.Errorf("Tier = %v, want Moderate", result.Tier)
	}
	if result.Stats.PeerCount != 2 {
		t.Errorf("PeerCount = %d, want 2", result.Stats.PeerCount)
	}
	if result.Stats.EdgeCount != 2 {
		t.Errorf("EdgeCount = %d, want 2", result.Stats.EdgeCount)
	}
	for _, format := range []string{FormatPNG, FormatSVG, FormatJSON, FormatDOT} {
		if len(result.Artifacts[format]) == 0 {
			t.Errorf("artifact %q is empty", format)
		}
	}
}

func TestRunnerExecutePNGDecodes(t *testing.T) {
	f := &fakeFetcher{result: testTrace()}
	r := NewRunner(f, quietLogger())

	result, err := r.Execute(context.Background(), Options{
		Chain:   "ethereum",
		Address: "0x1111111111111111111111111111111111111111",
		Width:   200,
		Height:  150,
		Scale:   1,
		Formats: []string{FormatPNG},
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	img, err := png.Decode(bytes.NewReader(result.Artifacts[FormatPNG]))
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != 200 || bounds.Dy() != 150 {
		t.Errorf("image size = %dx%d, want 200x150", bounds.Dx(), bounds.Dy())
	}
}

func TestRunnerExecuteJSONRoundtrips(t *testing.T) {
	f := &fakeFetcher{result: testTrace()}
	r := NewRunner(f, quietLogger())

	result, err := r.Execute(context.Background(), Options{
		Chain:   "ethereum",
		Address: "0x1111111111111111111111111111111111111111",
		Formats: []string{FormatJSON},
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	var l layout.Layout
	if err := json.Unmarshal(result.Artifacts[FormatJSON], &l); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	if len(l.Nodes) != len(result.Layout.Nodes) {
		t.Errorf("decoded %d nodes, want %d", len(l.Nodes), len(result.Layout.Nodes))
	}
}

func TestRenderGraphvizSVG(t *testing.T) {
	tr := testTrace()
	l := layout.Compute(tr.Address, tr.Transactions, 400, 300)

	artifacts, err := Render(context.Background(), &l, Options{Formats: []string{FormatDOTSVG}})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !bytes.Contains(artifacts[FormatDOTSVG], []byte("<svg")) {
		t.Error("dot.svg artifact missing <svg> tag")
	}
}

func TestRenderUnknownFormat(t *testing.T) {
	tr := testTrace()
	l := layout.Compute(tr.Address, tr.Transactions, 400, 300)

	_, err := Render(context.Background(), &l, Options{Formats: []string{"gif"}})
	if err == nil {
		t.Fatal("Render() = nil, want error")
	}
	if !cserrors.Is(err, cserrors.ErrCodeUnsupported) {
		t.Errorf("error code = %v, want %v", cserrors.GetCode(err), cserrors.ErrCodeUnsupported)
	}
}

func TestRunnerExecuteFetchError(t *testing.T) {
	f := &fakeFetcher{err: cserrors.New(cserrors.ErrCodeTraceNotFound, "no trace")}
	r := NewRunner(f, quietLogger())

	_, err := r.Execute(context.Background(), Options{
		Chain:   "ethereum",
		Address: "0xmissing",
	})
	if err == nil {
		t.Fatal("Execute() = nil, want error")
	}
	if !strings.Contains(err.Error(), "fetch") {
		t.Errorf("error = %v, want fetch stage wrap", err)
	}
}

// viewRecorder records frames for retained-view tests. Each Clear starts
// a new frame.
type viewRecorder struct {
	w, h   float64
	frames int
	ops    []string
}

func (r *viewRecorder) LogicalSize() (float64, float64) { return r.w, r.h }

func (r *viewRecorder) Clear(color string) {
	r.frames++
	r.ops = r.ops[:0]
	r.ops = append(r.ops, "clear")
}

func (r *viewRecorder) DrawLine(x1, y1, x2, y2 float64, s render.Stroke) {
	r.ops = append(r.ops, "line")
}

func (r *viewRecorder) DrawCircle(x, y, rad float64, s render.FillStroke) {
	r.ops = append(r.ops, fmt.Sprintf("circle (%.1f,%.1f)", x, y))
}

func (r *viewRecorder) DrawText(text string, x, y float64, s render.TextStyle) {
	r.ops = append(r.ops, "text "+text)
}

func TestViewDetachedNoop(t *testing.T) {
	v := NewView()
	v.SetTrace("0xfocal", nil) // must not panic without a surface
	if v.Layout() == nil {
		t.Error("Layout() = nil, want computed layout even when detached")
	}
}

func TestViewRedrawsOnInputChange(t *testing.T) {
	rec := &viewRecorder{w: 400, h: 300}
	v := NewView()
	v.Attach(rec)

	if rec.frames != 0 {
		t.Errorf("frames after attach with no trace = %d, want 0", rec.frames)
	}

	v.SetTrace("0xfocal", []trace.Transaction{
		{TxID: "t1", From: "0xfocal", To: "0xpeer"},
	})
	if rec.frames != 1 {
		t.Fatalf("frames after SetTrace = %d, want 1", rec.frames)
	}

	v.Resize(800, 600)
	if rec.frames != 2 {
		t.Errorf("frames after Resize = %d, want 2", rec.frames)
	}
	if got := v.Layout().Width; got != 800 {
		t.Errorf("layout width after resize = %v, want 800", got)
	}
}

func TestViewResizeIgnoresNonPositive(t *testing.T) {
	v := NewView()
	v.SetTrace("0xfocal", nil)
	before := v.Layout().Width

	v.Resize(0, 100)
	v.Resize(-5, -5)

	if v.Layout().Width != before {
		t.Errorf("width changed after invalid resize: %v", v.Layout().Width)
	}
}

func TestViewAttachAdoptsSurfaceSize(t *testing.T) {
	v := NewView()
	v.SetTrace("0xfocal", nil)

	rec := &viewRecorder{w: 120, h: 90}
	v.Attach(rec)

	if rec.frames != 1 {
		t.Fatalf("frames after attach = %d, want 1", rec.frames)
	}
	if v.Layout().Width != 120 || v.Layout().Height != 90 {
		t.Errorf("layout size = %vx%v, want 120x90", v.Layout().Width, v.Layout().Height)
	}
}
