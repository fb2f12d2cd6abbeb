package trace

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/chainscope/chainscope/pkg/errors"
)

// =============================================================================
// Transaction - Single Transfer
// =============================================================================

// Transaction represents one transfer between two addresses.
// Transactions are supplied by the collaborator service and never mutated.
type Transaction struct {
	TxID      string    `json:"txid"`
	From      string    `json:"from_address"`
	To        string    `json:"to_address"`
	Amount    float64   `json:"amount"`
	Symbol    string    `json:"symbol"`
	Flags     []string  `json:"flags,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// =============================================================================
// Result - Address Trace
// =============================================================================

// Result is the trace of an address's transaction neighborhood as returned
// by the collaborator service. Either the data fields or ErrorMsg is set,
// never both.
type Result struct {
	Address      string        `json:"address"`
	Chain        string        `json:"chain,omitempty"`
	RiskScore    float64       `json:"risk_score"`
	Flags        []string      `json:"flags,omitempty"`
	Transactions []Transaction `json:"transactions"`
	ErrorMsg     string        `json:"error,omitempty"`
}

// Err returns a structured error if the collaborator reported a failure,
// or nil for a successful trace.
func (r *Result) Err() error {
	if r.ErrorMsg == "" {
		return nil
	}
	return errors.New(errors.ErrCodeTraceFailed, "%s", r.ErrorMsg)
}

// =============================================================================
// Report - Generated Risk Report
// =============================================================================

// Report is a generated risk report for an address.
type Report struct {
	Address     string        `json:"address"`
	Chain       string        `json:"chain"`
	RiskScore   float64       `json:"risk_score"`
	Summary     string        `json:"summary"`
	Details     ReportDetails `json:"details"`
	GeneratedAt time.Time     `json:"generated_at"`
}

// ReportDetails holds the report body fields beyond the summary.
type ReportDetails struct {
	Recommendation string `json:"recommendation"`
}

// =============================================================================
// Result Serialization API
// =============================================================================

// MarshalResult serializes a Result to pretty-printed JSON bytes.
func MarshalResult(r Result) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeResultTo(r, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalResult deserializes JSON bytes into a Result.
func UnmarshalResult(data []byte) (Result, error) {
	var r Result
	if err := json.Unmarshal(data, &r); err != nil {
		return Result{}, fmt.Errorf("unmarshal trace result: %w", err)
	}
	return r, nil
}

// WriteResultFile writes a Result to a JSON file.
// The file is created with 0644 permissions.
func WriteResultFile(r Result, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return writeResultTo(r, f)
}

// ReadResultFile reads a JSON file and returns the decoded Result.
func ReadResultFile(path string) (Result, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Result{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "trace file %s does not exist", path)
	}
	if err != nil {
		return Result{}, fmt.Errorf("read %s: %w", path, err)
	}
	return UnmarshalResult(data)
}

// WriteResult writes a Result as JSON to an io.Writer.
func WriteResult(r Result, w io.Writer) error {
	return writeResultTo(r, w)
}

func writeResultTo(r Result, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}
