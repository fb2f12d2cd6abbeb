package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	cserrors "github.com/chainscope/chainscope/pkg/errors"
	"github.com/chainscope/chainscope/pkg/pipeline"
	"github.com/chainscope/chainscope/pkg/risk"
)

// handleHealth reports service liveness.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleGraph renders the transaction graph for an address in one format.
func (s *Server) handleGraph(format, contentType string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		opts, err := s.optionsFromRequest(r, format)
		if err != nil {
			writeError(w, err)
			return
		}

		result, err := s.runner.Execute(r.Context(), opts)
		if err != nil {
			writeError(w, err)
			return
		}

		w.Header().Set("Content-Type", contentType)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(result.Artifacts[format])
	}
}

// riskResponse is the JSON body returned by the risk endpoint.
type riskResponse struct {
	Address string   `json:"address"`
	Chain   string   `json:"chain"`
	Score   float64  `json:"score"`
	Tier    string   `json:"tier"`
	Color   string   `json:"color"`
	Flags   []string `json:"flags,omitempty"`
}

// handleRisk returns the classified risk tier for an address without
// rendering a graph.
func (s *Server) handleRisk(w http.ResponseWriter, r *http.Request) {
	chain := chi.URLParam(r, "chain")
	address := chi.URLParam(r, "address")

	tr, err := s.runner.Fetcher.FetchTrace(r.Context(), chain, address, r.URL.Query().Get("refresh") == "true")
	if err != nil {
		writeError(w, err)
		return
	}

	tier := risk.Classify(tr.RiskScore)
	writeJSON(w, http.StatusOK, riskResponse{
		Address: tr.Address,
		Chain:   chain,
		Score:   tr.RiskScore,
		Tier:    tier.Label(),
		Color:   tier.Color(),
		Flags:   tr.Flags,
	})
}

// optionsFromRequest builds pipeline options from URL and query parameters.
func (s *Server) optionsFromRequest(r *http.Request, format string) (pipeline.Options, error) {
	opts := pipeline.Options{
		Chain:   chi.URLParam(r, "chain"),
		Address: chi.URLParam(r, "address"),
		Formats: []string{format},
		Refresh: r.URL.Query().Get("refresh") == "true",
		Logger:  s.logger,
	}

	var err error
	if opts.Width, err = floatParam(r, "width"); err != nil {
		return opts, err
	}
	if opts.Height, err = floatParam(r, "height"); err != nil {
		return opts, err
	}
	if opts.Scale, err = floatParam(r, "scale"); err != nil {
		return opts, err
	}
	return opts, opts.ValidateAndSetDefaults()
}

// floatParam parses an optional float query parameter. Absent returns zero.
func floatParam(r *http.Request, name string) (float64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v <= 0 {
		return 0, cserrors.New(cserrors.ErrCodeInvalidInput, "invalid %s parameter", name)
	}
	return v, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps structured error codes to HTTP status codes.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch cserrors.GetCode(err) {
	case cserrors.ErrCodeInvalidInput, cserrors.ErrCodeInvalidAddress,
		cserrors.ErrCodeInvalidChain, cserrors.ErrCodeInvalidFormat:
		status = http.StatusBadRequest
	case cserrors.ErrCodeNotFound, cserrors.ErrCodeTraceNotFound:
		status = http.StatusNotFound
	case cserrors.ErrCodeRateLimited:
		status = http.StatusTooManyRequests
	case cserrors.ErrCodeTimeout:
		status = http.StatusGatewayTimeout
	}

	writeJSON(w, status, map[string]string{"error": cserrors.UserMessage(err)})
}
