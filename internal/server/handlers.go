package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/leapstack-labs/js2py/internal/state"
	"github.com/leapstack-labs/js2py/pkg/ast"
	"github.com/leapstack-labs/js2py/pkg/jsparse"
	"github.com/leapstack-labs/js2py/pkg/source"
	"github.com/leapstack-labs/js2py/pkg/translate"
	"github.com/starfederation/datastar-go/datastar"
)

// Handlers provides HTTP handlers for the translation service.
type Handlers struct {
	translator translate.Translator
	store      state.Store
	events     *RunEvents
	maxBody    int64
	logger     *slog.Logger
}

// NewHandlers creates a new Handlers instance. store and events may be nil.
func NewHandlers(tr translate.Translator, store state.Store, events *RunEvents, maxBody int64, logger *slog.Logger) *Handlers {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Handlers{translator: tr, store: store, events: events, maxBody: maxBody, logger: logger}
}

// TranslateResponse is the success body of POST /translate.
type TranslateResponse struct {
	Code string `json:"code"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error  string    `json:"error"`
	Kind   string    `json:"kind,omitempty"`
	Source string    `json:"source,omitempty"`
	Span   *ast.Span `json:"span,omitempty"`
	Line   int       `json:"line,omitempty"`
	Column int       `json:"column,omitempty"`
}

// CheckDiagnostic is a diagnostic with its resolved position.
type CheckDiagnostic struct {
	translate.Diagnostic
	Line   int `json:"line"`
	Column int `json:"column"`
}

// CheckResponse is the body of POST /check.
type CheckResponse struct {
	Diagnostics []CheckDiagnostic `json:"diagnostics"`
}

// Healthz reports liveness.
func (h *Handlers) Healthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// Translate translates the request body. Query parameters: indent=N
// overrides the indent width, lang=ts strips TypeScript syntax first.
func (h *Handlers) Translate(w http.ResponseWriter, r *http.Request) {
	tr, prog, ok := h.parseRequest(w, r)
	if !ok {
		return
	}

	code, err := tr.Build(prog)
	if err != nil {
		h.logger.Debug("translation rejected", "error", err)
		writeJSON(w, http.StatusUnprocessableEntity, translationError(err))
		return
	}

	writeJSON(w, http.StatusOK, TranslateResponse{Code: code})
}

// Check returns every diagnostic for the request body.
func (h *Handlers) Check(w http.ResponseWriter, r *http.Request) {
	tr, prog, ok := h.parseRequest(w, r)
	if !ok {
		return
	}

	file := source.NewFile("request", prog.SourceText)
	resp := CheckResponse{Diagnostics: []CheckDiagnostic{}}
	for _, d := range tr.Check(prog) {
		pos := file.Position(d.Span.Start)
		resp.Diagnostics = append(resp.Diagnostics, CheckDiagnostic{
			Diagnostic: d,
			Line:       pos.Line,
			Column:     pos.Column,
		})
	}

	writeJSON(w, http.StatusOK, resp)
}

// LatestRun returns the most recent build run.
func (h *Handlers) LatestRun(w http.ResponseWriter, r *http.Request) {
	if !h.requireStore(w) {
		return
	}
	run, err := h.store.GetLatestRun(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	if run == nil {
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "no runs recorded"})
		return
	}
	h.writeRun(r.Context(), w, run)
}

// Run returns a build run by ID along with its files.
func (h *Handlers) Run(w http.ResponseWriter, r *http.Request) {
	if !h.requireStore(w) {
		return
	}
	run, err := h.store.GetRun(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}
	h.writeRun(r.Context(), w, run)
}

// RunSignals is the signal patch sent on the run event stream.
type RunSignals struct {
	LatestRun *state.Run `json:"latestRun"`
}

// RunStream pushes each finished build run to the client as a datastar
// signal patch until the request ends.
func (h *Handlers) RunStream(w http.ResponseWriter, r *http.Request) {
	if h.events == nil {
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "run events are not enabled"})
		return
	}
	if !h.requireStore(w) {
		return
	}

	updates := h.events.Subscribe()
	defer h.events.Unsubscribe(updates)

	ctx := r.Context()
	sse := datastar.NewSSE(w, r)

	for {
		select {
		case <-ctx.Done():
			return
		case id, ok := <-updates:
			if !ok {
				return
			}
			run, err := h.store.GetRun(ctx, id)
			if err != nil {
				h.logger.Warn("failed to load run", "run_id", id, "error", err)
				_ = sse.ConsoleError(err)
				continue
			}
			if err := sse.MarshalAndPatchSignals(RunSignals{LatestRun: run}); err != nil {
				h.logger.Debug("run stream closed", "error", err)
				return
			}
		}
	}
}

// RunResponse is a build run with its per-file outcomes.
type RunResponse struct {
	*state.Run
	Files []*state.RunFile `json:"files"`
}

func (h *Handlers) writeRun(ctx context.Context, w http.ResponseWriter, run *state.Run) {
	files, err := h.store.ListRunFiles(ctx, run.ID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	if files == nil {
		files = []*state.RunFile{}
	}
	writeJSON(w, http.StatusOK, RunResponse{Run: run, Files: files})
}

func (h *Handlers) requireStore(w http.ResponseWriter) bool {
	if h.store == nil {
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "build state is not available"})
		return false
	}
	return true
}

// parseRequest reads and parses the body, writing an error response on failure.
func (h *Handlers) parseRequest(w http.ResponseWriter, r *http.Request) (translate.Translator, *ast.Program, bool) {
	tr := h.translator
	if v := r.URL.Query().Get("indent"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 16 {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: fmt.Sprintf("invalid indent %q: must be between 1 and 16", v)})
			return tr, nil, false
		}
		tr = tr.WithIndent(n)
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxBody))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSON(w, http.StatusRequestEntityTooLarge, ErrorResponse{Error: fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit)})
			return tr, nil, false
		}
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "failed to read request body"})
		return tr, nil, false
	}

	src := string(body)
	if lang := strings.ToLower(r.URL.Query().Get("lang")); lang == "ts" || lang == "typescript" {
		if src, err = jsparse.StripTypes("request.ts", src); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return tr, nil, false
		}
	}

	prog, err := jsparse.ParseContext(r.Context(), src)
	if err != nil {
		resp := ErrorResponse{Error: err.Error()}
		var syn *jsparse.SyntaxError
		if errors.As(err, &syn) {
			resp.Line, resp.Column = syn.Line, syn.Column
		}
		writeJSON(w, http.StatusBadRequest, resp)
		return tr, nil, false
	}

	return tr, prog, true
}

func translationError(err error) ErrorResponse {
	resp := ErrorResponse{Error: err.Error()}

	var unsupported *translate.UnsupportedConstructError
	var missing *translate.MissingRequiredOperandError
	var target *translate.InvalidAssignmentTargetError
	switch {
	case errors.As(err, &unsupported):
		resp.Kind, resp.Source = unsupported.Kind, unsupported.Source
	case errors.As(err, &missing):
		resp.Kind = missing.Context
	case errors.As(err, &target):
		resp.Kind = target.Kind
	}
	if span, ok := translate.ErrorSpan(err); ok {
		resp.Span = &span
	}
	return resp
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
