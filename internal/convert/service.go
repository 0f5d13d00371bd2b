package convert

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/ledgerkit/ing2qif/internal/config"
	"github.com/ledgerkit/ing2qif/internal/importer"
	"github.com/ledgerkit/ing2qif/internal/qif"
)

// Service converts bank exports on disk into QIF documents.
type Service struct {
	cfg      *config.Config
	registry *importer.Registry
	logger   *log.Logger
}

// NewService creates a conversion Service.
func NewService(cfg *config.Config, registry *importer.Registry, logger *log.Logger) *Service {
	return &Service{cfg: cfg, registry: registry, logger: logger}
}

// Params holds the parameters of a conversion run.
type Params struct {
	Input  string // export file or directory of exports
	Output string // explicit output path, single file input only
	Window qif.Window
	DryRun bool      // write documents to Stdout instead of disk
	Stdout io.Writer // used by DryRun
}

// Result describes one converted file.
type Result struct {
	Input  string
	Output string // empty on dry run
	Totals qif.Totals
}

// Build reads the export at path and assembles the entries inside win.
func (s *Service) Build(path string, win qif.Window) (*qif.Document, error) {
	parser := s.registry.Get(s.cfg.Format)
	if parser == nil {
		return nil, fmt.Errorf("unknown input format %q", s.cfg.Format)
	}
	comma, err := s.cfg.Comma()
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening input: %w", err)
	}
	defer f.Close()

	r, err := importer.Decode(f, s.cfg.Input.Encoding)
	if err != nil {
		return nil, err
	}
	rows, err := parser.Open(r, importer.Options{Comma: comma})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	doc, err := qif.Assemble(rows, s.cfg.Columns, win)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	for _, e := range doc.Entries {
		s.logger.Debug("record", "row", e.Position, "date", e.Date, "amount", e.SignedAmount(), "payee", e.Payee, "memo", e.Memo)
	}
	return doc, nil
}

// Convert converts a single export, or every export in a directory. Files are
// processed in name order and the first failure stops the run; outputs already
// written for earlier files are kept.
func (s *Service) Convert(params Params) ([]Result, error) {
	info, err := os.Stat(params.Input)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	if !info.IsDir() {
		res, err := s.convertFile(params.Input, params.Output, params)
		if err != nil {
			return nil, err
		}
		return []Result{res}, nil
	}

	if params.Output != "" {
		return nil, errors.New("--output cannot be used with a directory input")
	}
	files, err := importer.Scan(params.Input)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		s.logger.Warn("no CSV files found", "dir", params.Input)
		return nil, nil
	}

	results := make([]Result, 0, len(files))
	for _, f := range files {
		s.logger.Debug("input", "file", f.Name, "size", f.Size)
		res, err := s.convertFile(f.Path, "", params)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
	return results, nil
}

func (s *Service) convertFile(input, output string, params Params) (Result, error) {
	doc, err := s.Build(input, params.Window)
	if err != nil {
		return Result{}, err
	}
	res := Result{Input: input}

	if params.DryRun {
		w := params.Stdout
		if w == nil {
			w = os.Stdout
		}
		if _, err := doc.WriteTo(w); err != nil {
			return Result{}, fmt.Errorf("writing document: %w", err)
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return Result{}, fmt.Errorf("writing document: %w", err)
		}
	} else {
		if output == "" {
			output = OutputPath(input, s.cfg.Output.Extension)
		}
		if err := os.WriteFile(output, []byte(doc.Serialize()), 0o644); err != nil {
			return Result{}, fmt.Errorf("writing output: %w", err)
		}
		res.Output = output
	}

	totals, err := doc.Totals()
	if err != nil {
		s.logger.Warn("cannot compute totals", "input", input, "err", err)
		totals = qif.Totals{Count: len(doc.Entries)}
	}
	res.Totals = totals
	s.logger.Info("converted",
		"input", input,
		"output", res.Output,
		"records", totals.Count,
		"credits", totals.Credits.StringFixed(2),
		"debits", totals.Debits.StringFixed(2),
	)
	return res, nil
}

// OutputPath derives the output file name from the input path: a trailing
// ".csv" (any case) is replaced by ext, otherwise ext is appended.
func OutputPath(input, ext string) string {
	if ext == "" {
		ext = ".qif"
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	if strings.EqualFold(filepath.Ext(input), ".csv") {
		return strings.TrimSuffix(input, filepath.Ext(input)) + ext
	}
	return input + ext
}
