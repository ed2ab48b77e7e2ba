// Package feed drives the four fixture streams (quotes, trades, book
// snapshots and inquiries) over the security universe, formatting
// every computed price into the canonical handle-32nds-256ths notation
// before handing each record to its sink.
package feed

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/efreitasn/bondfeed/internal/config"
	"github.com/efreitasn/bondfeed/internal/domain"
	"github.com/efreitasn/bondfeed/internal/sink"
)

// Output file names. Fixed: the downstream consumers load fixtures by
// these exact names.
const (
	QuotesFile    = "prices.txt"
	TradesFile    = "trades.txt"
	BooksFile     = "marketdata.txt"
	InquiriesFile = "inquiries.txt"
	ManifestFile  = "manifest.yaml"
)

// RecordWriter is the destination for one stream's records.
// *sink.LineSink satisfies it; tests use an in-memory recorder.
type RecordWriter interface {
	WriteRecord(fields ...string) error
}

// Generator produces the four fixture streams for one run. It is not safe
// for concurrent use; streams are generated strictly one after another.
type Generator struct {
	cfg      *config.Config
	universe []domain.Security
	rng      Rand
	log      zerolog.Logger
	runID    string
}

// New constructs a Generator from its configuration, the security
// universe to emit records for, the random source and a logger. Each
// Generator carries a fresh run ID, recorded in logs and the manifest.
func New(cfg *config.Config, universe []domain.Security, rng Rand, log zerolog.Logger) *Generator {
	return &Generator{
		cfg:      cfg,
		universe: universe,
		rng:      rng,
		log:      log,
		runID:    uuid.New().String(),
	}
}

// RunID returns the identifier of this generation run.
func (g *Generator) RunID() string {
	return g.runID
}

// stream couples an output file with its producer and volume.
type stream struct {
	name       string
	file       string
	iterations int
	write      func(RecordWriter, int) error
}

func (g *Generator) streams() []stream {
	return []stream{
		{name: "quotes", file: QuotesFile, iterations: g.cfg.QuoteCount, write: g.writeQuotes},
		{name: "trades", file: TradesFile, iterations: g.cfg.TradeCount, write: g.writeTrades},
		{name: "marketdata", file: BooksFile, iterations: g.cfg.BookCount, write: g.writeBooks},
		{name: "inquiries", file: InquiriesFile, iterations: g.cfg.InquiryCount, write: g.writeInquiries},
	}
}

// Run generates all four fixture files sequentially, each stream written
// to completion before the next begins, then writes the run manifest. The
// first failure aborts the run.
func (g *Generator) Run() error {
	if err := os.MkdirAll(g.cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("create output dir %s: %w", g.cfg.OutputDir, err)
	}
	files := make([]string, 0, 4)
	for _, st := range g.streams() {
		if err := g.generate(st); err != nil {
			return err
		}
		files = append(files, st.file)
	}
	return g.writeManifest(files)
}

// Generate produces a single named stream (quotes, trades, marketdata or
// inquiries) without writing a manifest.
func (g *Generator) Generate(name string) error {
	for _, st := range g.streams() {
		if st.name != name {
			continue
		}
		if err := os.MkdirAll(g.cfg.OutputDir, 0o755); err != nil {
			return fmt.Errorf("create output dir %s: %w", g.cfg.OutputDir, err)
		}
		return g.generate(st)
	}
	return fmt.Errorf("unknown stream %q", name)
}

// generate writes one stream to its file. The sink is always closed, and
// a close failure surfaces when generation itself succeeded.
func (g *Generator) generate(st stream) (err error) {
	path := filepath.Join(g.cfg.OutputDir, st.file)
	s, err := sink.Open(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := s.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	g.log.Info().
		Str("run_id", g.runID).
		Str("stream", st.name).
		Str("path", path).
		Int("iterations", st.iterations).
		Msg("generating stream")

	if err := st.write(s, st.iterations); err != nil {
		return fmt.Errorf("generate %s: %w", st.name, err)
	}

	g.log.Info().
		Str("stream", st.name).
		Int("records", st.iterations*len(g.universe)).
		Msg("stream complete")
	return nil
}

// manifest is the provenance record written alongside the fixtures so
// downstream test harnesses can assert where a data set came from.
type manifest struct {
	RunID  string         `yaml:"run_id"`
	Seed   int64          `yaml:"seed"`
	Counts map[string]int `yaml:"counts"`
	Files  []string       `yaml:"files"`
}

func (g *Generator) writeManifest(files []string) error {
	m := manifest{
		RunID: g.runID,
		Seed:  g.cfg.Seed,
		Counts: map[string]int{
			"quotes":     g.cfg.QuoteCount,
			"trades":     g.cfg.TradeCount,
			"marketdata": g.cfg.BookCount,
			"inquiries":  g.cfg.InquiryCount,
		},
		Files: files,
	}
	data, err := yaml.Marshal(&m)
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}
	path := filepath.Join(g.cfg.OutputDir, ManifestFile)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	return nil
}
