package feed

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/efreitasn/bondfeed/internal/config"
	"github.com/efreitasn/bondfeed/internal/domain"
)

// recorder is an in-memory RecordWriter for stream tests.
type recorder struct {
	lines []string
}

func (r *recorder) WriteRecord(fields ...string) error {
	r.lines = append(r.lines, strings.Join(fields, ","))
	return nil
}

// stubRand returns canned values round-robin, so stream tests are exact.
type stubRand struct {
	vals []int
	n    int
}

func (s *stubRand) Intn(n int) int {
	v := s.vals[s.n%len(s.vals)]
	s.n++
	return v % n
}

// newTestGenerator builds a Generator over the full universe with a
// deterministic RNG and silent logging.
func newTestGenerator(t *testing.T, cfg *config.Config, rng Rand) *Generator {
	t.Helper()
	if rng == nil {
		rng = &stubRand{vals: []int{0}}
	}
	return New(cfg, domain.Universe(), rng, zerolog.Nop())
}

func TestRunProducesAllFilesAndManifest(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	cfg.OutputDir = filepath.Join(dir, "data")
	cfg.QuoteCount = 3
	cfg.TradeCount = 2
	cfg.BookCount = 3
	cfg.InquiryCount = 2
	cfg.Seed = 42

	gen := New(cfg, domain.Universe(), NewRand(cfg.Seed), zerolog.Nop())
	require.NoError(t, gen.Run())

	for file, wantLines := range map[string]int{
		QuotesFile:    3 * 7,
		TradesFile:    2 * 7,
		BooksFile:     3 * 7,
		InquiriesFile: 2 * 7,
	} {
		data, err := os.ReadFile(filepath.Join(cfg.OutputDir, file))
		require.NoError(t, err, file)
		lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
		assert.Len(t, lines, wantLines, file)
	}

	data, err := os.ReadFile(filepath.Join(cfg.OutputDir, ManifestFile))
	require.NoError(t, err)
	var m manifest
	require.NoError(t, yaml.Unmarshal(data, &m))
	assert.Equal(t, gen.RunID(), m.RunID)
	assert.Equal(t, int64(42), m.Seed)
	assert.Equal(t, 3, m.Counts["quotes"])
	assert.Equal(t, 2, m.Counts["trades"])
	assert.ElementsMatch(t, []string{QuotesFile, TradesFile, BooksFile, InquiriesFile}, m.Files)
}

func TestRunIsReproducibleUnderFixedSeed(t *testing.T) {
	read := func(dir string) string {
		t.Helper()
		cfg := config.Default()
		cfg.OutputDir = dir
		cfg.QuoteCount = 5
		cfg.TradeCount = 5
		cfg.BookCount = 5
		cfg.InquiryCount = 5
		cfg.Seed = 7

		gen := New(cfg, domain.Universe(), NewRand(cfg.Seed), zerolog.Nop())
		require.NoError(t, gen.Run())

		var all strings.Builder
		for _, file := range []string{QuotesFile, TradesFile, BooksFile, InquiriesFile} {
			data, err := os.ReadFile(filepath.Join(dir, file))
			require.NoError(t, err)
			all.Write(data)
		}
		return all.String()
	}

	first := read(t.TempDir())
	second := read(t.TempDir())
	assert.Equal(t, first, second)
}

func TestGenerateSingleStream(t *testing.T) {
	cfg := config.Default()
	cfg.OutputDir = t.TempDir()
	cfg.QuoteCount = 1

	gen := newTestGenerator(t, cfg, nil)
	require.NoError(t, gen.Generate("quotes"))

	_, err := os.Stat(filepath.Join(cfg.OutputDir, QuotesFile))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(cfg.OutputDir, TradesFile))
	assert.True(t, os.IsNotExist(err), "trades file should not exist")
	_, err = os.Stat(filepath.Join(cfg.OutputDir, ManifestFile))
	assert.True(t, os.IsNotExist(err), "manifest should not exist for a single stream")
}

func TestGenerateUnknownStream(t *testing.T) {
	cfg := config.Default()
	cfg.OutputDir = t.TempDir()

	gen := newTestGenerator(t, cfg, nil)
	assert.Error(t, gen.Generate("bonds"))
}

func TestRunFailsOnUnwritableOutputDir(t *testing.T) {
	dir := t.TempDir()
	// A file where the output directory should be makes MkdirAll fail.
	blocked := filepath.Join(dir, "data")
	require.NoError(t, os.WriteFile(blocked, []byte("in the way"), 0o644))

	cfg := config.Default()
	cfg.OutputDir = blocked
	cfg.QuoteCount = 1

	gen := newTestGenerator(t, cfg, nil)
	assert.Error(t, gen.Run())
}
