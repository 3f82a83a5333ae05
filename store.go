package clerk

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// snapshotTimeFormat stamps the snapshot copy written next to every
// canonical file.
const snapshotTimeFormat = "2006-01-02-15_04_05"

// Store is the persistence gateway: it reads and writes the data tables
// under a single data directory. Every write rewrites the canonical file
// and drops a timestamped snapshot copy alongside it, preserving history
// for audit.
type Store struct {
	dir string
	now func() time.Time
}

// NewStore creates a store rooted at the given data directory.
func NewStore(dir string) *Store {
	return &Store{dir: dir, now: time.Now}
}

// Dir returns the data directory the store is rooted at.
func (s *Store) Dir() string { return s.dir }

// Path returns the canonical file path of a dataset.
func (s *Store) Path(ds Dataset) string {
	return filepath.Join(s.dir, ds.Filename())
}

// snapshotPath returns the timestamped sibling of the canonical file.
func (s *Store) snapshotPath(ds Dataset, at time.Time) string {
	name := ds.Filename()
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	return filepath.Join(s.dir, stem+"_"+at.Format(snapshotTimeFormat)+ext)
}

// CheckFiles verifies that the data directory exists and holds every
// canonical data file. The returned error lists what is missing.
func (s *Store) CheckFiles() error {
	info, err := os.Stat(s.dir)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("%q is not a valid directory", s.dir)
	}
	var missing []string
	for _, ds := range AllDatasets() {
		if _, err := os.Stat(s.Path(ds)); err != nil {
			missing = append(missing, s.Path(ds))
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing data files: %s", strings.Join(missing, ", "))
	}
	return nil
}

// LoadLedger reads the assets table.
func (s *Store) LoadLedger() (*Ledger, error) {
	f, err := os.Open(s.Path(DatasetAssets))
	if err != nil {
		return nil, fmt.Errorf("cannot open assets table: %w", err)
	}
	defer f.Close()
	return DecodeAssets(f)
}

// LoadLog reads the transactions table.
func (s *Store) LoadLog() (*TransactionLog, error) {
	f, err := os.Open(s.Path(DatasetTransactions))
	if err != nil {
		return nil, fmt.Errorf("cannot open transactions table: %w", err)
	}
	defer f.Close()
	return DecodeRecords(f)
}

// LoadTable reads a dataset's canonical file and returns its rows, header
// excluded, as raw string cells in file order.
func (s *Store) LoadTable(ds Dataset) ([][]string, error) {
	f, err := os.Open(s.Path(ds))
	if err != nil {
		return nil, fmt.Errorf("cannot open %s table: %w", ds, err)
	}
	defer f.Close()
	return readTable(f, ds)
}

// SaveLedger writes the assets table, snapshot included.
func (s *Store) SaveLedger(l *Ledger) error {
	return s.SaveTable(DatasetAssets, func(w io.Writer) error { return EncodeAssets(w, l) })
}

// SaveLog writes the transactions table, snapshot included.
func (s *Store) SaveLog(log *TransactionLog) error {
	return s.SaveTable(DatasetTransactions, func(w io.Writer) error { return EncodeRecords(w, log) })
}

// SaveTable encodes a table once and writes it to both the canonical file
// and a timestamped snapshot. The canonical file is written last so the
// snapshot is already on disk when it is replaced.
func (s *Store) SaveTable(ds Dataset, encode func(io.Writer) error) error {
	var buf bytes.Buffer
	if err := encode(&buf); err != nil {
		return fmt.Errorf("cannot encode %s table: %w", ds, err)
	}
	snapshot := s.snapshotPath(ds, s.now())
	if err := os.WriteFile(snapshot, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("cannot write snapshot %q: %w", snapshot, err)
	}
	canonical := s.Path(ds)
	if err := os.WriteFile(canonical, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("cannot write %q: %w", canonical, err)
	}
	return nil
}
