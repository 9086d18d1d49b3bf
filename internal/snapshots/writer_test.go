package snapshots

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"setpiece-service/internal/domain/takers"
	"setpiece-service/internal/timeutil"
)

func sampleDoc() *takers.Document {
	doc := takers.NewDocument()
	rec := takers.NewClubRecord()
	rec.Penalties = []string{"Saka"}
	rec.CornersIndirectFreeKicks = []string{"Saka", "Ødegaard"}
	doc.Set("Arsenal", rec)
	doc.Set("Chelsea", takers.NewClubRecord())
	return doc
}

func TestWriteTakersSnapshotAndReload(t *testing.T) {
	base := t.TempDir()
	w := NewWriter(base, 14)

	today := timeutil.Today(time.Now())
	if err := w.WriteTakersSnapshot(today, sampleDoc()); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	s := NewFSStore(base)
	doc, err := s.LoadTakers(today)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if got := doc.Clubs(); !reflect.DeepEqual(got, []string{"Arsenal", "Chelsea"}) {
		t.Fatalf("expected club order preserved, got %v", got)
	}
	rec, ok := doc.Get("Arsenal")
	if !ok || !reflect.DeepEqual(rec.CornersIndirectFreeKicks, []string{"Saka", "Ødegaard"}) {
		t.Fatalf("unexpected record %+v", rec)
	}
}

func TestWriteTakersSnapshotIdempotent(t *testing.T) {
	base := t.TempDir()
	w := NewWriter(base, 14)

	today := timeutil.Today(time.Now())
	if err := w.WriteTakersSnapshot(today, sampleDoc()); err != nil {
		t.Fatalf("first write failed: %v", err)
	}
	path := filepath.Join(base, "takers", today+".json")
	first, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read snapshot: %v", err)
	}

	if err := w.WriteTakersSnapshot(today, sampleDoc()); err != nil {
		t.Fatalf("second write failed: %v", err)
	}
	second, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read snapshot: %v", err)
	}
	if string(first) != string(second) {
		t.Fatalf("expected byte-identical snapshot on rewrite")
	}
}

func TestWriteTakersSnapshotValidation(t *testing.T) {
	w := NewWriter(t.TempDir(), 14)
	today := timeutil.Today(time.Now())
	if err := w.WriteTakersSnapshot("", sampleDoc()); err == nil {
		t.Fatalf("expected error for empty date")
	}
	if err := w.WriteTakersSnapshot(today, nil); err == nil {
		t.Fatalf("expected error for nil document")
	}
	var missing *Writer
	if err := missing.WriteTakersSnapshot(today, sampleDoc()); err == nil {
		t.Fatalf("expected error for nil writer")
	}
}

func TestManifestTracksDates(t *testing.T) {
	base := t.TempDir()
	w := NewWriter(base, 14)

	yesterday := timeutil.Today(time.Now().AddDate(0, 0, -1))
	today := timeutil.Today(time.Now())
	if err := w.WriteTakersSnapshot(yesterday, sampleDoc()); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if err := w.WriteTakersSnapshot(today, sampleDoc()); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	m, err := readManifest(filepath.Join(base, "manifest.json"), 14)
	if err != nil {
		t.Fatalf("manifest read failed: %v", err)
	}
	if want := []string{yesterday, today}; !reflect.DeepEqual(m.Takers.Dates, want) {
		t.Fatalf("expected dates %v, got %v", want, m.Takers.Dates)
	}
}

func TestPruneRemovesOldSnapshots(t *testing.T) {
	base := t.TempDir()
	w := NewWriter(base, 1)

	oldDate := timeutil.Today(time.Now().AddDate(0, 0, -5))
	today := timeutil.Today(time.Now())
	if err := w.WriteTakersSnapshot(oldDate, sampleDoc()); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if err := w.WriteTakersSnapshot(today, sampleDoc()); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(base, "takers", oldDate+".json")); !os.IsNotExist(err) {
		t.Fatalf("expected old snapshot to be pruned, stat err=%v", err)
	}
	if _, err := os.Stat(filepath.Join(base, "takers", today+".json")); err != nil {
		t.Fatalf("expected current snapshot kept, stat err=%v", err)
	}
}

func TestLoadLatestUsesManifest(t *testing.T) {
	base := t.TempDir()
	w := NewWriter(base, 14)

	yesterday := timeutil.Today(time.Now().AddDate(0, 0, -1))
	today := timeutil.Today(time.Now())
	if err := w.WriteTakersSnapshot(yesterday, sampleDoc()); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if err := w.WriteTakersSnapshot(today, sampleDoc()); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	s := NewFSStore(base)
	doc, date, err := s.LoadLatest()
	if err != nil {
		t.Fatalf("load latest failed: %v", err)
	}
	if date != today {
		t.Fatalf("expected latest date %s, got %s", today, date)
	}
	if doc.Len() != 2 {
		t.Fatalf("expected two clubs, got %d", doc.Len())
	}
}

func TestLoadLatestWithoutManifest(t *testing.T) {
	s := NewFSStore(t.TempDir())
	if _, _, err := s.LoadLatest(); err == nil {
		t.Fatalf("expected error without manifest")
	}
}
