package tests

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gmt-dos/actors-go/internal/clients/arrowlog"
	"github.com/gmt-dos/actors-go/pkg/identifier"
	"github.com/gmt-dos/actors-go/pkg/io"
)

type telemetryTag struct{}

func (telemetryTag) ID() string { return "telemetryTag" }

func TestArrowReturnsOneEntryPerRead(t *testing.T) {
	l := arrowlog.New[telemetryTag](filepath.Join(t.TempDir(), "unused.parquet"))
	l.Read(io.New[identifier.Vector, telemetryTag](identifier.Vector{1, 2}))
	l.Read(io.New[identifier.Vector, telemetryTag](identifier.Vector{3, 4}))

	arr := l.Arrow()
	defer arr.Release()
	if got := arr.Len(); got != 2 {
		t.Fatalf("got %d list entries, want 2", got)
	}
}

func TestFlushWritesAReadableParquetFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "telemetry.parquet")
	l := arrowlog.New[telemetryTag](path)
	l.Read(io.New[identifier.Vector, telemetryTag](identifier.Vector{1, 2, 3}))

	if err := l.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("expected a non-empty parquet file")
	}
}
