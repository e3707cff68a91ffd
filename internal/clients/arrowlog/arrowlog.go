// Package arrowlog provides a terminator client that records every sample
// in an Apache Arrow array and flushes it to a Parquet file, grounded on
// the original crate's src/clients/arrow_client.rs: one growing Arrow list
// column per logged entry, plus a copy of every sample as a row that Flush
// writes with parquet-go's generic writer.
//
// Go has no destructor to hook the Rust client's end-of-run Drop impl, so
// callers must call Flush explicitly after the owning pkg/model.Model.Wait
// returns.
package arrowlog

import (
	"os"
	"sync"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/gmt-dos/actors-go/pkg/errors"
	"github.com/gmt-dos/actors-go/pkg/identifier"
	"github.com/gmt-dos/actors-go/pkg/io"
	"github.com/parquet-go/parquet-go"
)

// row is the on-disk shape of one logged step: a flat list of float64
// samples, since identifier.Vector is the default payload type.
type row struct {
	Step   int64     `parquet:"step"`
	Values []float64 `parquet:"values,list"`
}

// Logger accumulates identifier.Vector samples into an Arrow array and
// writes them out to a Parquet file on Flush.
type Logger[U io.UID] struct {
	mu       sync.Mutex
	filename string
	builder  *array.ListBuilder
	step     int64
	rows     []row
}

// New returns a Logger that will write filename on Flush.
func New[U io.UID](filename string) *Logger[U] {
	pool := memory.NewGoAllocator()
	return &Logger[U]{
		filename: filename,
		builder:  array.NewListBuilder(pool, arrow.PrimitiveTypes.Float64),
	}
}

// Read appends one row of samples.
func (l *Logger[U]) Read(data *io.Data[identifier.Vector, U]) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.builder.Append(true)
	values := l.builder.ValueBuilder().(*array.Float64Builder)
	values.AppendValues(data.Value, nil)

	l.rows = append(l.rows, row{Step: l.step, Values: append([]float64(nil), data.Value...)})
	l.step++
}

// Update is a no-op: Logger has no internal state beyond its accumulator.
func (l *Logger[U]) Update() {}

// Arrow returns the samples read since the previous Arrow call (or since
// New) as a single Arrow list array; building it resets the Arrow builder.
// Flush is not affected. The caller owns the returned array and must
// Release it.
func (l *Logger[U]) Arrow() arrow.Array {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.builder.NewListArray()
}

// Flush writes every accumulated row to the Parquet file named at
// construction, via parquet-go's generic writer.
func (l *Logger[U]) Flush() error {
	l.mu.Lock()
	rows := l.rows
	l.mu.Unlock()

	f, err := os.Create(l.filename)
	if err != nil {
		return errors.Wrap(err, "open parquet file")
	}
	defer f.Close()

	w := parquet.NewGenericWriter[row](f)
	if _, err := w.Write(rows); err != nil {
		return errors.Wrap(err, "write parquet rows")
	}
	if err := w.Close(); err != nil {
		return errors.Wrap(err, "close parquet writer")
	}
	return nil
}
