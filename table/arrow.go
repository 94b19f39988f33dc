package table

import (
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
)

// ToArrow converts the table to an Arrow record of nullable string
// columns named c1..cN, where N is the width of the widest row. Cells
// missing from rows shorter than N become nulls, so ragged tables
// convert without loss of row alignment. The caller owns the returned
// record and must Release it. A nil allocator uses the default Go
// allocator.
func (t *Table) ToArrow(mem memory.Allocator) arrow.Record {
	if mem == nil {
		mem = memory.NewGoAllocator()
	}

	width := t.ColumnCount()
	fields := make([]arrow.Field, width)
	for i := range fields {
		fields[i] = arrow.Field{
			Name:     fmt.Sprintf("c%d", i+1),
			Type:     arrow.BinaryTypes.String,
			Nullable: true,
		}
	}
	schema := arrow.NewSchema(fields, nil)

	builder := array.NewRecordBuilder(mem, schema)
	defer builder.Release()

	for _, row := range t.rows {
		for i := 0; i < width; i++ {
			b := builder.Field(i).(*array.StringBuilder)
			if i < len(row) {
				b.Append(row[i])
			} else {
				b.AppendNull()
			}
		}
	}

	return builder.NewRecord()
}
