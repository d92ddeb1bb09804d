// Package loader reads the generated file back into a table, assigns the
// schema positionally and derives the binary attack category.
package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"kdd-pipeline/internal/schema"
)

// Load reads the headerless delimited file at path. Rows whose width or
// value types do not match the schema surface as *schema.ParseError.
func Load(path string) (*schema.Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	// Width is checked in ParseRecord so a short row reports a ParseError
	// instead of csv.ErrFieldCount.
	reader.FieldsPerRecord = -1

	var records []schema.Record
	line := 0
	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("could not read %s: %w", path, err)
		}

		line++
		record, err := schema.ParseRecord(fields, line)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return schema.NewTable(records), nil
}
