package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/financely/financely/internal/model"
)

// Header is the CSV header of the native transaction format.
const Header = "type,amount,name,category,date"

const (
	numFields   = 5
	colType     = 0
	colAmount   = 1
	colName     = 2
	colCategory = 3
	colDate     = 4
)

// NativeParser reads the native transaction CSV. Amounts are parsed
// permissively and dates are passed through untouched.
type NativeParser struct{}

// Format returns the parser name.
func (p *NativeParser) Format() string { return "financely" }

// Parse implements Parser.
func (p *NativeParser) Parse(r io.Reader) ([]model.Transaction, error) {
	return ReadTransactions(r)
}

// ReadTransactions reads a native CSV, header row included.
func ReadTransactions(r io.Reader) ([]model.Transaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading transactions CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	txns := make([]model.Transaction, 0, len(records)-1)
	for _, rec := range records[1:] {
		txns = append(txns, UnmarshalTransaction(rec))
	}
	return txns, nil
}

// WriteTransactions writes a native CSV including the header.
func WriteTransactions(w io.Writer, txns []model.Transaction) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, t := range txns {
		if err := cw.Write(MarshalTransaction(t)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// MarshalTransaction converts a Transaction to a CSV row.
func MarshalTransaction(t model.Transaction) []string {
	row := make([]string, numFields)
	row[colType] = string(t.Type)
	row[colAmount] = t.Amount.StringFixed(2)
	row[colName] = t.Name
	row[colCategory] = t.Category
	row[colDate] = t.Date
	return row
}

// UnmarshalTransaction converts a CSV row to a Transaction. It never fails:
// the reader has already enforced the column count.
func UnmarshalTransaction(record []string) model.Transaction {
	return model.Transaction{
		Type:     model.TransactionType(strings.ToLower(strings.TrimSpace(record[colType]))),
		Amount:   model.ParseAmount(record[colAmount]),
		Name:     strings.TrimSpace(record[colName]),
		Category: strings.TrimSpace(record[colCategory]),
		Date:     strings.TrimSpace(record[colDate]),
	}
}
