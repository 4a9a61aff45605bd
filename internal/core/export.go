package core

// export.go serializes records to a spreadsheet-friendly CSV report.
//
// Reports are UTF-8 with a leading byte order mark so spreadsheet tools
// detect the encoding and keep Korean (and other non-ASCII) text intact.
// ReadCSV strips the mark again, so a written report reads back to the
// exact strings that were stored.

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ErrNoRecords is returned when an export is requested for an empty store.
var ErrNoRecords = errors.New("no records to export")

// ReportContentType is the MIME type of an exported report.
const ReportContentType = "text/csv"

// FullColumns lists every exportable record field.
var FullColumns = []string{
	"Date", "Name", "Account", "Tier", "ER", "Products", "Post_Date",
	"Ship_Date", "Guide_Date", "Qual", "Comment", "Caption", "Comments",
}

var columnValues = map[string]func(Record) string{
	"Date":       func(r Record) string { return r.Date },
	"Name":       func(r Record) string { return r.Name },
	"Account":    func(r Record) string { return r.Account },
	"Tier":       func(r Record) string { return string(r.Tier) },
	"ER":         func(r Record) string { return r.ER() },
	"Products":   func(r Record) string { return r.Products },
	"Post_Date":  func(r Record) string { return r.PostDate },
	"Ship_Date":  func(r Record) string { return r.ShipDate },
	"Guide_Date": func(r Record) string { return r.GuideDate },
	"Qual":       func(r Record) string { return strconv.Itoa(r.QualitativeScore) },
	"Comment":    func(r Record) string { return r.Comment },
	"Caption":    func(r Record) string { return r.Caption },
	"Comments":   func(r Record) string { return r.CommentsText },
}

// ColumnValue returns the display value of one named column of a record.
func ColumnValue(rec Record, column string) (string, error) {
	fn, ok := columnValues[column]
	if !ok {
		return "", fmt.Errorf("unknown column %q", column)
	}
	return fn(rec), nil
}

// ExportFile is a rendered report ready for download.
type ExportFile struct {
	Filename    string
	ContentType string
	Rows        int
	Data        []byte
}

// ReportFilename returns the download name for a report exported at now.
func ReportFilename(now time.Time) string {
	return "IRM_Report_" + now.Format("20060102") + ".csv"
}

// WriteCSV writes a BOM-prefixed UTF-8 CSV: the header row, then one row
// per record in the given order, restricted to columns.
func WriteCSV(w io.Writer, records []Record, columns []string) error {
	getters := make([]func(Record) string, len(columns))
	for i, col := range columns {
		fn, ok := columnValues[col]
		if !ok {
			return fmt.Errorf("unknown column %q", col)
		}
		getters[i] = fn
	}

	tw := transform.NewWriter(w, unicode.UTF8BOM.NewEncoder())
	cw := csv.NewWriter(tw)

	if err := cw.Write(columns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	row := make([]string, len(columns))
	for _, rec := range records {
		for i, get := range getters {
			row[i] = get(rec)
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return tw.Close()
}

// RenderReport builds the downloadable report for records. It refuses to
// produce an artifact for an empty list.
func RenderReport(records []Record, columns []string, now time.Time) (*ExportFile, error) {
	if len(records) == 0 {
		return nil, ErrNoRecords
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, records, columns); err != nil {
		return nil, err
	}

	return &ExportFile{
		Filename:    ReportFilename(now),
		ContentType: ReportContentType,
		Rows:        len(records),
		Data:        buf.Bytes(),
	}, nil
}

// Report is a decoded CSV report.
type Report struct {
	Header []string
	Rows   [][]string
}

// ReadCSV decodes a report written by WriteCSV. A leading BOM is optional.
func ReadCSV(r io.Reader) (*Report, error) {
	cr := csv.NewReader(transform.NewReader(r, unicode.UTF8BOM.NewDecoder()))

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("invalid csv: %w", err)
	}
	if len(records) == 0 {
		return nil, errors.New("invalid csv: empty file")
	}

	return &Report{
		Header: records[0],
		Rows:   records[1:],
	}, nil
}
