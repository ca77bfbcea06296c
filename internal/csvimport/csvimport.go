package csvimport

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"ticketsheet/backend/internal/models"

	"github.com/shopspring/decimal"
)

// The booking plugin exports dates like "Saturday April 1st 2023 10:30 AM".
const sheetDateLayout = "Monday January 2 2006 3:04 PM"

var ordinalSuffix = regexp.MustCompile(`([0-9]+)(st|nd|rd|th)`)

// Parser reads a booking-plugin CSV export into booking records.
type Parser struct {
	simplifyTitles bool
}

// Option configures the parser.
type Option func(*Parser)

// WithSimplifiedTitles shortens product titles for narrow print layouts
// ("Weekend" becomes "w/e", the "Ticket" suffixes are dropped).
func WithSimplifiedTitles() Option {
	return func(p *Parser) {
		p.simplifyTitles = true
	}
}

// New creates a parser.
func New(opts ...Option) *Parser {
	p := &Parser{}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse reads the CSV export. The first row must be the column headers.
// Rows that cannot be parsed are reported with their 1-based data row
// number and skipped; only an unreadable file or missing headers fail the
// whole parse.
func (p *Parser) Parse(r io.Reader) ([]models.BookingRecord, []models.RejectedRecord, error) {
	reader := csv.NewReader(stripBOM(r))
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("read csv: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil, fmt.Errorf("no csv rows found")
	}

	headers := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		headers[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{"Order ID", "Start date", "Product title", "Price categories"} {
		if _, ok := headers[required]; !ok {
			return nil, nil, fmt.Errorf("missing column %q", required)
		}
	}

	var records []models.BookingRecord
	var problems []models.RejectedRecord
	for i, row := range rows[1:] {
		recs, err := p.parseRow(row, headers)
		if err != nil {
			problems = append(problems, models.RejectedRecord{Index: i + 1, Reason: err.Error()})
			continue
		}
		records = append(records, recs...)
	}
	return records, problems, nil
}

// parseRow expands one export row into one record per ticket line.
func (p *Parser) parseRow(row []string, headers map[string]int) ([]models.BookingRecord, error) {
	get := func(name string) string {
		idx := headers[name]
		if idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	date, err := ParseSheetDate(get("Start date"))
	if err != nil {
		return nil, err
	}

	event := get("Product title")
	if p.simplifyTitles {
		event = SimplifyProduct(event)
	}

	lines, err := parseTicketLines(get("Price categories"))
	if err != nil {
		return nil, err
	}

	orderID := get("Order ID")
	records := make([]models.BookingRecord, 0, len(lines))
	for _, line := range lines {
		records = append(records, models.BookingRecord{
			Date:          date,
			Event:         event,
			TicketType:    line.name,
			Quantity:      line.qty,
			RecordedPrice: line.price,
			OrderID:       orderID,
		})
	}
	return records, nil
}

type ticketLine struct {
	name  string
	qty   int
	price decimal.Decimal
}

// parseTicketLines splits the "Price categories" field, one ticket per
// line in the form "<name>: <qty> (£<price>)". More than one child on a
// booking is sold at the family rate, so those lines are reclassified.
func parseTicketLines(field string) ([]ticketLine, error) {
	var lines []ticketLine
	for _, raw := range strings.Split(field, "\n") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		name, rest, ok := strings.Cut(raw, ":")
		if !ok {
			return nil, fmt.Errorf("ticket line %q: missing name separator", raw)
		}
		fields := strings.Fields(rest)
		if len(fields) < 2 {
			return nil, fmt.Errorf("ticket line %q: missing quantity or price", raw)
		}
		qty, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("ticket line %q: bad quantity: %w", raw, err)
		}
		price, err := parsePrice(fields[1])
		if err != nil {
			return nil, fmt.Errorf("ticket line %q: bad price: %w", raw, err)
		}

		name = strings.TrimSpace(name)
		if name == "Child" && qty > 1 {
			name = "Family Child"
		}
		lines = append(lines, ticketLine{name: name, qty: qty, price: price})
	}
	return lines, nil
}

// parsePrice handles "(£9.50)" and its HTML-escaped form.
func parsePrice(field string) (decimal.Decimal, error) {
	field = strings.Trim(field, "()")
	field = strings.ReplaceAll(field, "&pound;", "")
	field = strings.TrimPrefix(field, "£")
	return decimal.NewFromString(field)
}

// ParseSheetDate parses the export's long date format, tolerating the
// ordinal day suffixes Go's time package does not understand.
func ParseSheetDate(value string) (time.Time, error) {
	clean := ordinalSuffix.ReplaceAllString(strings.TrimSpace(value), "$1")
	date, err := time.Parse(sheetDateLayout, clean)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", value, err)
	}
	return date, nil
}

// SimplifyProduct shortens a product title for print layouts.
func SimplifyProduct(value string) string {
	value = strings.ReplaceAll(value, "Weekend", "w/e")
	value = strings.ReplaceAll(value, "- Day Ticket", "")
	value = strings.ReplaceAll(value, "Ticket", "")
	return strings.TrimSpace(value)
}

// stripBOM discards a leading UTF-8 byte order mark if present.
func stripBOM(r io.Reader) io.Reader {
	buf := bufio.NewReader(r)
	head, err := buf.Peek(3)
	if err == nil && head[0] == 0xEF && head[1] == 0xBB && head[2] == 0xBF {
		_, _ = buf.Discard(3)
	}
	return buf
}
