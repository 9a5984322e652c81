// Package cards parses the tab-separated compound card table.
//
// Column layout (0-based): 0 points, 1 name with the formula in parentheses,
// 2/5/8/11/14 required element numbers (the two columns after each carry the
// symbol and name and are ignored), 17 description, 18 type flag.
package cards

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"go.uber.org/zap"

	"github.com/mendeleevdice/mendeleev-go/data"
	"github.com/mendeleevdice/mendeleev-go/internal/game/board"
	"github.com/mendeleevdice/mendeleev-go/internal/game/market"
)

const (
	colPoints      = 0
	colName        = 1
	colDescription = 17
	colType        = 18
)

var elementColumns = []int{2, 5, 8, 11, 14}

var formulaPattern = regexp.MustCompile(`\(([^)]+)\)`)

// ErrNoCards is returned when a table yields no playable card.
var ErrNoCards = errors.New("card table has no valid rows")

// Table is a parsed card table split by deck.
type Table struct {
	Basic    []*market.Card
	Advanced []*market.Card
}

// Len returns the total number of cards.
func (t *Table) Len() int {
	return len(t.Basic) + len(t.Advanced)
}

// Parse reads a card table. The first row is a header. Rows without positive
// points or without a single valid element are skipped with a warning.
func Parse(r io.Reader, logger *zap.Logger) (*Table, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	reader := csv.NewReader(r)
	reader.Comma = '\t'
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read card table: %w", err)
	}
	if len(records) < 2 {
		return nil, ErrNoCards
	}

	table := &Table{}
	for i, record := range records[1:] { // skip header
		card, err := parseRow(i, record, logger)
		if err != nil {
			logger.Warn("skipping card row", zap.Int("row", i+2), zap.Error(err))
			continue
		}
		if card.Type == market.CardAdvanced {
			table.Advanced = append(table.Advanced, card)
		} else {
			table.Basic = append(table.Basic, card)
		}
	}

	if table.Len() == 0 {
		return nil, ErrNoCards
	}
	logger.Debug("parsed card table",
		zap.Int("basic", len(table.Basic)),
		zap.Int("advanced", len(table.Advanced)),
	)
	return table, nil
}

// LoadFile parses the table at path.
func LoadFile(path string, logger *zap.Logger) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open card table: %w", err)
	}
	defer file.Close()

	table, err := Parse(file, logger)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return table, nil
}

// LoadDefault parses the table embedded in the binary.
func LoadDefault(logger *zap.Logger) (*Table, error) {
	return Parse(bytes.NewReader(data.CompoundsTSV), logger)
}

// Load parses path, or the embedded table when path is empty.
func Load(path string, logger *zap.Logger) (*Table, error) {
	if path == "" {
		return LoadDefault(logger)
	}
	return LoadFile(path, logger)
}

func column(record []string, idx int) string {
	if idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}

func parseRow(index int, record []string, logger *zap.Logger) (*market.Card, error) {
	points, err := strconv.Atoi(column(record, colPoints))
	if err != nil || points <= 0 {
		return nil, fmt.Errorf("invalid points %q", column(record, colPoints))
	}

	name := column(record, colName)
	if name == "" {
		name = fmt.Sprintf("Card %d", index+1)
	}

	var elements []int
	for _, col := range elementColumns {
		raw := column(record, col)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			continue
		}
		if _, ok := board.Lookup(n); !ok {
			logger.Warn("dropping element outside the board",
				zap.String("card", name),
				zap.Int("element", n),
			)
			continue
		}
		elements = append(elements, n)
	}
	if len(elements) == 0 {
		return nil, fmt.Errorf("card %q has no valid elements", name)
	}

	var formula string
	if m := formulaPattern.FindStringSubmatch(name); m != nil {
		formula = m[1]
	}

	return &market.Card{
		ID:               fmt.Sprintf("%s_%d_%d", sanitize(name), points, index),
		Name:             name,
		Formula:          formula,
		Points:           points,
		RequiredElements: elements,
		Description:      column(record, colDescription),
		Type:             parseType(column(record, colType)),
	}, nil
}

func parseType(raw string) market.CardType {
	if raw == "고급" {
		return market.CardAdvanced
	}
	if t, err := market.ParseCardType(raw); err == nil {
		return t
	}
	return market.CardBasic
}

// sanitize keeps ASCII letters, digits and Hangul syllables; everything else
// becomes an underscore.
func sanitize(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			b.WriteRune(r)
		case r >= '가' && r <= '힣':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
