// Package currencies holds the read-only currency reference table used by the picker.
package currencies

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode"

	"github.com/hashicorp/go-multierror"
	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

//go:embed currencies.json
var bundled []byte

// ErrUnknownCurrency is returned when a code is not in the table.
var ErrUnknownCurrency = errors.New("unknown currency")

// Table is an immutable list of currencies indexed by code.
type Table struct {
	list   []models.Currency
	byCode map[string]int
	folded []string // folded "code label" per entry, same order as list
}

// Default loads the bundled currency list.
func Default() (*Table, error) {
	return Load(bytes.NewReader(bundled))
}

// Load decodes a JSON array of currencies and validates every entry.
// All validation problems are reported together.
func Load(r io.Reader) (*Table, error) {
	var list []models.Currency
	if err := json.NewDecoder(r).Decode(&list); err != nil {
		return nil, fmt.Errorf("decode currency list: %w", err)
	}
	return New(list)
}

// New builds a table from an in-memory list, e.g. a test fixture.
func New(list []models.Currency) (*Table, error) {
	var result *multierror.Error

	t := &Table{
		list:   make([]models.Currency, 0, len(list)),
		byCode: make(map[string]int, len(list)),
	}
	for i, c := range list {
		c.Code = strings.ToUpper(strings.TrimSpace(c.Code))
		switch {
		case !validCode(c.Code):
			result = multierror.Append(result, fmt.Errorf("entry %d: invalid code %q", i, c.Code))
			continue
		case strings.TrimSpace(c.Label) == "":
			result = multierror.Append(result, fmt.Errorf("entry %d (%s): empty label", i, c.Code))
			continue
		}
		if _, dup := t.byCode[c.Code]; dup {
			result = multierror.Append(result, fmt.Errorf("entry %d: duplicate code %s", i, c.Code))
			continue
		}
		t.byCode[c.Code] = len(t.list)
		t.list = append(t.list, c)
		t.folded = append(t.folded, fold(c.Code+" "+c.Label))
	}

	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}
	return t, nil
}

// Len returns the number of currencies.
func (t *Table) Len() int {
	return len(t.list)
}

// All returns a copy of the list in table order.
func (t *Table) All() []models.Currency {
	out := make([]models.Currency, len(t.list))
	copy(out, t.list)
	return out
}

// Lookup returns the currency with the given code (case-insensitive).
func (t *Table) Lookup(code string) (models.Currency, error) {
	i, ok := t.byCode[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		return models.Currency{}, fmt.Errorf("%w: %s", ErrUnknownCurrency, code)
	}
	return t.list[i], nil
}

// Search returns the currencies whose code or label contains query,
// ignoring case and accents. Entries whose code starts with the query come first.
// An empty query returns the whole table.
func (t *Table) Search(query string) []models.Currency {
	q := fold(strings.TrimSpace(query))
	if q == "" {
		return t.All()
	}

	type hit struct {
		idx    int
		prefix bool
	}
	var hits []hit
	for i, f := range t.folded {
		if !strings.Contains(f, q) {
			continue
		}
		hits = append(hits, hit{idx: i, prefix: strings.HasPrefix(f, q)})
	}
	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].prefix && !hits[j].prefix
	})

	out := make([]models.Currency, 0, len(hits))
	for _, h := range hits {
		out = append(out, t.list[h.idx])
	}
	return out
}

func validCode(code string) bool {
	if len(code) != 3 {
		return false
	}
	for _, r := range code {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

// fold strips diacritics and case so "colon" matches "Colón".
func fold(s string) string {
	tr := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(tr, s)
	if err != nil {
		stripped = s
	}
	return cases.Fold().String(stripped)
}
