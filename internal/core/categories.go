package core

import (
	"bytes"
	"embed"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"strconv"
	"strings"

	"github.com/DonovanMods/mo2-inspect/internal/domain"
)

// CategoriesFile is the category catalog file name
const CategoriesFile = "categories.dat"

//go:embed data/default_categories.dat
var defaultCategoriesFS embed.FS

const defaultCategoriesPath = "data/default_categories.dat"

// LoadCategories returns the id -> title catalog of an instance. Instances
// without their own categories.dat get the embedded default catalog.
// Any malformed row fails the whole load.
func LoadCategories(instanceDir string) (map[int]string, error) {
	catalogPath := path.Join(instanceDir, CategoriesFile)
	data, err := os.ReadFile(catalogPath)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("reading %s: %w", catalogPath, err)
		}
		catalogPath = defaultCategoriesPath
		data, err = defaultCategoriesFS.ReadFile(defaultCategoriesPath)
		if err != nil {
			return nil, fmt.Errorf("reading embedded categories: %w", err)
		}
	}

	categories, err := ParseCategories(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", catalogPath, err)
	}
	return categories, nil
}

// ParseCategories reads "id|title|nexus_ids|parent_id" rows. Later rows
// replace earlier rows with the same id.
func ParseCategories(r io.Reader) (map[int]string, error) {
	reader := csv.NewReader(r)
	reader.Comma = '|'
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	categories := make(map[int]string)
	for row := 1; ; row++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("row %d: %w: %w", row, domain.ErrCatalogParse, err)
		}
		if len(record) < 2 {
			return nil, fmt.Errorf("row %d: expected at least 2 columns, got %d: %w", row, len(record), domain.ErrCatalogParse)
		}
		id, err := strconv.Atoi(strings.TrimSpace(record[0]))
		if err != nil {
			return nil, fmt.Errorf("row %d: category id %q: %w", row, record[0], domain.ErrCatalogParse)
		}
		categories[id] = record[1]
	}
	return categories, nil
}
