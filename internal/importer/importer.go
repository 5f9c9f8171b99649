package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"shopeasy/internal/domain"
)

type ProductWriter interface {
	Upsert(ctx context.Context, product domain.Product) (*domain.Product, error)
}

// CSVImporter reads catalog CSV exports and inserts/updates products.
// Expected headers: id (optional), name, price, image.
type CSVImporter struct {
	reader      *csv.Reader
	productRepo ProductWriter
}

func NewCSVImporter(r io.Reader, repo ProductWriter) *CSVImporter {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // rows may have trailing commas
	return &CSVImporter{
		reader:      csvr,
		productRepo: repo,
	}
}

// Run parses CSV rows and upserts one product per row. Blank rows are
// skipped; a malformed row aborts the run with the count so far.
func (i *CSVImporter) Run(ctx context.Context) (int, error) {
	headers, err := i.reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)

	imported := 0
	for {
		record, err := i.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return imported, fmt.Errorf("read row: %w", err)
		}

		product, ok, err := parseRow(record, index)
		if err != nil {
			return imported, err
		}
		if !ok {
			continue
		}

		if _, err := i.productRepo.Upsert(ctx, product); err != nil {
			return imported, fmt.Errorf("upsert product %q: %w", product.Name, err)
		}
		imported++
	}

	return imported, nil
}

func parseRow(record []string, index map[string]int) (domain.Product, bool, error) {
	name := pick(record, index, "name")
	priceStr := pick(record, index, "price")
	image := pick(record, index, "image")
	idStr := pick(record, index, "id")

	if name == "" && priceStr == "" && image == "" {
		return domain.Product{}, false, nil
	}
	if name == "" {
		return domain.Product{}, false, fmt.Errorf("row missing product name")
	}

	price, err := strconv.ParseFloat(priceStr, 64)
	if err != nil {
		return domain.Product{}, false, fmt.Errorf("invalid price %q for product %q", priceStr, name)
	}
	if price < 0 {
		return domain.Product{}, false, fmt.Errorf("negative price for product %q", name)
	}

	var id int64
	if idStr != "" {
		id, err = strconv.ParseInt(idStr, 10, 64)
		if err != nil || id <= 0 {
			return domain.Product{}, false, fmt.Errorf("invalid id %q for product %q", idStr, name)
		}
	}

	return domain.Product{
		ID:    id,
		Name:  name,
		Price: price,
		Image: image,
	}, true, nil
}

func headerIndex(headers []string) map[string]int {
	idx := make(map[string]int, len(headers))
	for i, h := range headers {
		idx[strings.TrimSpace(h)] = i
	}
	return idx
}

func pick(record []string, index map[string]int, key string) string {
	pos, ok := index[key]
	if !ok || pos >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[pos])
}
