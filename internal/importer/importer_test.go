package importer

import (
	"context"
	"strings"
	"testing"

	"shopeasy/internal/domain"
)

type stubProductRepo struct {
	items []domain.Product
}

func (s *stubProductRepo) Upsert(_ context.Context, p domain.Product) (*domain.Product, error) {
	s.items = append(s.items, p)
	return &p, nil
}

func TestCSVImporter_Run(t *testing.T) {
	csvData := `id,name,price,image
1,Wireless Headphones,99.99,https://example.com/headphones.jpg
,Travel Mug,18.50,
2,Smart Watch,199.99,https://example.com/watch.jpg`

	repo := &stubProductRepo{}
	imp := NewCSVImporter(strings.NewReader(csvData), repo)

	count, err := imp.Run(context.Background())
	if err != nil {
		t.Fatalf("import run: %v", err)
	}
	if count != 3 {
		t.Fatalf("expected 3 products imported, got %d", count)
	}

	if repo.items[0].ID != 1 || repo.items[0].Name != "Wireless Headphones" || repo.items[0].Price != 99.99 {
		t.Fatalf("unexpected first product: %+v", repo.items[0])
	}
	if repo.items[1].ID != 0 {
		t.Fatalf("expected zero id when the column is blank, got %d", repo.items[1].ID)
	}
	if repo.items[2].Image != "https://example.com/watch.jpg" {
		t.Fatalf("unexpected image: %q", repo.items[2].Image)
	}
}

func TestCSVImporter_SkipsBlankRows(t *testing.T) {
	csvData := `name,price,image
Desk Lamp,34.99,
,,
Backpack,49.99,`

	repo := &stubProductRepo{}
	imp := NewCSVImporter(strings.NewReader(csvData), repo)

	count, err := imp.Run(context.Background())
	if err != nil {
		t.Fatalf("import run: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 products imported, got %d", count)
	}
}

func TestCSVImporter_RejectsBadPrice(t *testing.T) {
	csvData := `name,price,image
Desk Lamp,free,`

	imp := NewCSVImporter(strings.NewReader(csvData), &stubProductRepo{})

	if _, err := imp.Run(context.Background()); err == nil {
		t.Fatalf("expected error for unparseable price")
	}
}

func TestCSVImporter_RejectsNegativePrice(t *testing.T) {
	csvData := `name,price,image
Desk Lamp,-5,`

	imp := NewCSVImporter(strings.NewReader(csvData), &stubProductRepo{})

	if _, err := imp.Run(context.Background()); err == nil {
		t.Fatalf("expected error for negative price")
	}
}

func TestCSVImporter_RejectsMissingName(t *testing.T) {
	csvData := `name,price,image
,12.00,https://example.com/mystery.jpg`

	imp := NewCSVImporter(strings.NewReader(csvData), &stubProductRepo{})

	if _, err := imp.Run(context.Background()); err == nil {
		t.Fatalf("expected error for row without a name")
	}
}
