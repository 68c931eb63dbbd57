// Demo shows the specification and filter API end to end: products are
// filtered in memory with composed specifications, the same specification
// values would drive the Postgres catalog engine unchanged, and a journal
// of the session is written to disk.
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"slices"

	"github.com/solidkit/specification-filter-go/catalog"
	"github.com/solidkit/specification-filter-go/journal"
	"github.com/solidkit/specification-filter-go/specification"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("demo failed: %v", err)
	}
}

func run() error {
	products, err := sampleProducts()
	if err != nil {
		return err
	}

	sessionJournal := journal.NewJournal()

	green := catalog.HasColor(catalog.ColorGreen)
	fmt.Println("Green products:")
	for product := range specification.FilterSlice(products, green) {
		fmt.Printf(" - %s is green\n", product.Name)
		sessionJournal.AddEntry(product.Name + " matched: green")
	}

	greenAndLarge := specification.And[catalog.Product](green, catalog.HasSize(catalog.SizeLarge))
	fmt.Println("Large green products:")
	for product := range specification.FilterSlice(products, greenAndLarge) {
		fmt.Printf(" - %s is large and green\n", product.Name)
		sessionJournal.AddEntry(product.Name + " matched: large and green")
	}

	cheapOrBlue := specification.Or[catalog.Product](
		catalog.HasColor(catalog.ColorBlue),
		specification.Satisfies(func(p catalog.Product) bool {
			return len(p.Name) < 5
		}),
	)
	matching := specification.CollectMatching(slices.Clone(products), cheapOrBlue)
	fmt.Printf("Blue or short-named products: %d\n", len(matching))

	journalPath := filepath.Join(os.TempDir(), "demo-journal.txt")
	if err := journal.NewFileStore().Save(sessionJournal, journalPath); err != nil {
		return err
	}
	fmt.Printf("Session journal written to %s\n", journalPath)

	return nil
}

func sampleProducts() ([]catalog.Product, error) {
	blueprint := []struct {
		name  string
		color catalog.Color
		size  catalog.Size
	}{
		{"Apple", catalog.ColorGreen, catalog.SizeSmall},
		{"Tree", catalog.ColorGreen, catalog.SizeLarge},
		{"House", catalog.ColorBlue, catalog.SizeLarge},
	}

	products := make([]catalog.Product, 0, len(blueprint))
	for _, b := range blueprint {
		product, err := catalog.BuildProductWithGeneratedID(b.name, b.color, b.size)
		if err != nil {
			return nil, err
		}

		products = append(products, product)
	}

	return products, nil
}
