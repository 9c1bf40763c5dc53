package cli

import (
	"context"
	"fmt"

	"github.com/abhisheksit27/agrovest/internal/client/catalog"
)

// Offers lists the static investment catalog: featured offers and the
// invest-by-category entries.
func (a *App) Offers(ctx context.Context) error {
	printlnFn("Best Offers:")
	for _, offer := range catalog.Offers() {
		printlnFn(fmt.Sprintf("  %d. %-6s %s", offer.ID, offer.Title, offer.Image))
	}

	printlnFn("Invest by Category:")
	for _, cat := range catalog.Categories() {
		printlnFn(fmt.Sprintf("  %d. %s", cat.ID, cat.Name))
	}
	return nil
}
