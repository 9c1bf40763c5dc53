// Package catalog serves the static farm-investment marketing data the demo
// ships with: featured offers and invest-by-category entries. There is no
// backend for these; the lists are fixed.
package catalog

// Offer is a featured investment card.
type Offer struct {
	ID    int
	Title string
	Image string
}

// Category is an invest-by-category entry. Color is the accent color the UI
// renders the category with, as a hex string.
type Category struct {
	ID    int
	Name  string
	Color string
}

var offers = []Offer{
	{ID: 1, Title: "Field", Image: "https://images.unsplash.com/photo-1500382017468-9049fed747ef?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&q=60"},
	{ID: 2, Title: "Wheat", Image: "https://images.unsplash.com/photo-1625246333195-bf5f795508dc?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&q=60"},
	{ID: 3, Title: "Farm", Image: "https://images.unsplash.com/photo-1500937386664-56d1dfef3854?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&q=60"},
}

var categories = []Category{
	{ID: 1, Name: "Duration", Color: "#1E90FF"},
	{ID: 2, Name: "Return", Color: "#2ECC71"},
	{ID: 3, Name: "Low Risk", Color: "#E74C3C"},
	{ID: 4, Name: "Safety", Color: "#F1C40F"},
}

// Offers returns the featured offers. The returned slice is a copy; callers
// may reorder or filter it freely.
func Offers() []Offer {
	return append([]Offer(nil), offers...)
}

// Categories returns the invest-by-category entries as a copy.
func Categories() []Category {
	return append([]Category(nil), categories...)
}
