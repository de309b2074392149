package ui

import "fmt"

// Product is an item that can be put in the basket.
type Product struct {
	Name  string
	Price float64
}

// Catalog is the demo's product list; "a" adds the next product in order.
var Catalog = []Product{
	{"Lorem ipsum", 12.50},
	{"Sententiae", 8.00},
	{"No sea", 21.75},
	{"Ne vel", 4.20},
	{"Assum mediocrem", 15.00},
}

// Basket holds the products the user added.
type Basket struct {
	items []Product
}

// Add puts the next catalog product in the basket.
func (b *Basket) Add() Product {
	p := Catalog[len(b.items)%len(Catalog)]
	b.items = append(b.items, p)
	return p
}

// Remove takes the most recently added product out. It reports false when the
// basket is empty.
func (b *Basket) Remove() (Product, bool) {
	if len(b.items) == 0 {
		return Product{}, false
	}
	p := b.items[len(b.items)-1]
	b.items = b.items[:len(b.items)-1]
	return p, true
}

// Count returns the number of products.
func (b Basket) Count() int { return len(b.items) }

// Total returns the summed price.
func (b Basket) Total() float64 {
	var total float64
	for _, p := range b.items {
		total += p.Price
	}
	return total
}

// Summary renders the basket for a header slot. Compact summaries fit next to
// the hamburger menu on the narrowest breakpoint.
func (b Basket) Summary(compact bool) string {
	if compact {
		return fmt.Sprintf("[%d]", b.Count())
	}
	if b.Count() == 0 {
		return "Basket: empty"
	}
	return fmt.Sprintf("Basket: %d item(s) · $%.2f", b.Count(), b.Total())
}
