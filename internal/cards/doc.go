// Package cards holds the card data model, corpus loading and the search
// and sort rules used by the deck tool.
package cards
