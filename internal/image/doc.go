// Package imagepkg composes rendered cards into print sheets and deck
// overviews, and loads, encodes and generates the images involved.
package imagepkg
