// Package presenter maps wizard states to display records.
//
// Render is pure: it reads the state and the catalog and returns a
// domain.Screen. Result cards are synthesized here, including the free-text
// fallbacks used when a query matches nothing in the catalog.
package presenter
