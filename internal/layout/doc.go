// Package layout holds the geometry value types shared by the pin manager
// and the layout hosts it drives.
//
// Coordinates are CSS pixels as float64. Types are re-exported through the
// root pin package for public consumption.
package layout
