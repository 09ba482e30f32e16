// Package ui provides the color palette for the console view. It is shared
// so presentation code does not depend on how colors are chosen.
package ui
