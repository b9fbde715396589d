// Package menu provides the Menu aggregate and the Dish entity.
//
// A menu is a fixed four-course offer (appetizer, first, second, dessert) with a
// price and a visibility flag. Each course references a dish by identity; the
// dish's course must match the slot it fills.
package menu
