// Package visitor offers generic callback visitors for ordered containers.
// It provides index-keyed slice traversal and a combinator that flattens
// nested visitors into a single visit.
package visitor
