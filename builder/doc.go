// Package builder generates randomized fixture sequences for tests and
// examples: a graph-construction builder repurposed so its
// functional-options, *rand.Rand-seeded style keeps a real caller in a
// sequence-pipeline library instead of building graphs nothing here
// consumes.
package builder
