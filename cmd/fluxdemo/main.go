// Command fluxdemo exercises a handful of flux pipelines end to end
// (SPEC_FULL.md §10's external-interfaces expansion), logging each
// stage through glog the way a typical Go command-line tool does.
package main

import (
	"flag"
	"fmt"

	"github.com/golang/glog"

	"github.com/katalvlaran/flux"
)

func main() {
	n := flag.Int("n", 20, "upper bound for the demo's integer range")
	flag.Parse()
	defer glog.Flush()

	glog.Infof("fluxdemo: building pipeline over [0, %d)", *n)

	total := flux.Sum(flux.FromRange(0, *n).
		Filter(func(v int) bool { return v%2 == 0 }).
		Take(*n))
	fmt.Printf("sum of even numbers in [0, %d): %d\n", *n, total)

	squares := flux.Map(flux.FromRange(0, 10), func(v int) int { return v * v }).Collect()
	fmt.Printf("first ten squares: %v\n", squares)

	words := flux.FromSlice([]string{"the", "quick", "brown", "fox"})
	fmt.Println("joined:", words.Join(", "))

	if flux.Contains(flux.FromSlice([]int{1, 2, 3}), 2) {
		glog.Info("fluxdemo: containment check passed")
	}
}
