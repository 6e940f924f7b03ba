// Command pathbench runs and compares shortest-path searches.
//
//	pathbench query -g graph.txt -s 0 -t 9999 --heuristic landmark --landmarks 16
//	pathbench bench plan.yaml
//	pathbench gen --kind geometric --vertices 10000 --radius 30 -o graph.txt
package main

import (
	"context"
	"os"
	"os/signal"
)

var version = "dev"

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	// trap Ctrl+C and call cancel on the context
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	defer func() {
		signal.Stop(c)
		cancel()
	}()
	go func() {
		select {
		case <-c:
			cancel()
		case <-ctx.Done():
		}
	}()

	if err := newRootCommand(ctx, &Input{}, version).Execute(); err != nil {
		cancel()
		os.Exit(1)
	}
}
