// Command lvtree is an interactive shell over one of the lvtree indexes.
//
// Usage:
//
//	lvtree [-config lvtree.yaml] [-kind avl|btree|bst|reference] [-order 5] [-trace]
//
// Flags override the matching config values. Seed records from the config are
// inserted before the prompt appears. Type "help" at the prompt for commands.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"

	"github.com/katalvlaran/lvtree/config"
	"github.com/katalvlaran/lvtree/index"
	"github.com/katalvlaran/lvtree/internal/shell"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config (default: lvtree.yaml, configs/lvtree.yaml)")
	kind := flag.String("kind", "", "index kind: avl, btree, bst, reference")
	order := flag.Int("order", 0, "B-tree order")
	trace := flag.Bool("trace", false, "log rotations and splits")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// Flags win over the file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "kind":
			cfg.Index.Kind = *kind
		case "order":
			cfg.Index.Order = *order
		case "trace":
			cfg.Shell.Trace = *trace
		}
	})
	if err = cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	opts := []index.Option{index.WithOrder(cfg.Index.Order)}
	if cfg.Shell.Trace {
		opts = append(opts, index.WithTrace(func(line string) { log.Printf("trace: %s", line) }))
	}
	idx, err := index.New(cfg.Kind(), opts...)
	if err != nil {
		log.Fatalf("create index: %v", err)
	}

	for _, r := range cfg.Seed {
		if err = idx.Insert(r.Key, r.Field); err != nil {
			log.Fatalf("seed %d: %v", r.Key, err)
		}
	}
	log.Printf("lvtree: %s index ready with %d records", cfg.Kind(), idx.Len())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	sh := shell.New(idx, os.Stdout, shell.WithPrompt(cfg.Shell.Prompt))
	if err = sh.Run(ctx, os.Stdin); err != nil && ctx.Err() == nil {
		log.Fatalf("shell: %v", err)
	}
}
