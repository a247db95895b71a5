package main

import (
	"fmt"
	"os"

	"github.com/lischenko/quicktheories/corpus"
	"github.com/lischenko/quicktheories/proptest"
)

const defaultCorpusPath = ".quicktheories/corpus.db"

// corpusPath resolves the store location from quicktheories.ini,
// falling back to the default.
func corpusPath() string {
	if p := proptest.LoadConfig().CorpusPath; p != "" {
		return p
	}
	return defaultCorpusPath
}

func openCorpus() *corpus.Store {
	path := corpusPath()
	store, err := corpus.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: opening corpus %s: %v\n", path, err)
		os.Exit(1)
	}
	return store
}

func corpusListCmd(property string) {
	store := openCorpus()
	defer store.Close()

	failures, err := store.List(property)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if len(failures) == 0 {
		fmt.Println("no recorded failures")
		return
	}

	for _, f := range failures {
		fmt.Printf("%s  %s  trial=%d seed=%d  %s\n",
			f.RecordedAt.Format("2006-01-02 15:04:05"), f.Property, f.Trial, f.Seed, f.Value)
	}
}

func corpusSeedsCmd(property string) {
	store := openCorpus()
	defer store.Close()

	seeds, err := store.Seeds(property)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if len(seeds) == 0 {
		fmt.Printf("no recorded seeds for %q\n", property)
		return
	}

	for _, seed := range seeds {
		fmt.Println(seed)
	}
}

func corpusClearCmd(property string) {
	store := openCorpus()
	defer store.Close()

	n, err := store.Clear(property)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if property == "" {
		fmt.Printf("cleared %d recorded failures\n", n)
	} else {
		fmt.Printf("cleared %d recorded failures for %q\n", n, property)
	}
}
