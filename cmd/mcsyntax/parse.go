// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package main

import (
	"context"
	"log"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/datapack-land/mcsyntax/internal/commands"
	"github.com/datapack-land/mcsyntax/internal/mcf"
	"github.com/datapack-land/mcsyntax/internal/nbtdoc"
	"github.com/datapack-land/mcsyntax/internal/stdlib"
	"github.com/datapack-land/mcsyntax/internal/stores/sqlite"
)

var argsParse struct {
	commands string
	cache    string
	stat     bool
	trace    bool
}

var cmdParse = &cobra.Command{
	Use:   "parse",
	Short: "parse a source file and print its syntax tree",
}

var cmdParseMcfunction = &cobra.Command{
	Use:   "mcfunction",
	Short: "parse an mcfunction file",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			log.Fatalf("error: expected file name to parse\n")
		}
		if argsParse.trace {
			log.Printf("parse: session %s\n", uuid.New())
		}

		cmds := loadSchema(argsParse.commands, argsParse.cache)
		src, err := os.ReadFile(args[0])
		if err != nil {
			log.Fatalf("error: %v\n", err)
		}

		ast := mcf.NewCommandParser(cmds).Parse(src)
		printAst(cmd.OutOrStdout(), ast)
		if argsParse.stat {
			nodes, errors := countNodes(ast)
			log.Printf("parse: %s: %s, %d nodes, %d errors\n",
				args[0], humanize.Bytes(uint64(len(src))), nodes, errors)
		}
	},
}

var cmdParseNbtdoc = &cobra.Command{
	Use:   "nbtdoc",
	Short: "parse an nbtdoc file",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			log.Fatalf("error: expected file name to parse\n")
		}
		if argsParse.trace {
			log.Printf("parse: session %s\n", uuid.New())
		}

		src, err := os.ReadFile(args[0])
		if err != nil {
			log.Fatalf("error: %v\n", err)
		}

		ast := nbtdoc.Parse(src)
		printAst(cmd.OutOrStdout(), ast)
		if argsParse.stat {
			nodes, errors := countNodes(ast)
			log.Printf("parse: %s: %s, %d nodes, %d errors\n",
				args[0], humanize.Bytes(uint64(len(src))), nodes, errors)
		}
	},
}

// loadSchema loads the commands report, going through the on-disk cache
// when one is configured.
func loadSchema(path, cachePath string) *commands.Commands {
	report, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("error: %v\n", err)
	}
	var store *sqlite.Store
	if cachePath != "" {
		ctx := context.Background()
		if exists, err := stdlib.IsFileExists(cachePath); err != nil {
			log.Fatalf("error: %v\n", err)
		} else if !exists {
			if err := sqlite.Create(cachePath, ctx); err != nil {
				log.Fatalf("error: %v\n", err)
			}
		}
		store, err = sqlite.Open(cachePath, ctx)
		if err != nil {
			log.Fatalf("error: %v\n", err)
		}
	}
	cache, err := commands.NewCache(store)
	if err != nil {
		log.Fatalf("error: %v\n", err)
	}
	cmds, err := cache.Load(path, report)
	if err != nil {
		log.Fatalf("error: %v\n", err)
	}
	return cmds
}
