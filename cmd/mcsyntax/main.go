// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package main implements the mcsyntax application, a command line
// front end for the mcfunction/nbtdoc parsing core: it parses source
// files into concrete syntax trees, converts NBT between its binary and
// textual forms, and manages the command-schema cache.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.3.1"

func main() {
	for _, arg := range os.Args {
		if arg == "-version" || arg == "--version" {
			fmt.Printf("%s\n", version)
			return
		}
	}
	log.SetFlags(log.Lshortfile | log.Ltime)

	if err := Execute(); err != nil {
		log.Fatal(err)
	}
}

func Execute() error {
	cmdRoot.AddCommand(cmdParse)
	cmdParse.PersistentFlags().BoolVar(&argsParse.stat, "stat", false, "report input size and node counts")
	cmdParse.PersistentFlags().BoolVar(&argsParse.trace, "trace", false, "tag output with a parse session id")

	cmdParse.AddCommand(cmdParseMcfunction)
	cmdParseMcfunction.Flags().StringVar(&argsParse.commands, "commands", "", "path to a commands report (json)")
	if err := cmdParseMcfunction.MarkFlagRequired("commands"); err != nil {
		log.Fatalf("commands: %v\n", err)
	}
	cmdParseMcfunction.Flags().StringVar(&argsParse.cache, "cache", "", "path to the schema cache database")

	cmdParse.AddCommand(cmdParseNbtdoc)

	cmdRoot.AddCommand(cmdNbt)
	cmdNbt.AddCommand(cmdNbtDump)
	cmdNbt.AddCommand(cmdNbtSnbt)
	cmdNbtSnbt.Flags().BoolVar(&argsNbt.pretty, "pretty", false, "indent the output")

	cmdRoot.AddCommand(cmdCommands)
	cmdCommands.PersistentFlags().StringVar(&argsCommands.cache, "cache", "", "path to the schema cache database")
	cmdCommands.AddCommand(cmdCommandsLoad)
	cmdCommands.AddCommand(cmdCommandsCacheInfo)

	return cmdRoot.Execute()
}

var cmdRoot = &cobra.Command{
	Use:   "mcsyntax",
	Short: "parse mcfunction and nbtdoc sources",
	Long:  `Mcsyntax parses mcfunction and nbtdoc sources into lossless syntax trees.`,
}
