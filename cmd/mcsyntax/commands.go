// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/ncruces/go-strftime"
	"github.com/spf13/cobra"

	"github.com/datapack-land/mcsyntax/internal/commands"
	"github.com/datapack-land/mcsyntax/internal/stores/sqlite"
)

var argsCommands struct {
	cache string
}

var cmdCommands = &cobra.Command{
	Use:   "commands",
	Short: "inspect command schemas and the schema cache",
}

var cmdCommandsLoad = &cobra.Command{
	Use:   "load",
	Short: "load a commands report and print summary statistics",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			log.Fatalf("error: expected report file name\n")
		}
		cmds := loadSchema(args[0], argsCommands.cache)

		var literals, arguments, executable int
		for i := 0; i < cmds.Len(); i++ {
			c := cmds.At(commands.Index(i))
			switch c.NodeType().Kind {
			case commands.Literal:
				literals++
			case commands.Argument:
				arguments++
			}
			if c.Executable() {
				executable++
			}
		}
		fmt.Fprintf(cmd.OutOrStdout(), "nodes      %d\n", cmds.Len())
		fmt.Fprintf(cmd.OutOrStdout(), "literals   %d\n", literals)
		fmt.Fprintf(cmd.OutOrStdout(), "arguments  %d\n", arguments)
		fmt.Fprintf(cmd.OutOrStdout(), "executable %d\n", executable)
	},
}

var cmdCommandsCacheInfo = &cobra.Command{
	Use:   "cache-info",
	Short: "list the schemas in the cache database",
	Run: func(cmd *cobra.Command, args []string) {
		if argsCommands.cache == "" {
			log.Fatalf("error: --cache is required\n")
		}
		store, err := sqlite.Open(argsCommands.cache, context.Background())
		if err != nil {
			log.Fatalf("error: %v\n", err)
		}
		defer store.Close()

		infos, err := store.Schemas()
		if err != nil {
			log.Fatalf("error: %v\n", err)
		}
		if len(infos) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "cache is empty")
			return
		}
		for _, info := range infos {
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %-24s %6d nodes  cached %s\n",
				info.Hash[:12], info.Name, info.NodeCount,
				strftime.Format("%Y-%m-%d %H:%M:%S", info.CreatedAt))
		}
		if sb, err := os.Stat(argsCommands.cache); err == nil {
			fmt.Fprintf(cmd.OutOrStdout(), "%d schemas, %s on disk\n",
				len(infos), humanize.Bytes(uint64(sb.Size())))
		}
	},
}
