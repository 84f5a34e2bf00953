// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package main

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/datapack-land/mcsyntax/internal/nbt"
)

var argsNbt struct {
	pretty bool
}

var cmdNbt = &cobra.Command{
	Use:   "nbt",
	Short: "convert NBT between binary and text",
}

var cmdNbtDump = &cobra.Command{
	Use:   "dump",
	Short: "read a binary NBT file and print it as SNBT",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			log.Fatalf("error: expected file name to dump\n")
		}
		raw, err := os.ReadFile(args[0])
		if err != nil {
			log.Fatalf("error: %v\n", err)
		}
		raw, err = maybeGunzip(raw)
		if err != nil {
			log.Fatalf("error: %v\n", err)
		}
		name, v, err := nbt.ReadNamed(bytes.NewReader(raw))
		if err != nil {
			log.Fatalf("error: %q: %v\n", args[0], err)
		}
		if name != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "// %q\n", name)
		}
		fmt.Fprintln(cmd.OutOrStdout(), nbt.Format(v, true))
	},
}

var cmdNbtSnbt = &cobra.Command{
	Use:   "snbt",
	Short: "parse an SNBT file and re-emit it",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			log.Fatalf("error: expected file name to parse\n")
		}
		src, err := os.ReadFile(args[0])
		if err != nil {
			log.Fatalf("error: %v\n", err)
		}
		v, err := nbt.ParseSnbt(src)
		if err != nil {
			log.Fatalf("error: %q: %v\n", args[0], err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), nbt.Format(v, argsNbt.pretty))
	},
}

// maybeGunzip transparently decompresses gzipped NBT files; level.dat
// and friends ship compressed.
func maybeGunzip(raw []byte) ([]byte, error) {
	if len(raw) < 2 || raw[0] != 0x1f || raw[1] != 0x8b {
		return raw, nil
	}
	zr, err := gzip.NewReader(bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	defer zr.Close()
	return io.ReadAll(zr)
}
