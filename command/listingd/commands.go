// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/bitmark-inc/exitwithstatus"

	"github.com/bitmark-inc/listingd/avl"
	"github.com/bitmark-inc/listingd/entry"
	"github.com/bitmark-inc/listingd/fault"
	"github.com/bitmark-inc/listingd/layout"
	"github.com/bitmark-inc/listingd/mapview"
)

// setup command handler
//
// commands that do not need the configuration file or the listings
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "version", "v":
		fmt.Printf("%s\n", version)

	case "help", "h", "?":
		usage(program)

	default:
		return false // continue processing
	}
	return true
}

func usage(program string) {
	fmt.Printf("usage: %s [--help] [--verbose] [--quiet] --config-file=FILE [[command|help] arguments...]\n", program)

	fmt.Printf("supported commands:\n\n")
	fmt.Printf("  help                       (h)      - display this message\n\n")
	fmt.Printf("  version                    (v)      - display version sting\n\n")

	fmt.Printf("  summary                    (s)      - count, height and rotations of the loaded tree\n")
	fmt.Printf("                                        same as no arguments\n\n")
	fmt.Printf("  level-order                (lo)     - list records breadth first\n\n")
	fmt.Printf("  in-order                   (io)     - list records by ascending key\n\n")
	fmt.Printf("  print                      (p)      - draw the tree, --verbose adds titles and heights\n\n")
	fmt.Printf("  check                      (c)      - verify ordering, heights and balance\n\n")
	fmt.Printf("  search PRIMARY SECONDARY   (f)      - show the record with exactly this key\n\n")
	fmt.Printf("  delete PRIMARY SECONDARY…  (d)      - delete records by key then list breadth first\n\n")
	fmt.Printf("  add                        (a)      - enter records at the terminal then list breadth first\n\n")
	fmt.Printf("  plot FILE                           - write an SVG drawing of the tree\n\n")
	fmt.Printf("  map FILE                            - write listing locations as GeoJSON\n\n")
	fmt.Printf("  watch                      (w)      - reload whenever the data file changes\n")
	fmt.Printf("\n")
}

// configured command handler
func (app *application) processCommand(program string, arguments []string) error {

	command := "summary"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {
	case "summary", "s", "start", "run":
		app.printSummary()

	case "level-order", "lo":
		app.printLevelOrder()

	case "in-order", "io":
		app.printInOrder()

	case "print", "p":
		app.tree.Print(os.Stdout, app.verbose)

	case "check", "c":
		if err := app.tree.Check(); nil != err {
			return err
		}
		fmt.Printf("ok: %d records\n", app.tree.Count())

	case "search", "f":
		keys, err := parseKeys(arguments)
		if nil != err {
			return err
		}
		for _, k := range keys {
			p := app.tree.Search(k.Primary, k.Secondary)
			if nil == p {
				fmt.Printf("%v: not found\n", k)
				continue
			}
			fmt.Printf("%v: %s\n", k, p.Record())
		}

	case "delete", "d":
		keys, err := parseKeys(arguments)
		if nil != err {
			return err
		}
		for _, k := range keys {
			removed := app.tree.Delete(k.Primary, k.Secondary)
			app.log.Infof("delete: %v  removed: %t", k, removed)
			if !app.quiet {
				fmt.Printf("delete %v: %t\n", k, removed)
			}
		}
		app.printLevelOrder()

	case "add", "a":
		app.addInteractive(entry.New(os.Stdin, os.Stdout))
		app.printLevelOrder()

	case "plot":
		if 1 != len(arguments) {
			exitwithstatus.Message("%s: plot requires a single file name", program)
		}
		return writeFile(arguments[0], func(f *os.File) error {
			return layout.WriteSVG(f, layout.Compute(app.tree.Root(), app.configuration.Layout))
		})

	case "map":
		if 1 != len(arguments) {
			exitwithstatus.Message("%s: map requires a single file name", program)
		}
		return writeFile(arguments[0], func(f *os.File) error {
			return mapview.Write(f, app.inOrderRecords())
		})

	case "watch", "w":
		return app.watch()

	default:
		fmt.Printf("error: no such command: %v\n", command)
		usage(program)
		exitwithstatus.Exit(1)
	}
	return nil
}

// pairs of keys from the command line
func parseKeys(arguments []string) ([]avl.Key, error) {
	if 0 == len(arguments) || 0 != len(arguments)%2 {
		return nil, fault.ErrInvalidKeyArguments
	}
	keys := make([]avl.Key, 0, len(arguments)/2)
	for i := 0; i < len(arguments); i += 2 {
		primary, err := strconv.ParseFloat(arguments[i], 64)
		if nil != err {
			return nil, fault.ErrInvalidKeyArguments
		}
		secondary, err := strconv.ParseFloat(arguments[i+1], 64)
		if nil != err {
			return nil, fault.ErrInvalidKeyArguments
		}
		keys = append(keys, avl.Key{Primary: primary, Secondary: secondary})
	}
	return keys, nil
}

// create or truncate a file and let write fill it
func writeFile(fileName string, write func(*os.File) error) error {
	f, err := os.Create(fileName)
	if nil != err {
		return err
	}
	if err := write(f); nil != err {
		f.Close()
		os.Remove(fileName)
		return err
	}
	return f.Close()
}
