// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/listingd/avl"
	"github.com/bitmark-inc/listingd/entry"
	"github.com/bitmark-inc/listingd/fault"
	"github.com/bitmark-inc/listingd/listing"
	"github.com/bitmark-inc/listingd/loader"
)

const (
	loaderLoggerPrefix = "loader"
)

// the loaded tree and what is needed to reload it
//
// only the main goroutine touches the tree
type application struct {
	log           *logger.L
	configuration *Configuration
	tree          *avl.Tree
	summary       loader.Summary
	verbose       bool
	quiet         bool
}

// load the data file into a fresh tree
func (app *application) rebuild() error {
	records, summary, err := loader.LoadFile(app.configuration.DataFile, logger.New(loaderLoggerPrefix))
	if nil != err {
		return err
	}

	tree := avl.New(app.configuration.tieBreak())
	loader.Populate(tree, records)

	app.tree = tree
	app.summary = summary
	app.log.Infof("tree: count: %d  height: %d  rotations: %+v  tie break: %s", tree.Count(), tree.Height(), tree.Rotations(), tree.TieBreak())
	return nil
}

func (app *application) printSummary() {
	fmt.Printf("file:       %s\n", app.configuration.DataFile)
	fmt.Printf("rows:       %d\n", app.summary.Rows)
	fmt.Printf("rejected:   %d\n", app.summary.Rejected)
	fmt.Printf("records:    %d\n", app.tree.Count())
	fmt.Printf("height:     %d\n", app.tree.Height())
	fmt.Printf("rotations:  left: %d  right: %d\n", app.tree.Rotations().Left, app.tree.Rotations().Right)
	fmt.Printf("tie break:  %s\n", app.tree.TieBreak())
}

func (app *application) printLevelOrder() {
	if app.quiet {
		return
	}
	it := app.tree.LevelOrder()
	for r, ok := it.NextRecord(); ok; r, ok = it.NextRecord() {
		fmt.Printf("%s\n", r)
	}
}

func (app *application) printInOrder() {
	if app.quiet {
		return
	}
	for _, r := range app.inOrderRecords() {
		fmt.Printf("%s\n", r)
	}
}

func (app *application) inOrderRecords() []listing.Record {
	records := make([]listing.Record, 0, app.tree.Count())
	app.tree.InOrder(func(p *avl.Node) bool {
		records = append(records, p.Record())
		return true
	})
	return records
}

// read records until end of input, an invalid record is reported and
// skipped; returns the number inserted
func (app *application) addInteractive(p *entry.Prompter) int {
	n := 0
	for {
		r, err := p.ReadRecord()
		if io.EOF == err {
			fmt.Printf("\n")
			return n
		}
		if fault.IsErrInvalid(err) {
			fmt.Printf("rejected: %s\n", err)
			app.log.Warnf("interactive record rejected: %s", err)
			continue
		}
		if nil != err {
			app.log.Errorf("interactive input error: %s", err)
			return n
		}

		app.tree.Insert(r)
		n += 1
		app.log.Infof("inserted: %s", r)
		fmt.Printf("inserted: %v\n", avl.KeyOf(r))
	}
}

// rebuild on each change to the data file until it is removed or a
// signal arrives
func (app *application) watch() error {
	channels := watcherChannel{
		change: make(chan struct{}, 1),
		remove: make(chan struct{}, 1),
	}
	watcher, err := newFileWatcher(app.configuration.DataFile, logger.New(fileWatcherLoggerPrefix), channels)
	if nil != err {
		return err
	}
	if err := watcher.Start(); nil != err {
		return err
	}
	defer watcher.Stop()

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(ch)

	app.log.Infof("watching: %q", app.configuration.DataFile)
	for {
		select {
		case <-channels.change:
			if err := app.rebuild(); nil != err {
				app.log.Errorf("reload: %q  error: %s", app.configuration.DataFile, err)
				continue
			}
			if !app.quiet {
				app.printSummary()
			}
		case <-channels.remove:
			app.log.Warnf("data file removed: %q", app.configuration.DataFile)
			return fault.ErrFileNotFound
		case sig := <-ch:
			app.log.Infof("received signal: %v", sig)
			return nil
		}
	}
}
