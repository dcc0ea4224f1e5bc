// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"

	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"

	"github.com/bitmark-inc/listingd/fault"
	"github.com/bitmark-inc/listingd/util"
)

const (
	fileWatcherLoggerPrefix = "file-watcher"
)

type watcherChannel struct {
	change chan struct{}
	remove chan struct{}
}

type fileWatcher struct {
	log      *logger.L
	channels watcherChannel
	watcher  *fsnotify.Watcher
	filePath string
	done     chan struct{}
}

func newFileWatcher(targetFile string, log *logger.L, channels watcherChannel) (*fileWatcher, error) {
	filePath, err := filepath.Abs(filepath.Clean(targetFile))
	if nil != err {
		log.Errorf("parse file %s error: %s", targetFile, err)
		return nil, err
	}

	if !util.EnsureFileExists(filePath) {
		return nil, fault.ErrFileNotFound
	}

	return &fileWatcher{
		log:      log,
		channels: channels,
		filePath: filePath,
	}, nil
}

// Start - watch the file in a background goroutine
func (w *fileWatcher) Start() error {
	if nil != w.watcher {
		return fault.ErrAlreadyInitialised
	}

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		w.log.Errorf("new watcher with error: %s", err)
		return err
	}
	if err := watcher.Add(w.filePath); nil != err {
		w.log.Errorf("watcher add error: %s, abort", err)
		watcher.Close()
		return err
	}
	w.watcher = watcher
	w.done = make(chan struct{})

	go w.loop(watcher.Events, watcher.Errors, w.done)
	return nil
}

// Stop - end the background goroutine and release the watcher
func (w *fileWatcher) Stop() error {
	if nil == w.watcher {
		return fault.ErrWatcherNotInitialised
	}
	err := w.watcher.Close()
	<-w.done
	w.watcher = nil
	return err
}

func (w *fileWatcher) loop(events <-chan fsnotify.Event, errors <-chan error, done chan<- struct{}) {
	defer close(done)
	for {
		select {
		case event, ok := <-events:
			if !ok {
				return
			}
			w.log.Debugf("file event: %v", event)

			if filepath.Base(event.Name) != filepath.Base(w.filePath) {
				w.log.Debugf("event for %q does not match, discard", event.Name)
				continue
			}

			if watcherEventFileRemove(event) {
				w.log.Warnf("file %s removed, stop", w.filePath)
				w.sendEvent(w.channels.remove, "remove")
				return
			}

			if watcherEventFileChange(event) {
				w.log.Info("sending file change event")
				w.sendEvent(w.channels.change, "change")
			}

		case err, ok := <-errors:
			if !ok {
				return
			}
			w.log.Errorf("watcher error: %s", err)
		}
	}
}

func (w *fileWatcher) sendEvent(ch chan<- struct{}, name string) {
	select {
	case ch <- struct{}{}:
	default:
		w.log.Debugf("event channel %s full, discard event", name)
	}
}

func watcherEventFileRemove(event fsnotify.Event) bool {
	return event.Op&fsnotify.Remove == fsnotify.Remove ||
		event.Op&fsnotify.Rename == fsnotify.Rename
}

func watcherEventFileChange(event fsnotify.Event) bool {
	return event.Op&fsnotify.Write == fsnotify.Write ||
		event.Op&fsnotify.Create == fsnotify.Create
}
