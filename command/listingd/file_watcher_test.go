// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/listingd/fault"
)

const (
	watcherTimeout = 5 * time.Second
)

func newTestWatcher(t *testing.T) (*fileWatcher, watcherChannel, string) {
	fileName := filepath.Join(t.TempDir(), "listings.csv")
	require.NoError(t, os.WriteFile(fileName, []byte(testData), 0o600))

	channels := watcherChannel{
		change: make(chan struct{}, 1),
		remove: make(chan struct{}, 1),
	}
	w, err := newFileWatcher(fileName, logger.New(fileWatcherLoggerPrefix), channels)
	require.NoError(t, err)
	return w, channels, fileName
}

func TestFileWatcherMissingFile(t *testing.T) {
	channels := watcherChannel{
		change: make(chan struct{}, 1),
		remove: make(chan struct{}, 1),
	}
	_, err := newFileWatcher(filepath.Join(t.TempDir(), "absent.csv"), logger.New(fileWatcherLoggerPrefix), channels)
	assert.Equal(t, fault.ErrFileNotFound, err)
}

func TestFileWatcherStartStop(t *testing.T) {
	w, _, _ := newTestWatcher(t)

	assert.Equal(t, fault.ErrWatcherNotInitialised, w.Stop())
	require.NoError(t, w.Start())
	assert.Equal(t, fault.ErrAlreadyInitialised, w.Start())
	assert.NoError(t, w.Stop())
	assert.Equal(t, fault.ErrWatcherNotInitialised, w.Stop())
}

func TestFileWatcherChangeAndRemove(t *testing.T) {
	w, channels, fileName := newTestWatcher(t)
	require.NoError(t, w.Start())
	defer w.Stop()

	f, err := os.OpenFile(fileName, os.O_APPEND|os.O_WRONLY, 0o600)
	require.NoError(t, err)
	_, err = f.WriteString("d,Antioquia,Medellín,Casa,6.2,-75.5,100,100,1,1,Venta,400\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	select {
	case <-channels.change:
	case <-time.After(watcherTimeout):
		t.Fatal("no change event")
	}

	require.NoError(t, os.Remove(fileName))

	select {
	case <-channels.remove:
	case <-time.After(watcherTimeout):
		t.Fatal("no remove event")
	}
}

func TestWatcherEventClassification(t *testing.T) {
	event := func(op fsnotify.Op) fsnotify.Event {
		return fsnotify.Event{Name: "listings.csv", Op: op}
	}
	assert.True(t, watcherEventFileRemove(event(fsnotify.Remove)))
	assert.True(t, watcherEventFileRemove(event(fsnotify.Rename)))
	assert.False(t, watcherEventFileRemove(event(fsnotify.Write)))
	assert.True(t, watcherEventFileChange(event(fsnotify.Write)))
	assert.True(t, watcherEventFileChange(event(fsnotify.Create)))
	assert.False(t, watcherEventFileChange(event(fsnotify.Chmod)))
}
