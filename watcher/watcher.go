// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package watcher - import statement files dropped into an inbox directory
//
// a file named HEIGHT.json holds the receipts body of one block, the
// producer should write it under another name and rename it into the
// inbox so that only complete files are seen
//
// after processing a file is renamed with a .done or .failed suffix
package watcher

import (
	"errors"
	"io/ioutil"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"

	"github.com/fsnotify/fsnotify"

	"github.com/bitmark-inc/logger"

	"github.com/catapult-tools/statementd/account"
	"github.com/catapult-tools/statementd/fault"
	"github.com/catapult-tools/statementd/mapping"
	"github.com/catapult-tools/statementd/resolver"
)

// suffixes for processed files
const (
	DoneSuffix   = ".done"
	FailedSuffix = ".failed"
)

// LoggerPrefix - tag for the watcher's log channel
const LoggerPrefix = "watcher"

var statementFile = regexp.MustCompile(`^([0-9]+)\.json$`)

// Importer - destination for the decoded statements
type Importer interface {
	Import(arguments *resolver.ImportArguments, reply *resolver.ImportReply) error
}

// Inbox - watched directory
type Inbox struct {
	log       *logger.L
	watcher   *fsnotify.Watcher
	directory string
	network   account.NetworkType
	importer  Importer
}

// New - create a watcher for an existing directory
func New(directory string, network account.NetworkType, importer Importer) (*Inbox, error) {
	log := logger.New(LoggerPrefix)

	dir, err := filepath.Abs(filepath.Clean(directory))
	if nil != err {
		log.Errorf("parse directory %s error: %s", directory, err)
		return nil, err
	}

	info, err := os.Stat(dir)
	if nil != err {
		return nil, err
	}
	if !info.IsDir() {
		return nil, errors.New("inbox is not a directory")
	}

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		log.Errorf("new watcher with error: %s", err)
		return nil, err
	}

	return &Inbox{
		log:       log,
		watcher:   watcher,
		directory: dir,
		network:   network,
		importer:  importer,
	}, nil
}

// Directory - absolute path of the inbox
func (w *Inbox) Directory() string {
	return w.directory
}

// Run - background process: scan, then import files as they arrive
func (w *Inbox) Run(args interface{}, shutdown <-chan struct{}) {
	defer w.watcher.Close()

	err := w.watcher.Add(w.directory)
	if nil != err {
		w.log.Criticalf("watcher add error: %s, abort", err)
		return
	}

	w.log.Infof("watching: %s", w.directory)
	w.Scan()

loop:
	for {
		select {
		case <-shutdown:
			break loop

		case event, ok := <-w.watcher.Events:
			if !ok {
				break loop
			}
			w.log.Debugf("file event: %v", event)
			if !eventFileCreate(event) {
				continue loop
			}
			if _, ok := heightOf(event.Name); !ok {
				w.log.Debugf("file %s not a statement file, discard event", event.Name)
				continue loop
			}
			_ = w.Process(event.Name)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				break loop
			}
			w.log.Errorf("watcher error: %s", err)
		}
	}

	w.log.Info("shutting down…")
}

// Scan - process every statement file already in the inbox, lowest
// height first
func (w *Inbox) Scan() int {
	infos, err := ioutil.ReadDir(w.directory)
	if nil != err {
		w.log.Errorf("read directory: %s  error: %s", w.directory, err)
		return 0
	}

	type pending struct {
		height uint64
		name   string
	}
	files := make([]pending, 0, len(infos))
	for _, info := range infos {
		if info.IsDir() {
			continue
		}
		if height, ok := heightOf(info.Name()); ok {
			files = append(files, pending{height: height, name: info.Name()})
		}
	}
	sort.Slice(files, func(i, j int) bool {
		return files[i].height < files[j].height
	})

	n := 0
	for _, f := range files {
		if nil == w.Process(filepath.Join(w.directory, f.name)) {
			n += 1
		}
	}
	return n
}

// Process - import one statement file and mark it done or failed
//
// a height that is already archived counts as done
func (w *Inbox) Process(fileName string) error {
	height, ok := heightOf(fileName)
	if !ok {
		return fault.ErrInvalidHeight
	}

	err := w.importFile(height, fileName)
	if nil == err || errors.Is(err, fault.ErrStatementAlreadyArchived) {
		if nil != err {
			w.log.Warnf("file: %s  height: %d already archived", fileName, height)
		}
		w.rename(fileName, DoneSuffix)
		return nil
	}

	w.log.Errorf("file: %s  height: %d  error: %s", fileName, height, err)
	w.rename(fileName, FailedSuffix)
	return err
}

func (w *Inbox) importFile(height uint64, fileName string) error {
	buffer, err := ioutil.ReadFile(fileName)
	if nil != err {
		return err
	}

	_, dto, err := mapping.StatementFromJSON(buffer, w.network)
	if nil != err {
		return err
	}

	var reply resolver.ImportReply
	err = w.importer.Import(&resolver.ImportArguments{
		Height:     height,
		Statements: dto,
	}, &reply)
	if nil != err {
		return err
	}

	w.log.Infof("file: %s  height: %d  statements: %d  root: %s", fileName, height, reply.Statements, reply.Root)
	return nil
}

func (w *Inbox) rename(fileName string, suffix string) {
	if err := os.Rename(fileName, fileName+suffix); nil != err {
		w.log.Errorf("rename: %s  error: %s", fileName, err)
	}
}

// height from a HEIGHT.json file name
func heightOf(fileName string) (uint64, bool) {
	match := statementFile.FindStringSubmatch(filepath.Base(fileName))
	if nil == match {
		return 0, false
	}
	height, err := strconv.ParseUint(match[1], 10, 64)
	if nil != err {
		return 0, false
	}
	return height, true
}

func eventFileCreate(event fsnotify.Event) bool {
	return event.Op&fsnotify.Create == fsnotify.Create
}
