// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"
	"reflect"

	"github.com/fsnotify/fsnotify"

	"github.com/bitmark-inc/logger"
)

const watcherLoggerPrefix = "config-watcher"

// configurationWatcher - follow the configuration file while running
//
// a changed file is re-read and checked; settings only take effect
// after a restart, so the differences are logged
// removing the file requests a shutdown
type configurationWatcher struct {
	log       *logger.L
	watcher   *fsnotify.Watcher
	fileName  string
	variables map[string]string
	current   *Configuration
	removed   chan struct{}
	done      chan struct{}
}

func newConfigurationWatcher(fileName string, variables map[string]string, current *Configuration) (*configurationWatcher, error) {
	log := logger.New(watcherLoggerPrefix)

	fileName, err := filepath.Abs(filepath.Clean(fileName))
	if nil != err {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		log.Errorf("new watcher error: %s", err)
		return nil, err
	}

	return &configurationWatcher{
		log:       log,
		watcher:   watcher,
		fileName:  fileName,
		variables: variables,
		current:   current,
		removed:   make(chan struct{}, 1),
		done:      make(chan struct{}),
	}, nil
}

// Start - watch the directory, editors often replace the file
func (w *configurationWatcher) Start() error {
	err := w.watcher.Add(filepath.Dir(w.fileName))
	if nil != err {
		w.log.Errorf("watcher add: %q  error: %s", w.fileName, err)
		return err
	}

	go w.run()
	return nil
}

// Removed - receives once the configuration file disappears
func (w *configurationWatcher) Removed() <-chan struct{} {
	return w.removed
}

// Close - stop watching
func (w *configurationWatcher) Close() error {
	err := w.watcher.Close()
	<-w.done
	return err
}

func (w *configurationWatcher) run() {
	defer close(w.done)

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.fileName {
				continue
			}
			w.log.Debugf("file event: %v", event)

			switch {
			case 0 != event.Op&(fsnotify.Remove|fsnotify.Rename):
				w.log.Warnf("configuration: %q removed", w.fileName)
				w.sendRemoved()
			case 0 != event.Op&(fsnotify.Write|fsnotify.Create):
				w.reload()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Errorf("watcher error: %s", err)
		}
	}
}

func (w *configurationWatcher) sendRemoved() {
	select {
	case w.removed <- struct{}{}:
	default:
	}
}

func (w *configurationWatcher) reload() {
	updated, err := getConfiguration(w.fileName, w.variables)
	if nil != err {
		w.log.Errorf("configuration: %q  error: %s", w.fileName, err)
		return
	}
	for _, name := range changedSettings(w.current, updated) {
		w.log.Warnf("setting: %s changed, restart required", name)
	}
}

// names of the top level settings that differ
func changedSettings(current *Configuration, updated *Configuration) []string {
	changed := []string{}

	a := reflect.ValueOf(current).Elem()
	b := reflect.ValueOf(updated).Elem()
	t := a.Type()

	for i := 0; i < t.NumField(); i += 1 {
		if !reflect.DeepEqual(a.Field(i).Interface(), b.Field(i).Interface()) {
			name := t.Field(i).Tag.Get("gluamapper")
			if "" == name {
				name = t.Field(i).Name
			}
			changed = append(changed, name)
		}
	}
	return changed
}
