// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"
	"io"
	"os"
	"path"
	"sync"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ava-labs/fvm/utils"
)

const loggerName = "fvm-cli"

// logger discards everything until initLogger runs and after closeLogger.
var (
	logger  logging.Logger = logging.NoLog{}
	factory *logFactory
)

// initLogger writes JSON logs to a rotating file in the config directory.
// Console output is only enabled with --verbose so stdout and stderr stay
// clean for piping.
func initLogger(cmd *cobra.Command, _ []string) error {
	logLevel, err := cmd.Flags().GetString("log-level")
	if err != nil {
		return err
	}
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		return err
	}

	dir, err := configDir()
	if err != nil {
		return err
	}
	logDir, err := utils.InitSubDirectory(dir, "logs")
	if err != nil {
		return err
	}

	loggingConfig := logging.Config{}
	loggingConfig.LogLevel, err = logging.ToLevel(logLevel)
	if err != nil {
		return err
	}
	loggingConfig.Directory = logDir
	loggingConfig.LogFormat = logging.JSON
	loggingConfig.MaxSize = 8
	loggingConfig.MaxFiles = 3
	loggingConfig.MaxAge = 7
	loggingConfig.DisableWriterDisplaying = !verbose

	factory = newLogFactory(loggingConfig)
	logger, err = factory.Make(loggerName)
	if err != nil {
		factory.Close()
		factory = nil
		logger = logging.NoLog{}
		return err
	}
	logger.Debug("logger initialized",
		zap.String("log-level", logLevel),
		zap.String("command", cmd.CommandPath()),
	)
	return nil
}

func closeLogger() {
	if factory != nil {
		factory.Close()
		factory = nil
	}
	logger = logging.NoLog{}
}

type logFactory struct {
	config logging.Config
	lock   sync.RWMutex

	// Logger name --> the logger.
	loggers map[string]logging.Logger
}

// newLogFactory returns a factory producing loggers configured with the
// values set in [config]. Unlike the avalanchego factory, the console core
// can be muted.
func newLogFactory(config logging.Config) *logFactory {
	return &logFactory{
		config:  config,
		loggers: make(map[string]logging.Logger),
	}
}

// Assumes [f.lock] is held
func (f *logFactory) makeLogger(config logging.Config) (logging.Logger, error) {
	if _, ok := f.loggers[config.LoggerName]; ok {
		return nil, fmt.Errorf("logger with name %q already exists", config.LoggerName)
	}
	consoleEnc := logging.Colors.ConsoleEncoder()
	fileEnc := config.LogFormat.FileEncoder()

	var consoleWriter io.WriteCloser
	if config.DisableWriterDisplaying {
		consoleWriter = newDiscardWriteCloser()
	} else {
		consoleWriter = os.Stderr
	}

	consoleCore := logging.NewWrappedCore(config.LogLevel, consoleWriter, consoleEnc)
	consoleCore.WriterDisabled = config.DisableWriterDisplaying

	rw := &lumberjack.Logger{
		Filename:   path.Join(config.Directory, config.LoggerName+".log"),
		MaxSize:    config.MaxSize,  // megabytes
		MaxAge:     config.MaxAge,   // days
		MaxBackups: config.MaxFiles, // files
		Compress:   config.Compress,
	}
	fileCore := logging.NewWrappedCore(config.LogLevel, rw, fileEnc)
	prefix := config.LogFormat.WrapPrefix(config.MsgPrefix)

	l := logging.NewLogger(prefix, consoleCore, fileCore)
	f.loggers[config.LoggerName] = l
	return l, nil
}

func (f *logFactory) Make(name string) (logging.Logger, error) {
	f.lock.Lock()
	defer f.lock.Unlock()

	config := f.config
	config.LoggerName = name
	return f.makeLogger(config)
}

func (f *logFactory) Close() {
	f.lock.Lock()
	defer f.lock.Unlock()

	for _, l := range f.loggers {
		l.Stop()
	}
	f.loggers = nil
}

type discardWriteCloser struct {
	io.Writer
}

func newDiscardWriteCloser() *discardWriteCloser {
	return &discardWriteCloser{io.Discard}
}

// Close implements the io.Closer interface.
func (*discardWriteCloser) Close() error {
	return nil
}
