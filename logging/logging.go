/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package logging

import (
	. "github.com/IBM/SSS/types"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type zapLogger struct {
	debugEnabled bool
	*zap.SugaredLogger
}

func (zl *zapLogger) DebugEnabled() bool {
	return zl.debugEnabled
}

// New returns a zap backed Logger. A debug logger uses zap's development config.
func New(debug bool, fields ...zap.Field) (Logger, error) {
	logConfig := zap.NewProductionConfig()
	if debug {
		logConfig = zap.NewDevelopmentConfig()
	}

	logger, err := logConfig.Build()
	if err != nil {
		return nil, err
	}

	return &zapLogger{
		SugaredLogger: logger.With(fields...).Sugar(),
		debugEnabled:  logConfig.Level.Enabled(zapcore.DebugLevel),
	}, nil
}

// Nop returns a Logger that discards everything.
func Nop() Logger {
	return &zapLogger{SugaredLogger: zap.NewNop().Sugar()}
}

// OrNop returns l, or a discarding Logger if l is nil.
func OrNop(l Logger) Logger {
	if l == nil {
		return Nop()
	}
	return l
}
