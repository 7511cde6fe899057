// Copyright 2026 Wei Tang. All rights reserved.
// Use of this source code is governed by a GNU-style
// license that can be found in the LICENSE file.

package at91pm

import (
	"github.com/sirupsen/logrus"
)

var (
	logger *logrus.Logger = nil
)

const MaxLogLevel = logrus.DebugLevel

func init() {
	logger = logrus.New()
}

func SetLogger(loggerInstance *logrus.Logger) {

	logger = loggerInstance
}
