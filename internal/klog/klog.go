// Package klog builds the single shared logger this module's ambient
// concerns log through (manager, cmd/kuidemo). Library packages (key, kui,
// kui/source, kui/term) never log — only the composition layer does,
// matching the teacher's own nex/exec and main as its only packages that
// log or exit the process, while nex/graph and nex/parser stay silent.
package klog

import "github.com/sirupsen/logrus"

// New builds a text-formatted logger writing to stderr at infoLevel,
// dropping to debug when debug is true.
func New(debug bool) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if debug {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.InfoLevel)
	}
	return log
}
