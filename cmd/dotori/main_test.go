package main

import (
	"os"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShutdownSignals(t *testing.T) {
	assert.ElementsMatch(t, []os.Signal{os.Interrupt, syscall.SIGTERM}, shutdownSignals)
}
