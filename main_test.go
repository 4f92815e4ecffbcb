//go:build !windows

package main_test

import (
	"os"
	"testing"

	"fortio.org/testscript"
	main "pinego.io/pinego"
)

func TestMain(m *testing.M) {
	os.Exit(testscript.RunMain(m, map[string]func() int{
		"pinego": main.Main,
	}))
}

func TestPinegoCli(t *testing.T) {
	testscript.Run(t, testscript.Params{Dir: "testdata"})
}
