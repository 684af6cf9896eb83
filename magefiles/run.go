//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Runs the demo program against the sample configuration.
func (Run) Demo() error {
	mg.Deps(Test.Unit)
	fmt.Println("Run demo...")
	if _, err := executeCmd("go", withArgs("run", ".", "-config", "config/engine.toml"), withStream()); err != nil {
		return err
	}
	return nil
}
