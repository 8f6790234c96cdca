// Package main provides the Ember ML Framework CLI.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/ember-ml/ember/backend/cpu"
	"github.com/ember-ml/ember/tensor"
)

const version = "v0.0.1-dev"

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version":
			fmt.Printf("Ember ML Framework %s\n", version)
			return
		case "sample":
			if err := sample(os.Args[2:]); err != nil {
				fmt.Fprintln(os.Stderr, "ember:", err)
				os.Exit(1)
			}
			return
		}
	}

	fmt.Println("Ember ML Framework - Random Tensor Generation for Go")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version              Show version")
	fmt.Println("  sample <dist> [n]    Print n samples (dist: uniform, normal, randint, randperm)")
}

// sample prints a small tensor from the requested distribution.
func sample(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("sample: missing distribution (uniform, normal, randint, randperm)")
	}
	n := 8
	if len(args) > 1 {
		v, err := strconv.Atoi(args[1])
		if err != nil || v < 1 {
			return fmt.Errorf("sample: invalid count %q", args[1])
		}
		n = v
	}

	backend := cpu.New()
	shape := tensor.Shape{n}

	switch args[0] {
	case "uniform":
		t := tensor.Rand[float32](shape, backend)
		fmt.Println(t.Data())
	case "normal":
		t := tensor.Randn[float32](shape, backend)
		fmt.Println(t.Data())
	case "randint":
		t, err := tensor.RandInt[int64](0, 100, shape, backend)
		if err != nil {
			return err
		}
		fmt.Println(t.Data())
	case "randperm":
		t, err := tensor.RandPerm[int64](n, backend)
		if err != nil {
			return err
		}
		fmt.Println(t.Data())
	default:
		return fmt.Errorf("sample: unknown distribution %q", args[0])
	}
	return nil
}
