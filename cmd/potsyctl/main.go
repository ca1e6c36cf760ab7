package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		outputError(os.Stderr, err)
		os.Exit(1)
	}
}
