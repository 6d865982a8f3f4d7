package main

import "os"

func main() {
	a := newApp()
	if err := a.rootCmd().Execute(); err != nil {
		a.log.Errorf("%v", err)
		os.Exit(1)
	}
}
