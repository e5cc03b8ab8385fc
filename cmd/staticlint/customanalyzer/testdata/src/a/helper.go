package main

import "os"

func helper() {
	os.Exit(1)
}
