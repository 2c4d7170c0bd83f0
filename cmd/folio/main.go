package main

// Version is set at build time
var Version = "dev"

func main() {
	Execute()
}
