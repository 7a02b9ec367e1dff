// Package main is the entry point for the school API.
package main

func main() {
	Execute()
}
