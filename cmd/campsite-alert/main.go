package main

import "github.com/mshahgoogle/nps-campsite-scraper/internal/cli"

func main() {
	cli.Execute()
}
