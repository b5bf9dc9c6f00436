package main

import "github.com/faizfusion/saharenau/cmd"

func main() {
	cmd.Execute()
}
