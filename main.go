package main

import "github.com/foodcart/restorank/cmd"

func main() {
	cmd.Execute()
}
