/*
Copyright © 2025 open-wc
*/
package main

import "github.com/Marvin1003/open-wc/cmd"

func main() {
	cmd.Execute()
}
