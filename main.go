// SPDX-License-Identifier: Apache-2.0
package main

import (
	"fmt"
	"os"
	"os/user"

	"sola/repl"
)

func main() {
	currentUser, err := user.Current()
	if err != nil {
		fmt.Printf("Error getting current user: %v\n", err)
		return
	}

	fmt.Printf("Welcome to the Sola REPL, %s!\n", currentUser.Username)
	repl.Start(os.Stdin, os.Stdout)
}
