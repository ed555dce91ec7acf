// SPDX-License-Identifier: Apache-2.0
package main

import (
	"fmt"
	"os"
	"os/user"

	"triadc/repl"
)

func main() {
	currentUser, err := user.Current()
	if err != nil {
		fmt.Printf("Error getting current user: %v\n", err)
		return
	}

	fmt.Printf("Welcome to the triadc REPL, %s!\n", currentUser.Username)
	fmt.Println("Type statements such as 'a := 1; if a > 0 then b := a;' and press enter.")
	repl.Start(os.Stdin, os.Stdout)
}
