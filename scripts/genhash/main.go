// Generates bcrypt hashes for seeding demo accounts.
package main

import (
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: genhash <password> [password...]")
		os.Exit(1)
	}

	for _, pass := range os.Args[1:] {
		hash, err := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
		if err != nil {
			fmt.Println("Error:", err)
			continue
		}
		fmt.Printf("Password: %s\nHash: %s\n\n", pass, string(hash))
	}
}
