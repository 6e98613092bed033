// Command useradd provisions a user identity. There is no registration
// endpoint; identities are created out of band by an operator.
//
//	useradd -db reclamos.db -name "Juan" -email juan@example.com -password secret
package main

import (
	"flag"
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"

	"github.com/dukerupert/reclamos/internal/database"
	"github.com/dukerupert/reclamos/internal/store"
)

func main() {
	dbPath := flag.String("db", "reclamos.db", "path to the SQLite database")
	name := flag.String("name", "", "display name")
	email := flag.String("email", "", "login email (unique, case-insensitive)")
	password := flag.String("password", "", "plaintext password to hash")
	flag.Parse()

	if *name == "" || *email == "" || *password == "" {
		fmt.Fprintln(os.Stderr, "useradd: -name, -email and -password are required")
		flag.Usage()
		os.Exit(2)
	}

	db, err := database.Open(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "useradd: open database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "useradd: hash password: %v\n", err)
		os.Exit(1)
	}

	user, err := store.NewUserStore(db).Create(*name, *email, string(hash))
	if err == store.ErrConflict {
		fmt.Fprintf(os.Stderr, "useradd: a user with email %s already exists\n", *email)
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "useradd: create user: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("created user %d (%s)\n", user.ID, user.Email)
}
