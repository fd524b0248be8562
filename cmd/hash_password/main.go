// Command hash_password prints an argon2id hash for provisioning users.
//
//	hash_password --password secreto123 --usuario admin --email admin@example.com
//
// With --usuario the matching INSERT statement for aa_usr_usuario is printed as well.
// --gen-key prints a random value suitable for JWT_KEY instead.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/quala/sucursales_api/internal/utils"
)

func main() {
	password := pflag.StringP("password", "p", "", "plaintext password to hash")
	usuario := pflag.StringP("usuario", "u", "", "username for the generated INSERT statement")
	email := pflag.StringP("email", "e", "", "email for the generated INSERT statement")
	genKey := pflag.Bool("gen-key", false, "print a random JWT signing key and exit")
	pflag.Parse()

	if *genKey {
		key, err := utils.GenerateSecureRandomString(32)
		if err != nil {
			fmt.Fprintln(os.Stderr, "failed to generate key:", err)
			os.Exit(1)
		}
		fmt.Println(key)
		return
	}

	if len(*password) < 6 {
		fmt.Fprintln(os.Stderr, "--password is required and must have at least 6 characters")
		pflag.Usage()
		os.Exit(2)
	}

	hash, err := utils.HashPassword(*password)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to hash password:", err)
		os.Exit(1)
	}

	if *usuario == "" {
		fmt.Println(hash)
		return
	}

	fmt.Printf("INSERT INTO aa_usr_usuario (nombre_usuario, email, password_hash, activo) VALUES (%s, %s, %s, TRUE);\n",
		sqlQuote(*usuario), sqlQuote(*email), sqlQuote(hash))
}

func sqlQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
