// Command tokengen prints a signed caller token for a participant address.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/Lexv0lk/reward-ledger/internal/pkg/jwt"
	"github.com/ethereum/go-ethereum/common"
)

func main() {
	var address string
	var ttl time.Duration

	flag.StringVar(&address, "address", "", "participant address the token is issued for")
	flag.DurationVar(&ttl, "ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		fmt.Fprintln(os.Stderr, "Error: JWT_SECRET must be set")
		os.Exit(1)
	}

	if !common.IsHexAddress(address) {
		fmt.Fprintf(os.Stderr, "Error: %q is not a valid address\n", address)
		os.Exit(1)
	}

	token, err := jwt.NewJWTTokenIssuer().IssueToken([]byte(secret), common.HexToAddress(address), ttl)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(token)
}
