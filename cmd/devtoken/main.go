// Command devtoken mints a signed bearer token for local development and
// testing. It reads the same environment configuration as the server, so a
// minted token is accepted by a server started in the same environment. In
// production tokens come from the identity provider, never from this tool.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/PedroM85/task-list/modules/auth"
)

func main() {
	sub := flag.String("sub", "", "subject id to embed in the token (required)")
	email := flag.String("email", "", "email claim (optional)")
	ttl := flag.Duration("ttl", time.Hour, "token lifetime")
	flag.Parse()

	if *sub == "" {
		log.Fatal("-sub is required")
	}

	verifier := auth.NewVerifier(auth.LoadConfig())
	token, err := verifier.Sign(*sub, *email, *ttl)
	if err != nil {
		log.Fatalf("Failed to sign token: %v", err)
	}

	fmt.Println(token)
}
