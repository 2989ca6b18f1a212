// Command tokengen issues a signed bearer token for AssessHub.
//
// It is a development and operations helper. The signing key, issuer, and
// TTL must match the running server's token configuration or the token will
// be rejected.
//
// Usage:
//
//	tokengen -key <signing-key> -subject alice@example.com -name "Alice" -role auditor
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/secassess/assesshub/internal/app/system/auth"
	"github.com/secassess/assesshub/internal/app/system/authz"
)

func main() {
	var (
		key     = flag.String("key", os.Getenv("ASSESSHUB_TOKEN_SIGNING_KEY"), "HMAC signing key (defaults to ASSESSHUB_TOKEN_SIGNING_KEY)")
		issuer  = flag.String("issuer", "assesshub", "issuer claim")
		ttl     = flag.Duration("ttl", 12*time.Hour, "token lifetime")
		subject = flag.String("subject", "", "subject claim, typically an email address")
		name    = flag.String("name", "", "display name claim")
		role    = flag.String("role", authz.RoleViewer, "role claim: admin, auditor, or viewer")
	)
	flag.Parse()

	if *key == "" {
		fatal("a signing key is required (-key or ASSESSHUB_TOKEN_SIGNING_KEY)")
	}
	if *subject == "" {
		fatal("-subject is required")
	}
	if !authz.IsValidRole(*role) {
		fatal(fmt.Sprintf("invalid role %q, must be one of %s", *role, strings.Join(authz.AllRoles, ", ")))
	}

	tm, err := auth.NewTokenManager(*key, *issuer, *ttl, zap.NewNop())
	if err != nil {
		fatal(err.Error())
	}

	token, err := tm.Issue(*subject, *name, *role)
	if err != nil {
		fatal(err.Error())
	}

	fmt.Println(token)
}

func fatal(msg string) {
	fmt.Fprintln(os.Stderr, "tokengen:", msg)
	os.Exit(1)
}
