//go:build production

package environment

import "aggregat4/cspenv/internal/domain"

const Name = "production"

// Set at link time, e.g.
//
//	go build -tags production -ldflags "-X aggregat4/cspenv/internal/environment.apiServerURL=https://api.example.org"
//
// The URLs have no usable default; cspenv validate reports them until they are set.
var (
	apiServerURL      = ""
	auth0DomainPrefix = "dev-7pd1ay12.us"
	auth0Audience     = "csp"
	auth0ClientID     = "Mnklb3JieemcoAmtNaG1rGGbXTdrkjht"
	auth0CallbackURL  = ""
)

func current() domain.Environment {
	return domain.Environment{
		Production:   true,
		APIServerURL: apiServerURL,
		Auth0: domain.AuthProvider{
			DomainPrefix: auth0DomainPrefix,
			Audience:     auth0Audience,
			ClientID:     auth0ClientID,
			CallbackURL:  auth0CallbackURL,
		},
	}
}
