//go:build !production

package environment

import "aggregat4/cspenv/internal/domain"

const Name = "development"

var development = domain.Environment{
	Production:   false,
	APIServerURL: "http://127.0.0.1:5000",
	Auth0: domain.AuthProvider{
		DomainPrefix: "dev-7pd1ay12.us",
		Audience:     "csp",
		ClientID:     "Mnklb3JieemcoAmtNaG1rGGbXTdrkjht",
		CallbackURL:  "http://localhost:8100",
	},
}

func current() domain.Environment {
	return development
}
