package domain

var signingAlgorithms = []string{"RS256"}

// SigningAlgorithms returns the JWT algorithms the Auth0 tenant signs access tokens
// with. Each call returns a new slice.
func SigningAlgorithms() []string {
	return append([]string(nil), signingAlgorithms...)
}

const auth0TenantSuffix = ".auth0.com"

// AuthProvider describes the Auth0 application the frontend authenticates against.
// ClientID is the public client identifier, not a secret.
type AuthProvider struct {
	DomainPrefix string `koanf:"url" json:"url" validate:"required,hostname_rfc1123"`
	Audience     string `koanf:"audience" json:"audience" validate:"required"`
	ClientID     string `koanf:"clientId" json:"clientId" validate:"required,alphanum"`
	CallbackURL  string `koanf:"callbackURL" json:"callbackURL" validate:"required,http_url"`
}

// TenantDomain is the fully qualified Auth0 tenant host, e.g. dev-7pd1ay12.us.auth0.com.
func (a AuthProvider) TenantDomain() string {
	return a.DomainPrefix + auth0TenantSuffix
}

// Issuer is the value Auth0 puts in the iss claim. The trailing slash is significant.
func (a AuthProvider) Issuer() string {
	return "https://" + a.TenantDomain() + "/"
}

// JWKSURL is where the tenant publishes the keys that verify its tokens.
func (a AuthProvider) JWKSURL() string {
	return "https://" + a.TenantDomain() + "/.well-known/jwks.json"
}

// Environment is the configuration record for one build variant of the frontend.
// Field keys follow the frontend's environment.ts so the same names work in JSON
// override files and in rendered output.
type Environment struct {
	Production   bool         `koanf:"production" json:"production"`
	APIServerURL string       `koanf:"apiServerUrl" json:"apiServerUrl" validate:"required,http_url"`
	Auth0        AuthProvider `koanf:"auth0" json:"auth0"`
}
