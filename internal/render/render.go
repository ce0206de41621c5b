// Package render writes the configuration record in the formats the frontend build
// consumes.
package render

import (
	"aggregat4/cspenv/internal/config"
	"aggregat4/cspenv/internal/domain"
	"aggregat4/cspenv/pkg/lang"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/joho/godotenv"
)

const (
	FormatJSON       = "json"
	FormatTypeScript = "ts"
	FormatDotenv     = "env"
)

var Formats = []string{FormatJSON, FormatTypeScript, FormatDotenv}

func Write(w io.Writer, format string, e domain.Environment) error {
	switch format {
	case FormatJSON:
		return JSON(w, e)
	case FormatTypeScript:
		return TypeScript(w, e)
	case FormatDotenv:
		return Dotenv(w, e)
	default:
		return fmt.Errorf("unknown format %q, expected one of %s", format, strings.Join(Formats, ", "))
	}
}

func JSON(w io.Writer, e domain.Environment) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(e)
}

var tsTemplate = template.Must(template.New("environment.ts").Funcs(template.FuncMap{
	"quote": quoteTS,
}).Parse(`export const environment = {
  production: {{.Production}},
  apiServerUrl: {{quote .APIServerURL}},
  auth0: {
    url: {{quote .Auth0.DomainPrefix}},
    audience: {{quote .Auth0.Audience}},
    clientId: {{quote .Auth0.ClientID}},
    callbackURL: {{quote .Auth0.CallbackURL}},
  }
};
`))

// quoteTS returns s as a single-quoted TypeScript string literal. Control characters
// and the U+2028/U+2029 line separators are escaped, since they end a line in source.
func quoteTS(s string) string {
	var b strings.Builder
	b.WriteByte('\'')
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '\'':
			b.WriteString(`\'`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\u2028', '\u2029':
			fmt.Fprintf(&b, `\u%04x`, r)
		default:
			if r < 0x20 || r == 0x7f {
				fmt.Fprintf(&b, `\x%02x`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('\'')
	return b.String()
}

// TypeScript writes an environment module that can replace the frontend's
// src/environments/environment.ts.
func TypeScript(w io.Writer, e domain.Environment) error {
	return tsTemplate.Execute(w, struct {
		domain.Environment
		Production string
	}{e, lang.IfElse(e.Production, "true", "false")})
}

func Dotenv(w io.Writer, e domain.Environment) error {
	out, err := godotenv.Marshal(config.EnvMap(e))
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out+"\n")
	return err
}
