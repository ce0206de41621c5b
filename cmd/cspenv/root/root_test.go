package root

import (
	"aggregat4/cspenv/internal/environment"
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the command tree with an empty override file so a config file in
// the user's config directory cannot leak into the result.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	configFile := filepath.Join(t.TempDir(), "cspenv.json")
	require.NoError(t, os.WriteFile(configFile, []byte(`{}`), 0o600))
	// the production variant has no default URLs
	t.Setenv("CSP_API_SERVER_URL", "http://127.0.0.1:5000")
	t.Setenv("CSP_AUTH0_CALLBACK_URL", "http://localhost:8100")

	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--config", configFile}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestVariant(t *testing.T) {
	out, err := run(t, "variant")
	require.NoError(t, err)
	assert.Equal(t, environment.Name+"\n", out)
}

func TestRenderTypeScript(t *testing.T) {
	out, err := run(t, "render", "--format", "ts")
	require.NoError(t, err)
	assert.Contains(t, out, "export const environment = {")
	assert.Contains(t, out, "apiServerUrl: 'http://127.0.0.1:5000',")
	assert.Contains(t, out, "callbackURL: 'http://localhost:8100',")
}

func TestRenderDefaultsToJSON(t *testing.T) {
	out, err := run(t, "render")
	require.NoError(t, err)
	assert.Contains(t, out, `"apiServerUrl": "http://127.0.0.1:5000"`)
}

func TestRenderToFile(t *testing.T) {
	output := filepath.Join(t.TempDir(), "environment.ts")
	out, err := run(t, "render", "-f", "ts", "-o", output)
	require.NoError(t, err)
	assert.Empty(t, out)

	content, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(content), "export const environment = {")
}

func TestRenderUnknownFormat(t *testing.T) {
	_, err := run(t, "render", "--format", "xml")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	out, err := run(t, "validate")
	require.NoError(t, err)
	assert.Equal(t, environment.Name+" configuration is valid\n", out)
}

func TestValidateReportsInvalidValues(t *testing.T) {
	t.Setenv("CSP_AUTH0_CLIENT_ID", "not-alphanumeric")
	_, err := run(t, "validate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "auth0.clientId")
}

func TestAuth0(t *testing.T) {
	t.Setenv("CSP_AUTH0_URL", "dev-7pd1ay12.us")
	out, err := run(t, "auth0")
	require.NoError(t, err)
	assert.Contains(t, out, "issuer:     https://dev-7pd1ay12.us.auth0.com/\n")
	assert.Contains(t, out, "jwks:       https://dev-7pd1ay12.us.auth0.com/.well-known/jwks.json\n")
	assert.Contains(t, out, "algorithms: RS256\n")
}

func TestExplicitConfigFileMustExist(t *testing.T) {
	cmd := NewRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"--config", filepath.Join(t.TempDir(), "missing.json"), "render"})
	assert.Error(t, cmd.Execute())
}
