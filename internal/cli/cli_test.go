package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"
	"github.com/sethvargo/go-envconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAPI struct {
	role    string
	patches atomic.Int32
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	switch {
	case r.Method == http.MethodPost && r.URL.Path == "/auth/login":
		fmt.Fprintf(w, `{"accessToken":"tok","usuario":{"correo":"ana@club.org","nombre":"Ana","rol":%q}}`, f.role)
	case r.Method == http.MethodGet && r.URL.Path == "/convocatorias/public":
		if r.Header.Get("Authorization") != "Bearer tok" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		fmt.Fprint(w, `{"content":[{"id":7,"titulo":"Foro Distrital","clubNombre":"Lima Norte","cupoMaximo":30,"estado":"ABIERTA"}],"totalElements":1,"totalPages":1}`)
	case r.Method == http.MethodPost && r.URL.Path == "/convocatorias/7/inscribirse":
		w.WriteHeader(http.StatusConflict)
		fmt.Fprint(w, `{"message":"Ya estás inscrito"}`)
	case r.Method == http.MethodPatch && r.URL.Path == "/convocatorias/7":
		f.patches.Add(1)
		fmt.Fprint(w, `{"id":7}`)
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

type harness struct {
	t   *testing.T
	api *fakeAPI
	env envconfig.Lookuper
}

func newHarness(t *testing.T, role string) *harness {
	t.Helper()
	api := &fakeAPI{role: role}
	srv := httptest.NewServer(api)
	t.Cleanup(srv.Close)
	return &harness{
		t:   t,
		api: api,
		env: envconfig.MapLookuper(map[string]string{
			"API_BASE_URL": srv.URL,
			"STATE_DIR":    t.TempDir(),
		}),
	}
}

func (h *harness) run(args ...string) (int, string, string) {
	h.t.Helper()
	var out, errOut bytes.Buffer
	code := Execute(context.Background(), Options{
		Out:      &out,
		Err:      &errOut,
		Lookuper: h.env,
		Log:      zerolog.Nop(),
	}, args)
	return code, out.String(), errOut.String()
}

func (h *harness) login() {
	h.t.Helper()
	code, _, errOut := h.run("login", "--correo", "ana@club.org", "--contrasena", "secreto")
	require.Equal(h.t, 0, code, errOut)
}

func TestLoginPersistsSessionAcrossRuns(t *testing.T) {
	h := newHarness(t, "presidente")

	code, out, _ := h.run("login", "--correo", "ana@club.org", "--contrasena", "secreto")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "Presidente del Club")
	assert.Contains(t, out, "/dashboard/presidente")

	code, out, _ = h.run("whoami", "--json")
	require.Equal(t, 0, code)
	var got struct {
		User struct {
			Correo string `json:"correo"`
			Rol    string `json:"rol"`
		} `json:"user"`
		Home string `json:"home"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "ana@club.org", got.User.Correo)
	assert.Equal(t, "PRESIDENTE DEL CLUB", got.User.Rol)
	assert.Equal(t, "/dashboard/presidente", got.Home)

	code, out, _ = h.run("logout")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "Sesión cerrada")

	code, _, errOut := h.run("whoami")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "No has iniciado sesión")
}

func TestAnonymousIsGated(t *testing.T) {
	h := newHarness(t, "socio")

	code, out, errOut := h.run("convocatorias", "list")
	assert.Equal(t, 1, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "rotaractctl login")
	assert.NotContains(t, errOut, "Error:")
}

func TestWrongRoleIsSentHome(t *testing.T) {
	h := newHarness(t, "INTERESADO")
	h.login()

	code, _, errOut := h.run("proyectos", "list")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "Tu rol (Interesado) no tiene acceso")
	assert.Contains(t, errOut, "/dashboard/interesado")
}

func TestConvocatoriasList(t *testing.T) {
	h := newHarness(t, "INTERESADO")
	h.login()

	code, out, errOut := h.run("convocatorias", "list")
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, out, "TITULO")
	assert.Contains(t, out, "Foro Distrital")
	assert.Contains(t, out, "Página 1 de 1")

	code, out, _ = h.run("convocatorias", "list", "--json")
	require.Equal(t, 0, code)
	assert.True(t, strings.HasPrefix(strings.TrimSpace(out), "{"))
	assert.Contains(t, out, `"titulo": "Foro Distrital"`)
}

func TestConvocatoriasApplyShowsServerMessage(t *testing.T) {
	h := newHarness(t, "interesado")
	h.login()

	code, _, errOut := h.run("convocatorias", "apply", "7")
	assert.Equal(t, 1, code)
	assert.Equal(t, "Error: Ya estás inscrito\n", errOut)
}

func TestConvocatoriasUpdateSkipsBlankFields(t *testing.T) {
	h := newHarness(t, "PRESIDENTE")
	h.login()

	code, out, errOut := h.run("convocatorias", "update", "7", "--titulo", "   ")
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, out, "Nada que actualizar")
	assert.Zero(t, h.api.patches.Load())

	code, out, errOut = h.run("convocatorias", "update", "7", "--cupo", "40")
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, out, "Convocatoria 7 actualizada")
	assert.EqualValues(t, 1, h.api.patches.Load())
}

func TestInvalidIDIsRejected(t *testing.T) {
	h := newHarness(t, "INTERESADO")
	h.login()

	code, _, errOut := h.run("convocatorias", "apply", "abc")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "invalid identifier")
}
