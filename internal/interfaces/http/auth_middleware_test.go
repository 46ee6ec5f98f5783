package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexandrooliveira87/ProjetoModulo2/internal/domain/entity"
	apphttp "github.com/alexandrooliveira87/ProjetoModulo2/internal/interfaces/http"
	pkgjwt "github.com/alexandrooliveira87/ProjetoModulo2/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = int64(42)
	testIssuer    = "movements-api-test"
	testExpMin    = 60
)

// buildTestApp construye una aplicación Fiber mínima con:
//   - AuthMiddleware para parsear el JWT y cargar locals
//   - RequireProfile para autorizar el acceso
//   - Un handler dummy que devuelve 200 si pasa los middlewares
func buildTestApp(allowedProfiles ...string) *fiber.App {
	app := fiber.New(fiber.Config{
		// Silenciar errores internos en los tests
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		},
	})
	// Ruta protegida: JWT + perfil
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireProfile(allowedProfiles...),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":      true,
				"profile": apphttp.GetProfile(c),
			})
		},
	)
	return app
}

// tokenForProfile genera un JWT con el perfil indicado.
func tokenForProfile(t *testing.T, profile string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, profile, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

// doRequest lanza una petición GET /protected y devuelve la respuesta.
func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireProfile
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: El usuario tiene el perfil requerido → debe pasar (HTTP 200).
func TestRequireProfile_AdminAccedeRutaAdmin(t *testing.T) {
	app := buildTestApp(entity.ProfileAdmin)
	resp := doRequest(t, app, tokenForProfile(t, entity.ProfileAdmin))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"ADMIN debe poder acceder a ruta restringida a ADMIN")

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"], "la respuesta debe incluir ok:true")
	assert.Equal(t, entity.ProfileAdmin, body["profile"], "el perfil debe ser ADMIN")
}

// Caso 1b: El usuario tiene uno de los perfiles permitidos (multi-perfil) → HTTP 200.
func TestRequireProfile_ConductorAccedeRutaFilialOConductor(t *testing.T) {
	app := buildTestApp(entity.ProfileBranch, entity.ProfileDriver)
	resp := doRequest(t, app, tokenForProfile(t, entity.ProfileDriver))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"DRIVER debe poder acceder a ruta que permite BRANCH o DRIVER")
}

// Caso 2: El usuario tiene un perfil diferente al requerido → HTTP 403 Forbidden.
func TestRequireProfile_ConductorBloqueadoEnRutaFilial(t *testing.T) {
	app := buildTestApp(entity.ProfileBranch)
	resp := doRequest(t, app, tokenForProfile(t, entity.ProfileDriver))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"DRIVER no debe poder acceder a ruta restringida a BRANCH")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN",
		"la respuesta de error debe incluir el código FORBIDDEN")
}

// Caso 2b: ADMIN bloqueado en ruta solo conductores → HTTP 403.
func TestRequireProfile_AdminBloqueadoEnRutaConductor(t *testing.T) {
	app := buildTestApp(entity.ProfileDriver)
	resp := doRequest(t, app, tokenForProfile(t, entity.ProfileAdmin))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

// Caso 3: Token sin claim de perfil (emulado con perfil vacío) → HTTP 401.
func TestRequireProfile_TokenSinPerfil_Retorna401(t *testing.T) {
	app := buildTestApp(entity.ProfileAdmin)
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, "", testIssuer, testExpMin)
	require.NoError(t, err)

	resp := doRequest(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
		"token sin perfil debe retornar 401")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_PROFILE",
		"la respuesta debe indicar el código MISSING_PROFILE")
}

// Caso 4: Sin header Authorization → HTTP 401 MISSING_TOKEN.
func TestRequireProfile_SinAuthHeader_Retorna401(t *testing.T) {
	app := buildTestApp(entity.ProfileAdmin)
	resp := doRequest(t, app, "") // sin header
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Caso 5: Token inválido / malformado → HTTP 401 INVALID_TOKEN.
func TestRequireProfile_TokenInvalido_Retorna401(t *testing.T) {
	app := buildTestApp(entity.ProfileAdmin)
	resp := doRequest(t, app, "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware — extracción de claims del token
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_ExtraeClaims(t *testing.T) {
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id": apphttp.GetUserID(c),
			"profile": apphttp.GetProfile(c),
		})
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", tokenForProfile(t, entity.ProfileBranch))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		UserID  int64  `json:"user_id"`
		Profile string `json:"profile"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body.UserID)
	assert.Equal(t, entity.ProfileBranch, body.Profile)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests JWT pkg — integridad del generate/parse con profile
// ──────────────────────────────────────────────────────────────────────────────

func TestJWT_GenerateAndParse_ConPerfil(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, entity.ProfileDriver, testIssuer, testExpMin)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, profile, err := pkgjwt.Parse(testJWTSecret, tok)
	require.NoError(t, err)

	assert.Equal(t, testUserID, userID)
	assert.Equal(t, entity.ProfileDriver, profile)
}

func TestJWT_TokenExpirado_RetornaError(t *testing.T) {
	// Token con expiración -1 minuto (ya expirado)
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, entity.ProfileAdmin, testIssuer, -1)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse(testJWTSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestJWT_SecretIncorrecto_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, entity.ProfileAdmin, testIssuer, testExpMin)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err, "secret incorrecto debe invalidar el token")
}
