package graphql

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"sews/config"
	deliverycontext "sews/internal/delivery/context"
	"sews/internal/domain/entity"
	"sews/internal/domain/service"
	"sews/internal/infra/auth"
	"sews/internal/infra/metrics"
	"sews/internal/infra/ratelimit"
	"sews/internal/usecase/impl"
	"sews/internal/validator"

	"github.com/graphql-go/graphql"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	schema graphql.Schema
	store  *memStore
	tokens service.TokenService
	logs   *bytes.Buffer
}

func newTestEnv(t *testing.T, rateLimit int) *testEnv {
	t.Helper()

	cfg := &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:      4,
			AccessTokenTTL:  5 * time.Minute,
			RefreshTokenTTL: 24 * time.Hour,
			LoginRateLimit:  config.LoginRateLimitConfig{Requests: rateLimit, Window: time.Minute},
		},
	}
	cfg.SecretKey.Access = "graphql_test_access_secret"
	cfg.SecretKey.Refresh = "graphql_test_refresh_secret"

	logs := &bytes.Buffer{}
	logger := slog.New(slog.NewJSONHandler(logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	store := newMemStore()
	hasher := auth.NewBcryptHasher(cfg)
	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)
	authMetrics := metrics.New(prometheus.NewRegistry())

	authenticator := impl.NewAuthenticator(impl.AuthenticatorParams{Repos: store, Hasher: hasher, Logger: logger})
	session := impl.NewSessionService(impl.SessionServiceParams{
		Auth:    authenticator,
		Tokens:  tokens,
		Limiter: ratelimit.NewMemoryLimiter(time.Now, 1024),
		Metrics: authMetrics,
		Repos:   store,
		Config:  cfg,
		Logger:  logger,
	})
	registration := impl.NewRegistrationService(impl.RegistrationServiceParams{
		TxManager: store,
		Hasher:    hasher,
		Validator: validator.New(),
		Metrics:   authMetrics,
		Logger:    logger,
	})
	catalog := impl.NewCatalogService(impl.CatalogServiceParams{
		Repos:     store,
		TxManager: store,
		Validator: validator.New(),
		Logger:    logger,
	})

	schema, err := NewSchema(SchemaParams{
		Session:      session,
		Registration: registration,
		Directory:    impl.NewDirectoryService(store, logger),
		Catalog:      catalog,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)

	return &testEnv{schema: schema, store: store, tokens: tokens, logs: logs}
}

func (e *testEnv) run(t *testing.T, ctx context.Context, query string, vars map[string]any) map[string]any {
	t.Helper()

	result := Execute(ctx, e.schema, Request{Query: query, Variables: vars})
	require.Empty(t, result.Errors)
	data, ok := result.Data.(map[string]any)
	require.True(t, ok)

	return data
}

// payload returns the object under name in a result.
func payload(t *testing.T, data map[string]any, name string) map[string]any {
	t.Helper()

	out, ok := data[name].(map[string]any)
	require.True(t, ok, "missing %s in %v", name, data)

	return out
}

// authenticated attaches the identity an access token resolves to.
func (e *testEnv) authenticated(t *testing.T, accessToken string) context.Context {
	t.Helper()

	identity, err := e.tokens.Verify(accessToken)
	require.NoError(t, err)

	return deliverycontext.WithIdentity(context.Background(), identity)
}

const registerTailorMutation = `
mutation Register($username: String!, $email: String!, $nid: String!, $password: String!) {
  registerTailor(username: $username, email: $email, nationalIdNumber: $nid, password: $password) {
    tailor { id username email dateOfRegistration isActive }
    success
    message
  }
}`

const tailorLoginMutation = `
mutation Login($username: String!, $password: String!) {
  tailorLogin(username: $username, password: $password) {
    token
    refresh
    tailor { id username }
    success
    message
  }
}`

func registerJane(t *testing.T, env *testEnv) map[string]any {
	t.Helper()

	data := env.run(t, context.Background(), registerTailorMutation, map[string]any{
		"username": "jane", "email": "jane@x.com", "nid": "123", "password": "pw1",
	})

	return payload(t, data, "registerTailor")
}

func TestRegisterTailor_DuplicateUsername(t *testing.T) {
	env := newTestEnv(t, 0)

	first := registerJane(t, env)
	assert.Equal(t, true, first["success"])
	assert.Equal(t, "Tailor registered successfully", first["message"])
	assert.Equal(t, "jane", payload(t, first, "tailor")["username"])

	data := env.run(t, context.Background(), registerTailorMutation, map[string]any{
		"username": "jane", "email": "other@x.com", "nid": "456", "password": "pw2",
	})
	second := payload(t, data, "registerTailor")

	assert.Equal(t, false, second["success"])
	assert.Contains(t, second["message"], "Username already exists")
	assert.Nil(t, second["tailor"])
	assert.Len(t, env.store.tailors, 1)
}

func TestRegisterTailor_DuplicateEmailAfterUsername(t *testing.T) {
	env := newTestEnv(t, 0)
	registerJane(t, env)

	data := env.run(t, context.Background(), registerTailorMutation, map[string]any{
		"username": "john", "email": "JANE@x.com", "nid": "456", "password": "pw2",
	})
	out := payload(t, data, "registerTailor")

	assert.Equal(t, false, out["success"])
	assert.Equal(t, "Email already exists", out["message"])
}

func TestRegisterTailor_InvalidInputIsEnveloped(t *testing.T) {
	env := newTestEnv(t, 0)

	data := env.run(t, context.Background(), registerTailorMutation, map[string]any{
		"username": "jane", "email": "not-an-email", "nid": "123", "password": "pw1",
	})
	out := payload(t, data, "registerTailor")

	assert.Equal(t, false, out["success"])
	assert.Contains(t, out["message"], "email must be a valid email")
}

func TestTailorLogin_ToleratesTrailingAtAndCase(t *testing.T) {
	env := newTestEnv(t, 0)
	registerJane(t, env)

	data := env.run(t, context.Background(), tailorLoginMutation, map[string]any{"username": "Jane@", "password": "pw1"})
	out := payload(t, data, "tailorLogin")

	require.Equal(t, true, out["success"])
	assert.Equal(t, "Welcome back, jane!", out["message"])
	tailor := payload(t, out, "tailor")
	assert.Equal(t, "jane", tailor["username"])

	identity, err := env.tokens.Verify(out["token"].(string))
	require.NoError(t, err)
	assert.Equal(t, entity.PrincipalTailor, identity.Kind)
	assert.Equal(t, tailor["id"], identity.PrincipalID.String())
	assert.NotEmpty(t, out["refresh"])
}

func TestTailorLogin_FailureMessages(t *testing.T) {
	env := newTestEnv(t, 0)
	registerJane(t, env)

	tests := []struct {
		name     string
		username string
		password string
		message  string
	}{
		{name: "missing password", username: "jane", password: "", message: "Username and password are required"},
		{name: "only an at sign", username: "@", password: "pw1", message: "Invalid username format"},
		{name: "wrong password", username: "jane", password: "nope", message: "Invalid username or password"},
		{name: "unknown user", username: "ghost", password: "pw1", message: "Invalid username or password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := env.run(t, context.Background(), tailorLoginMutation, map[string]any{"username": tt.username, "password": tt.password})
			out := payload(t, data, "tailorLogin")

			assert.Equal(t, false, out["success"])
			assert.Equal(t, tt.message, out["message"])
			assert.Nil(t, out["token"])
			assert.Nil(t, out["tailor"])
		})
	}
}

func TestTailorLogin_InactiveAccount(t *testing.T) {
	env := newTestEnv(t, 0)
	registerJane(t, env)
	for _, tailor := range env.store.tailors {
		tailor.IsActive = false
	}

	data := env.run(t, context.Background(), tailorLoginMutation, map[string]any{"username": "jane", "password": "pw1"})
	out := payload(t, data, "tailorLogin")

	assert.Equal(t, false, out["success"])
	assert.Equal(t, "Account is inactive", out["message"])
}

func TestTailorLogin_Throttled(t *testing.T) {
	env := newTestEnv(t, 2)
	registerJane(t, env)

	vars := map[string]any{"username": "jane", "password": "nope"}
	for range 2 {
		env.run(t, context.Background(), tailorLoginMutation, vars)
	}

	data := env.run(t, context.Background(), tailorLoginMutation, map[string]any{"username": " JANE ", "password": "pw1"})
	out := payload(t, data, "tailorLogin")

	assert.Equal(t, false, out["success"])
	assert.Equal(t, "Too many login attempts, please try again later", out["message"])
}

const customerMutations = `
mutation Create($email: String!, $password: String!) {
  createCustomUser(firstName: "Ann", lastName: "Lee", email: $email, password: $password) {
    customUser { id email isActive }
    success
    message
  }
}

mutation Obtain($email: String!, $password: String!) {
  obtainJwtToken(email: $email, password: $password) {
    token
    refresh
    user { id email }
    success
    message
  }
}

mutation Login($email: String!, $password: String!) {
  customerUserLogin(email: $email, password: $password) {
    token
    user { email }
    success
    message
  }
}`

func (e *testEnv) runOperation(t *testing.T, operation string, vars map[string]any) map[string]any {
	t.Helper()

	result := Execute(context.Background(), e.schema, Request{Query: customerMutations, Variables: vars, OperationName: operation})
	require.Empty(t, result.Errors)

	return result.Data.(map[string]any)
}

func TestObtainJwtToken_UnknownUserGetsGenericMessage(t *testing.T) {
	env := newTestEnv(t, 0)

	data := env.runOperation(t, "Obtain", map[string]any{"email": "nouser@x.com", "password": "x"})
	out := payload(t, data, "obtainJwtToken")

	assert.Equal(t, false, out["success"])
	assert.Nil(t, out["token"])
	assert.Nil(t, out["user"])
	assert.Equal(t, "Login failed. Please try again. Invalid credentials", out["message"])
}

func TestCustomer_RegisterThenLogin(t *testing.T) {
	env := newTestEnv(t, 0)

	created := payload(t, env.runOperation(t, "Create", map[string]any{"email": " Ann@Shop.IO ", "password": "secret"}), "createCustomUser")
	require.Equal(t, true, created["success"])
	assert.Equal(t, "User created successfully", created["message"])
	assert.Equal(t, "ann@shop.io", payload(t, created, "customUser")["email"])

	dup := payload(t, env.runOperation(t, "Create", map[string]any{"email": "ann@shop.io", "password": "other"}), "createCustomUser")
	assert.Equal(t, false, dup["success"])
	assert.Equal(t, "User with this email already exists", dup["message"])

	obtained := payload(t, env.runOperation(t, "Obtain", map[string]any{"email": "ANN@shop.io", "password": "secret"}), "obtainJwtToken")
	require.Equal(t, true, obtained["success"])
	assert.Equal(t, "Login successful", obtained["message"])

	identity, err := env.tokens.Verify(obtained["token"].(string))
	require.NoError(t, err)
	assert.Equal(t, entity.PrincipalCustomer, identity.Kind)
	assert.Equal(t, payload(t, created, "customUser")["id"], identity.PrincipalID.String())

	wrong := payload(t, env.runOperation(t, "Login", map[string]any{"email": "ann@shop.io", "password": "bad"}), "customerUserLogin")
	assert.Equal(t, false, wrong["success"])
	assert.Equal(t, "Authentication failed.", wrong["message"])

	unknown := payload(t, env.runOperation(t, "Login", map[string]any{"email": "ghost@shop.io", "password": "bad"}), "customerUserLogin")
	assert.Equal(t, wrong["message"], unknown["message"])
}

func TestRefreshToken(t *testing.T) {
	env := newTestEnv(t, 0)
	registerJane(t, env)
	login := payload(t, env.run(t, context.Background(), tailorLoginMutation, map[string]any{"username": "jane", "password": "pw1"}), "tailorLogin")

	query := `mutation($refresh: String!) { refreshToken(refresh: $refresh) { token expiresAt success message } }`

	ok := payload(t, env.run(t, context.Background(), query, map[string]any{"refresh": login["refresh"]}), "refreshToken")
	require.Equal(t, true, ok["success"])
	identity, err := env.tokens.Verify(ok["token"].(string))
	require.NoError(t, err)
	assert.Equal(t, entity.TokenAccess, identity.Class)

	bad := payload(t, env.run(t, context.Background(), query, map[string]any{"refresh": login["token"]}), "refreshToken")
	assert.Equal(t, false, bad["success"])
	assert.Nil(t, bad["token"])
}

func TestDirectoryQueries(t *testing.T) {
	env := newTestEnv(t, 0)
	jane := payload(t, registerJane(t, env), "tailor")

	data := env.run(t, context.Background(), `
query($id: ID!) {
  allTailors { username }
  allCustomUsers { email }
  tailor(id: $id) { username products { id } }
  missing: tailor(id: "not-a-uuid") { username }
  customUser(id: $id) { email }
}`, map[string]any{"id": jane["id"]})

	assert.Equal(t, []any{map[string]any{"username": "jane"}}, data["allTailors"])
	assert.Equal(t, []any{}, data["allCustomUsers"])
	assert.Equal(t, "jane", payload(t, data, "tailor")["username"])
	assert.Nil(t, data["missing"])
	assert.Nil(t, data["customUser"])
}

func TestMe(t *testing.T) {
	env := newTestEnv(t, 0)
	registerJane(t, env)
	login := payload(t, env.run(t, context.Background(), tailorLoginMutation, map[string]any{"username": "jane", "password": "pw1"}), "tailorLogin")

	anonymous := env.run(t, context.Background(), `{ me { kind } }`, nil)
	assert.Nil(t, anonymous["me"])

	data := env.run(t, env.authenticated(t, login["token"].(string)), `{ me { kind tailor { username } customUser { email } } }`, nil)
	me := payload(t, data, "me")
	assert.Equal(t, "tailor", me["kind"])
	assert.Equal(t, "jane", payload(t, me, "tailor")["username"])
	assert.Nil(t, me["customUser"])
}

func TestClothingStyleMutations(t *testing.T) {
	env := newTestEnv(t, 0)
	registerJane(t, env)
	login := payload(t, env.run(t, context.Background(), tailorLoginMutation, map[string]any{"username": "jane", "password": "pw1"}), "tailorLogin")
	ctx := env.authenticated(t, login["token"].(string))

	create := `mutation { createClothingStyle(name: "Kitenge Dress", cost: 45.5) { clothingStyle { id name isActive } success message } }`

	anonymous := payload(t, env.run(t, context.Background(), create, nil), "createClothingStyle")
	assert.Equal(t, false, anonymous["success"])
	assert.Equal(t, "Authentication required", anonymous["message"])

	created := payload(t, env.run(t, ctx, create, nil), "createClothingStyle")
	require.Equal(t, true, created["success"])
	style := payload(t, created, "clothingStyle")
	assert.Equal(t, true, style["isActive"])

	updated := payload(t, env.run(t, ctx, `mutation($id: ID!) { updateClothingStyle(id: $id, isActive: false) { clothingStyle { name isActive } success } }`,
		map[string]any{"id": style["id"]}), "updateClothingStyle")
	require.Equal(t, true, updated["success"])
	assert.Equal(t, "Kitenge Dress", payload(t, updated, "clothingStyle")["name"])

	lists := env.run(t, context.Background(), `{ allClothingStyles { name } activeClothingStyles { name } }`, nil)
	assert.Len(t, lists["allClothingStyles"], 1)
	assert.Empty(t, lists["activeClothingStyles"])

	deleted := payload(t, env.run(t, ctx, `mutation($id: ID!) { deleteClothingStyle(id: $id) { success message } }`,
		map[string]any{"id": style["id"]}), "deleteClothingStyle")
	assert.Equal(t, true, deleted["success"])

	again := payload(t, env.run(t, ctx, `mutation($id: ID!) { deleteClothingStyle(id: $id) { success message } }`,
		map[string]any{"id": style["id"]}), "deleteClothingStyle")
	assert.Equal(t, false, again["success"])
	assert.Equal(t, "Clothing style not found", again["message"])
}

func TestCreateTailorProduct_UsesCallerID(t *testing.T) {
	env := newTestEnv(t, 0)
	jane := payload(t, registerJane(t, env), "tailor")
	login := payload(t, env.run(t, context.Background(), tailorLoginMutation, map[string]any{"username": "jane", "password": "pw1"}), "tailorLogin")

	mutation := `mutation { createTailorProduct(category: "suit", productName: "Two-piece", cost: 120) { tailorProduct { tailorId category } success message } }`

	out := payload(t, env.run(t, env.authenticated(t, login["token"].(string)), mutation, nil), "createTailorProduct")
	require.Equal(t, true, out["success"], out["message"])
	product := payload(t, out, "tailorProduct")
	assert.Equal(t, jane["id"], product["tailorId"])
	assert.Equal(t, "SUIT", product["category"])

	products := env.run(t, context.Background(), `query($id: ID!) { tailorProducts(tailorId: $id) { category } }`, map[string]any{"id": jane["id"]})
	assert.Len(t, products["tailorProducts"], 1)
}
