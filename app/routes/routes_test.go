package routes_test

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"codemate/app/routes"
	"codemate/database"
	"codemate/redis"
)

// newTestApp builds a fiber app with the production routing config and
// the full route table. The mongo driver connects lazily, so route
// registration needs no live server behind the collection handles.
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI("mongodb://localhost:27017"))
	require.NoError(t, err)
	database.MongoClient = client
	database.MongoDatabase = client.Database("codemate_test")

	app := fiber.New(fiber.Config{
		Prefork:       false,
		CaseSensitive: true,
		StrictRouting: true,
	})
	routes.SetupRoutes(app, redis.NewService())
	return app
}

// Every protected endpoint must resolve at its documented path under
// strict routing: an unauthenticated request reaches the JWT middleware
// and gets 401, never a 404.
func TestProtectedPathsResolveUnderStrictRouting(t *testing.T) {
	app := newTestApp(t)

	cases := []struct {
		method string
		path   string
	}{
		{"GET", "/api/profile"},
		{"PATCH", "/api/profile"},
		{"POST", "/api/profile/change-password"},
		{"GET", "/api/user/requests/received"},
		{"GET", "/api/user/connections"},
		{"GET", "/api/user/feed"},
		{"GET", "/api/chat/64f1b2c3d4e5f60718293a4b"},
		{"POST", "/api/payment/create"},
		{"POST", "/api/request/send/interested/64f1b2c3d4e5f60718293a4b"},
		{"POST", "/api/request/review/accepted/64f1b2c3d4e5f60718293a4b"},
		{"POST", "/api/auth/logout"},
	}

	for _, tc := range cases {
		resp, err := app.Test(httptest.NewRequest(tc.method, tc.path, nil))
		require.NoError(t, err, "%s %s", tc.method, tc.path)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode, "%s %s", tc.method, tc.path)
	}
}

func TestUnknownPathIsNotFound(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/nope", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
