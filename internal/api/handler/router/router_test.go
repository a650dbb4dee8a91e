package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRouter_MiddlewareOrderAndRegistry(t *testing.T) {
	var order []string
	tag := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	rt := New(WithRoutes(Route{
		Path:        "/v1/ranking",
		Method:      http.MethodGet,
		Handler:     http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { order = append(order, "handler") }),
		Middlewares: []func(http.Handler) http.Handler{tag("primeiro"), tag("segundo")},
	}))

	rt.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/v1/ranking", nil))

	assert.Equal(t, []string{"primeiro", "segundo", "handler"}, order)
	assert.Equal(t, []string{"GET /v1/ranking"}, rt.Registered())
}
