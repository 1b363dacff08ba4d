package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"directory_backend/internal/relationships/graph"
	"directory_backend/internal/relationships/transport"
	"directory_backend/platform/apperr"
	"directory_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

type fakeService struct {
	opts graph.Options
	err  error
}

func (f *fakeService) BuildRelationshipGraph(_ context.Context, id string, opts graph.Options) (transport.RelationshipGraphResponse, error) {
	f.opts = opts
	if f.err != nil {
		return transport.RelationshipGraphResponse{}, f.err
	}
	return transport.RelationshipGraphResponse{Company: transport.CompanySummary{ID: id}, Depth: opts.Depth}, nil
}

func get(svc GraphService, path string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	New(svc, validator.New()).RegisterRoutes(engine.Group("/api/v1"))

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestIncludeContactsDefaultsToTrue(t *testing.T) {
	svc := &fakeService{}
	if rec := get(svc, "/api/v1/companies/acme/relationships"); rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !svc.opts.IncludeContacts {
		t.Fatalf("expected contacts to be included by default")
	}
}

func TestQueryOptions(t *testing.T) {
	svc := &fakeService{}
	if rec := get(svc, "/api/v1/companies/acme/relationships?includeContacts=false&depth=2"); rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if svc.opts.IncludeContacts || svc.opts.Depth != 2 {
		t.Fatalf("unexpected options: %+v", svc.opts)
	}
}

func TestDepthOutOfRange(t *testing.T) {
	if rec := get(&fakeService{}, "/api/v1/companies/acme/relationships?depth=4"); rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestErrorMapping(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{apperr.NotFound("company not found"), http.StatusNotFound},
		{apperr.Wrap(apperr.KindInternal, "data access failure", errors.New("pq: boom")), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		if rec := get(&fakeService{err: tc.err}, "/api/v1/companies/acme/relationships"); rec.Code != tc.want {
			t.Fatalf("expected %d, got %d", tc.want, rec.Code)
		}
	}
}
