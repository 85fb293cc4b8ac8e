package main

import (
	"bytes"
	"context"
	"errors"
	"net/url"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yungbote/abcd-backend/internal/domain/taxonomy"
	"github.com/yungbote/abcd-backend/internal/modules/filtering"
	"github.com/yungbote/abcd-backend/internal/services"
)

func TestParseFilters(t *testing.T) {
	values, err := parseFilters([]string{"topic_ids=1,2", "outcome_ids=5", "topic_ids=3"})
	require.NoError(t, err)
	assert.Equal(t, url.Values{"topic_ids": {"1,2", "3"}, "outcome_ids": {"5"}}, values)

	_, err = parseFilters([]string{"topic_ids"})
	assert.Error(t, err)
	_, err = parseFilters([]string{"=1"})
	assert.Error(t, err)
}

type stubCatalog struct {
	services.CatalogService
	fail taxonomy.Kind
}

func (s stubCatalog) ResolveIDs(_ context.Context, kind taxonomy.Kind, bag filtering.Bag) ([]filtering.ID, error) {
	if kind == s.fail {
		return nil, filtering.ErrLookupFailed
	}
	return append([]filtering.ID{}, bag["topic_ids"]...), nil
}

func TestResolveAll(t *testing.T) {
	bag := filtering.Bag{"topic_ids": {4, 2}}
	out, err := resolveAll(context.Background(), stubCatalog{}, []taxonomy.Kind{taxonomy.KindCourse, taxonomy.KindBehaviour}, bag)
	require.NoError(t, err)
	assert.Equal(t, map[taxonomy.Kind][]filtering.ID{
		taxonomy.KindCourse:    {4, 2},
		taxonomy.KindBehaviour: {4, 2},
	}, out)

	_, err = resolveAll(context.Background(), stubCatalog{fail: taxonomy.KindBehaviour}, []taxonomy.Kind{taxonomy.KindCourse, taxonomy.KindBehaviour}, bag)
	require.Error(t, err)
	assert.True(t, errors.Is(err, filtering.ErrLookupFailed))
	assert.Contains(t, err.Error(), "resolve behaviour")
}

func TestTokenCommandMintsVerifiableToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "cli-secret")
	t.Setenv("JWT_ISSUER", "abcd-test")
	subject := "ops-" + uuid.NewString()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"token", "--subject", subject, "--role", "admin"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})
	require.NoError(t, rootCmd.ExecuteContext(context.Background()))

	log, err := newLogger()
	require.NoError(t, err)
	auth, err := services.NewAuthService(log, "cli-secret", "abcd-test", 0)
	require.NoError(t, err)
	_, err = auth.SetContextFromToken(context.Background(), strings.TrimSpace(out.String()))
	require.NoError(t, err)
}
