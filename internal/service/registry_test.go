package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/officegate/officegate/internal/types"
)

type fakeProvider struct {
	def      types.Service
	lastTool string
}

func (f *fakeProvider) Definition() types.Service {
	return f.def
}

func (f *fakeProvider) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	f.lastTool = toolID
	return &types.Result{Success: true, Data: map[string]interface{}{"message": "ok"}}, nil
}

func wordFake() *fakeProvider {
	return &fakeProvider{def: types.Service{
		ID:           "word",
		Name:         "Word Documents",
		Description:  "Create and read Word documents",
		Category:     types.CategoryDocuments,
		Capabilities: []string{"create", "read"},
		Tools:        []types.Tool{{ID: "word.create"}, {ID: "word.read"}},
	}}
}

func libraryFake() *fakeProvider {
	return &fakeProvider{def: types.Service{
		ID:          "library",
		Name:        "Document Library",
		Description: "List documents",
		Category:    types.CategoryLibrary,
		Tools:       []types.Tool{{ID: "library.list"}},
	}}
}

func TestRegisterAndGet(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(wordFake()))

	_, ok := r.Get("word")
	assert.True(t, ok)

	_, ok = r.Get("missing")
	assert.False(t, ok)
}

func TestRegisterRejectsEmptyID(t *testing.T) {
	r := NewRegistry()
	err := r.Register(&fakeProvider{})
	assert.Error(t, err)
}

func TestListSortedAndFiltered(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(wordFake()))
	require.NoError(t, r.Register(libraryFake()))

	all := r.List(nil)
	require.Len(t, all, 2)
	assert.Equal(t, "library", all[0].ID)
	assert.Equal(t, "word", all[1].ID)

	cat := types.CategoryDocuments
	docs := r.List(&cat)
	require.Len(t, docs, 1)
	assert.Equal(t, "word", docs[0].ID)
}

func TestUnregister(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(wordFake()))

	r.Unregister("word")
	_, ok := r.Get("word")
	assert.False(t, ok)
}

func TestDiscoverRanksByRelevance(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(wordFake()))
	require.NoError(t, r.Register(libraryFake()))

	results := r.Discover("create a word document for meeting notes", 5)
	require.NotEmpty(t, results)
	assert.Equal(t, "word", results[0].ID)

	assert.Empty(t, r.Discover("play some music", 5))
}

func TestDiscoverHonorsLimit(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(wordFake()))
	require.NoError(t, r.Register(libraryFake()))

	results := r.Discover("documents", 1)
	assert.Len(t, results, 1)
}

func TestExecuteRoutesByPrefix(t *testing.T) {
	r := NewRegistry()
	word := wordFake()
	require.NoError(t, r.Register(word))

	result, err := r.Execute(context.Background(), "word.create", nil, nil)
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "word.create", word.lastTool)
}

func TestExecuteErrors(t *testing.T) {
	r := NewRegistry()

	_, err := r.Execute(context.Background(), "bareword", nil, nil)
	assert.ErrorContains(t, err, "invalid tool ID")

	_, err = r.Execute(context.Background(), "ghost.create", nil, nil)
	assert.ErrorContains(t, err, "service not found")
}

func TestStats(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(wordFake()))
	require.NoError(t, r.Register(libraryFake()))

	stats := r.Stats()
	assert.Equal(t, 2, stats["total_services"])
	assert.Equal(t, 3, stats["total_tools"])
}
