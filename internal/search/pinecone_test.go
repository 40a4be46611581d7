package search

import (
	"context"
	"errors"
	"testing"

	"github.com/pinecone-io/go-pinecone/v3/pinecone"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeIndex struct {
	req  *pinecone.SearchRecordsRequest
	hits []pinecone.Hit
	err  error
}

func (f *fakeIndex) SearchRecords(_ context.Context, in *pinecone.SearchRecordsRequest) (*pinecone.SearchRecordsResponse, error) {
	f.req = in
	if f.err != nil {
		return nil, f.err
	}
	res := &pinecone.SearchRecordsResponse{}
	res.Result.Hits = f.hits
	return res, nil
}

func TestPineconeSearch(t *testing.T) {
	idx := &fakeIndex{hits: []pinecone.Hit{
		{Id: "doc-1", Score: 0.91, Fields: map[string]interface{}{"category": "python", "chunk_text": "Lists are ordered."}},
		{Id: "doc-2", Score: 0.55, Fields: map[string]interface{}{"chunk_text": "Tuples are immutable."}},
	}}
	s := NewPineconeSearcherWithIndex(idx)

	got, err := s.Search(context.Background(), "python lists", 3)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "doc-1", got[0].ID)
	assert.Equal(t, "python", got[0].Category)
	assert.Equal(t, "Lists are ordered.", got[0].Text)
	assert.Empty(t, got[1].Category)

	require.NotNil(t, idx.req)
	assert.Equal(t, int32(3), idx.req.Query.TopK)
	assert.Equal(t, "python lists", (*idx.req.Query.Inputs)["text"])
	assert.Equal(t, []string{"category", "chunk_text"}, *idx.req.Fields)
}

func TestPineconeSearchError(t *testing.T) {
	s := NewPineconeSearcherWithIndex(&fakeIndex{err: errors.New("index gone")})
	_, err := s.Search(context.Background(), "q", 3)
	assert.ErrorContains(t, err, "index gone")
}

func TestNewPineconeSearcherRequiresCredentials(t *testing.T) {
	_, err := NewPineconeSearcher("", "host", "ns")
	assert.ErrorIs(t, err, ErrNotConfigured)
}
