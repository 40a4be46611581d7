package search

import (
	"context"
	"fmt"

	"github.com/pinecone-io/go-pinecone/v3/pinecone"
)

// RecordSearcher is the slice of *pinecone.IndexConnection used here.
type RecordSearcher interface {
	SearchRecords(ctx context.Context, in *pinecone.SearchRecordsRequest) (*pinecone.SearchRecordsResponse, error)
}

// PineconeSearcher queries an integrated-inference index by text.
type PineconeSearcher struct {
	index RecordSearcher
}

// NewPineconeSearcher connects to the index at host in namespace.
func NewPineconeSearcher(apiKey, host, namespace string) (*PineconeSearcher, error) {
	if apiKey == "" || host == "" {
		return nil, ErrNotConfigured
	}

	pc, err := pinecone.NewClient(pinecone.NewClientParams{ApiKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("create pinecone client: %w", err)
	}

	idx, err := pc.Index(pinecone.NewIndexConnParams{Host: host, Namespace: namespace})
	if err != nil {
		return nil, fmt.Errorf("connect to pinecone index: %w", err)
	}
	return &PineconeSearcher{index: idx}, nil
}

// NewPineconeSearcherWithIndex wraps an existing index connection.
func NewPineconeSearcherWithIndex(index RecordSearcher) *PineconeSearcher {
	return &PineconeSearcher{index: index}
}

func (s *PineconeSearcher) Search(ctx context.Context, query string, topK int) ([]Snippet, error) {
	fields := []string{"category", "chunk_text"}
	res, err := s.index.SearchRecords(ctx, &pinecone.SearchRecordsRequest{
		Query: pinecone.SearchRecordsQuery{
			TopK:   int32(topK),
			Inputs: &map[string]interface{}{"text": query},
		},
		Fields: &fields,
	})
	if err != nil {
		return nil, fmt.Errorf("pinecone search: %w", err)
	}

	out := make([]Snippet, 0, len(res.Result.Hits))
	for _, hit := range res.Result.Hits {
		sn := Snippet{ID: hit.Id, Score: float64(hit.Score)}
		if v, ok := hit.Fields["category"].(string); ok {
			sn.Category = v
		}
		if v, ok := hit.Fields["chunk_text"].(string); ok {
			sn.Text = v
		}
		out = append(out, sn)
	}
	return out, nil
}
