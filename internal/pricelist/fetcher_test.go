package pricelist

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubObjects struct {
	bucket, key string
	body        string
	err         error
}

func (s *stubObjects) GetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	s.bucket = aws.ToString(in.Bucket)
	s.key = aws.ToString(in.Key)
	if s.err != nil {
		return nil, s.err
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader(s.body))}, nil
}

func newTestFetcher(objects objectGetter, maxBytes int64) *Fetcher {
	return &Fetcher{
		client:   &http.Client{Timeout: 5 * time.Second},
		s3:       objects,
		maxBytes: maxBytes,
		log:      zap.NewNop(),
	}
}

func TestFetcher_HTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/shop1.yaml" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(sampleList))
	}))
	defer srv.Close()

	f := newTestFetcher(&stubObjects{}, 1<<20)

	data, err := f.Fetch(context.Background(), srv.URL+"/shop1.yaml")
	require.NoError(t, err)
	assert.Equal(t, sampleList, string(data))

	_, err = f.Fetch(context.Background(), srv.URL+"/missing.yaml")
	assert.ErrorIs(t, err, ErrFetchFailed)
}

func TestFetcher_HTTP_TooLarge(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(strings.Repeat("x", 64)))
	}))
	defer srv.Close()

	f := newTestFetcher(&stubObjects{}, 32)

	_, err := f.Fetch(context.Background(), srv.URL)
	assert.ErrorIs(t, err, ErrTooLarge)
}

func TestFetcher_S3(t *testing.T) {
	objects := &stubObjects{body: sampleList}
	f := newTestFetcher(objects, 1<<20)

	data, err := f.Fetch(context.Background(), "s3://price-lists/partners/shop1.yaml")
	require.NoError(t, err)
	assert.Equal(t, sampleList, string(data))
	assert.Equal(t, "price-lists", objects.bucket)
	assert.Equal(t, "partners/shop1.yaml", objects.key)
}

func TestFetcher_S3_Errors(t *testing.T) {
	f := newTestFetcher(&stubObjects{err: errors.New("NoSuchKey")}, 1<<20)

	_, err := f.Fetch(context.Background(), "s3://price-lists/missing.yaml")
	assert.ErrorIs(t, err, ErrFetchFailed)

	_, err = f.Fetch(context.Background(), "s3://price-lists")
	assert.ErrorIs(t, err, ErrFetchFailed)
}

func TestFetcher_UnsupportedScheme(t *testing.T) {
	f := newTestFetcher(&stubObjects{}, 1<<20)

	_, err := f.Fetch(context.Background(), "ftp://example.com/list.yaml")
	assert.ErrorIs(t, err, ErrUnsupportedScheme)
}
