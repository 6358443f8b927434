package feeds_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"wardrobe/core/storage/mocks"
	"wardrobe/feature/clothing/feeds"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestParseBase(t *testing.T) {
	tests := []struct {
		name    string
		listing string
		want    string
		wantErr bool
	}{
		{"ProtocolRelative", "foo=bar\nflash.client.url=//images.habbo.com/gordon/flash-assets-PRODUCTION-202601121522-867048149/\n", "https://images.habbo.com/gordon/flash-assets-PRODUCTION-202601121522-867048149/", false},
		{"AddsTrailingSlash", "flash.client.url=https://cdn.example/gordon/PRODUCTION-1", "https://cdn.example/gordon/PRODUCTION-1/", false},
		{"Whitespace", "  flash.client.url = //cdn.example/x/\r\n", "https://cdn.example/x/", false},
		{"PrefixedKeyIgnored", "not.flash.client.url=//wrong/\n", "", true},
		{"Missing", "flash.dynamic.download.url=//x/\n", "", true},
		{"Empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := feeds.ParseBase([]byte(tt.listing), "")
			if tt.wantErr {
				assert.ErrorIs(t, err, feeds.ErrUpstreamUnavailable)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolve(t *testing.T) {
	assert.Equal(t, "https://cdn/x/figuredata.xml", feeds.Resolve("https://cdn/x/", "figuredata.xml"))
	assert.Equal(t, "https://cdn/x/figuremap.xml", feeds.Resolve("https://cdn/x", "/figuremap.xml"))
	assert.Equal(t, "https://www.habbo.com/gamedata/figuredata/1", feeds.Resolve("https://cdn/x/", "https://www.habbo.com/gamedata/figuredata/1"))
	assert.Equal(t, "https://cdn/y.json", feeds.Resolve("", "//cdn/y.json"))
}

func newUpstream(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func TestHTTPSource(t *testing.T) {
	var srv *httptest.Server
	srv = newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/gamedata/external_variables/1":
			_, _ = io.WriteString(w, "flash.client.url="+srv.URL+"/gordon/PRODUCTION-1/\n")
		case "/gordon/PRODUCTION-1/figuredata.xml":
			_, _ = io.WriteString(w, "<figuredata/>")
		case "/gordon/PRODUCTION-1/figuremap.xml":
			_, _ = io.WriteString(w, "<map/>")
		case "/gamedata/furnidata_json/1":
			assert.Equal(t, "wardrobe-test", r.Header.Get("User-Agent"))
			_, _ = io.WriteString(w, `{"roomitemtypes":{"furnitype":[]}}`)
		default:
			http.NotFound(w, r)
		}
	})

	src := feeds.NewHTTPSource(feeds.Config{TimeoutSeconds: 2, UserAgent: "wardrobe-test"}, srv.URL, zap.NewNop())
	ctx := context.Background()

	base, err := src.ResolveBase(ctx)
	require.NoError(t, err)
	assert.Equal(t, srv.URL+"/gordon/PRODUCTION-1/", base)

	want := map[feeds.Document]string{
		feeds.FigureData: "<figuredata/>",
		feeds.FigureMap:  "<map/>",
		feeds.FurniData:  `{"roomitemtypes":{"furnitype":[]}}`,
	}
	for doc, body := range want {
		data, err := src.Fetch(ctx, base, doc)
		require.NoError(t, err, doc)
		assert.Equal(t, body, string(data))
	}
}

func TestHTTPSource_Errors(t *testing.T) {
	t.Run("ServerError", func(t *testing.T) {
		srv := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})
		src := feeds.NewHTTPSource(feeds.Config{TimeoutSeconds: 2}, srv.URL, zap.NewNop())

		_, err := src.Fetch(context.Background(), srv.URL+"/", feeds.FigureData)
		assert.ErrorIs(t, err, feeds.ErrUpstreamUnavailable)
		assert.Contains(t, err.Error(), "500")
	})

	t.Run("MissingBaseKey", func(t *testing.T) {
		srv := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, "other.key=1\n")
		})
		src := feeds.NewHTTPSource(feeds.Config{TimeoutSeconds: 2}, srv.URL, zap.NewNop())

		_, err := src.ResolveBase(context.Background())
		assert.ErrorIs(t, err, feeds.ErrUpstreamUnavailable)
	})

	t.Run("Deadline", func(t *testing.T) {
		srv := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-r.Context().Done():
			case <-time.After(2 * time.Second):
			}
		})
		src := feeds.NewHTTPSource(feeds.Config{TimeoutSeconds: 5}, srv.URL, zap.NewNop())

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()
		_, err := src.Fetch(ctx, srv.URL+"/", feeds.FigureMap)
		assert.ErrorIs(t, err, feeds.ErrUpstreamTimeout)
	})

	t.Run("Unreachable", func(t *testing.T) {
		src := feeds.NewHTTPSource(feeds.Config{TimeoutSeconds: 1}, "http://127.0.0.1:1", zap.NewNop())
		_, err := src.ResolveBase(context.Background())
		assert.Error(t, err)
	})
}

func TestHTTPSource_Locations(t *testing.T) {
	src := feeds.NewHTTPSource(feeds.Config{
		VariablesURL:   "https://sandbox.habbo.com/gamedata/external_variables/1",
		FigureDataPath: "https://www.habbo.com/gamedata/figuredata/1",
		FurniDataURL:   "https://www.habbo.com/gamedata/furnidata_json/1",
	}, "https://www.habbo.com.br", nil)

	assert.Equal(t, "https://sandbox.habbo.com/gamedata/external_variables/1", src.VariablesURL())
	assert.Equal(t, "https://www.habbo.com/gamedata/figuredata/1", src.Location("https://cdn/x/", feeds.FigureData))
	assert.Equal(t, "https://cdn/x/figuremap.xml", src.Location("https://cdn/x/", feeds.FigureMap))

	def := feeds.NewHTTPSource(feeds.Config{}, "https://www.habbo.com.br/", nil)
	assert.Equal(t, "https://www.habbo.com.br/gamedata/external_variables/1", def.VariablesURL())
	assert.Equal(t, "https://www.habbo.com.br/gamedata/furnidata_json/1", def.Location("https://cdn/x/", feeds.FurniData))
}

type failingReader struct{ err error }

func (r failingReader) Read([]byte) (int, error) { return 0, r.err }
func (r failingReader) Close() error             { return nil }

func TestMirrorSource(t *testing.T) {
	ctx := context.Background()

	t.Run("Reads", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "assets").Return(true, nil)
		client.On("GetObject", mock.Anything, "assets", "gamedata/figuremap.xml", mock.Anything).
			Return(io.NopCloser(strings.NewReader("<map/>")), nil)

		src := feeds.NewMirrorSource(client, "assets", "gamedata", zap.NewNop())
		base, err := src.ResolveBase(ctx)
		require.NoError(t, err)
		assert.Equal(t, "s3://assets/gamedata/", base)

		data, err := src.Fetch(ctx, base, feeds.FigureMap)
		require.NoError(t, err)
		assert.Equal(t, "<map/>", string(data))
	})

	t.Run("MissingBucket", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "assets").Return(false, nil)

		_, err := feeds.NewMirrorSource(client, "assets", "", zap.NewNop()).ResolveBase(ctx)
		assert.ErrorIs(t, err, feeds.ErrUpstreamUnavailable)
	})

	t.Run("MissingObject", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("GetObject", mock.Anything, "assets", "gamedata/furnidata.json", mock.Anything).
			Return(failingReader{err: minio.ErrorResponse{Code: "NoSuchKey"}}, nil)

		_, err := feeds.NewMirrorSource(client, "assets", "", zap.NewNop()).Fetch(ctx, "", feeds.FurniData)
		assert.ErrorIs(t, err, feeds.ErrUpstreamUnavailable)
		assert.Contains(t, err.Error(), "missing")
	})
}

type staticSource struct {
	docs map[feeds.Document]string
	err  error
}

func (s staticSource) Name() string { return "static" }
func (s staticSource) ResolveBase(ctx context.Context) (string, error) {
	return "https://cdn/", s.err
}
func (s staticSource) Fetch(ctx context.Context, base string, doc feeds.Document) ([]byte, error) {
	return []byte(s.docs[doc]), nil
}

func TestPublish(t *testing.T) {
	src := staticSource{docs: map[feeds.Document]string{
		feeds.FigureData: "<figuredata/>",
		feeds.FigureMap:  "<map/>",
		feeds.FurniData:  "[]",
	}}

	client := new(mocks.Client)
	client.On("PutObject", mock.Anything, "assets", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, nil)

	written, err := feeds.Publish(context.Background(), src, client, "assets", "gamedata/", zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, []string{"gamedata/figuredata.xml", "gamedata/figuremap.xml", "gamedata/furnidata.json"}, written)
	client.AssertNumberOfCalls(t, "PutObject", 3)

	_, err = feeds.Publish(context.Background(), staticSource{err: errors.New("down")}, client, "assets", "", zap.NewNop())
	assert.Error(t, err)
}

func TestNewSource(t *testing.T) {
	src, err := feeds.NewSource(feeds.Config{Source: "http"}, "https://www.habbo.com", nil, "", zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, feeds.SourceHTTP, src.Name())

	src, err = feeds.NewSource(feeds.Config{Source: "mirror"}, "", new(mocks.Client), "assets", zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, feeds.SourceMirror, src.Name())

	_, err = feeds.NewSource(feeds.Config{Source: "mirror"}, "", nil, "assets", zap.NewNop())
	assert.Error(t, err)

	_, err = feeds.NewSource(feeds.Config{Source: "ftp"}, "", nil, "", zap.NewNop())
	assert.Error(t, err)
}
