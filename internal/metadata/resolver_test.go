package metadata_test

import (
	"context"
	"encoding/base64"
	"errors"
	"os"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-catalog/internal/adapter"
	"github.com/feral-file/ff-catalog/internal/logger"
	"github.com/feral-file/ff-catalog/internal/metadata"
	"github.com/feral-file/ff-catalog/internal/mocks"
)

const (
	GATEWAY = "https://gateway.example"
	CID_V0  = "QmYwAPJzv5CZsnA625s3Xf2nemtYgPpHdWEz79ojWnPbdG"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: false}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func TestResolveURI(t *testing.T) {
	tests := []struct {
		name    string
		uri     string
		want    string
		wantErr bool
	}{
		{name: "ipfs scheme", uri: "ipfs://" + CID_V0, want: GATEWAY + "/ipfs/" + CID_V0},
		{name: "ipfs scheme with ipfs path", uri: "ipfs://ipfs/" + CID_V0 + "/meta.json", want: GATEWAY + "/ipfs/" + CID_V0 + "/meta.json"},
		{name: "ipfs path", uri: "/ipfs/" + CID_V0, want: GATEWAY + "/ipfs/" + CID_V0},
		{name: "bare cid", uri: CID_V0, want: GATEWAY + "/ipfs/" + CID_V0},
		{name: "https passthrough", uri: "https://example.com/a.json", want: "https://example.com/a.json"},
		{name: "unsupported", uri: "ftp://example.com/a.json", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := metadata.ResolveURI(tt.uri, GATEWAY+"/")
			if tt.wantErr {
				assert.ErrorIs(t, err, metadata.ErrUnsupportedURI)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFetcher_Fetch_NormalizesMarketplaceLayout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHTTP := mocks.NewMockHTTPClient(ctrl)
	fetcher := metadata.NewFetcher(mockHTTP, adapter.NewJSON(), metadata.Config{IPFSGateway: GATEWAY})

	mockHTTP.EXPECT().
		Get(gomock.Any(), GATEWAY+"/ipfs/"+CID_V0).
		Return([]byte(`{"title":"Sunset","description":"warm","image":"ipfs://`+CID_V0+`","properties":{"media":{"hash":"`+CID_V0+`","type":"video/mp4","size":1024}}}`), nil)

	got, err := fetcher.Fetch(context.Background(), CID_V0)
	require.NoError(t, err)
	assert.Equal(t, "Sunset", got.Title)
	assert.Equal(t, "warm", got.Description)
	assert.Equal(t, GATEWAY+"/ipfs/"+CID_V0, got.Image)
	require.NotNil(t, got.Media)
	assert.Equal(t, "video/mp4", got.Media.Type)
	require.NotNil(t, got.Media.Size)
	assert.Equal(t, int64(1024), *got.Media.Size)
}

func TestFetcher_Fetch_FallsBackToName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHTTP := mocks.NewMockHTTPClient(ctrl)
	fetcher := metadata.NewFetcher(mockHTTP, adapter.NewJSON(), metadata.Config{IPFSGateway: GATEWAY})

	mockHTTP.EXPECT().
		Get(gomock.Any(), "https://example.com/1.json").
		Return([]byte(`{"name":"Token 1","animation_url":"https://example.com/1.mp4"}`), nil)

	got, err := fetcher.Fetch(context.Background(), "https://example.com/1.json")
	require.NoError(t, err)
	assert.Equal(t, "Token 1", got.Title)
	require.NotNil(t, got.Media)
	assert.Equal(t, "https://example.com/1.mp4", got.Media.URL)
}

func TestFetcher_Fetch_DataURI(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fetcher := metadata.NewFetcher(mocks.NewMockHTTPClient(ctrl), adapter.NewJSON(), metadata.Config{})
	payload := base64.StdEncoding.EncodeToString([]byte(`{"title":"Inline"}`))

	got, err := fetcher.Fetch(context.Background(), "data:application/json;base64,"+payload)
	require.NoError(t, err)
	assert.Equal(t, "Inline", got.Title)
}

func TestFetcher_Fetch_AcceptsJSONSubtypes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHTTP := mocks.NewMockHTTPClient(ctrl)
	fetcher := metadata.NewFetcher(mockHTTP, adapter.NewJSON(), metadata.Config{IPFSGateway: GATEWAY})

	// detected as application/geo+json
	mockHTTP.EXPECT().
		Get(gomock.Any(), "https://example.com/map.json").
		Return([]byte(`{"type":"Feature","geometry":{"type":"Point","coordinates":[125.6,10.1]},"properties":{},"title":"Island"}`), nil)

	got, err := fetcher.Fetch(context.Background(), "https://example.com/map.json")
	require.NoError(t, err)
	assert.Equal(t, "Island", got.Title)
}

func TestFetcher_Fetch_Errors(t *testing.T) {
	t.Run("non json body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockHTTP := mocks.NewMockHTTPClient(ctrl)
		fetcher := metadata.NewFetcher(mockHTTP, adapter.NewJSON(), metadata.Config{IPFSGateway: GATEWAY})
		mockHTTP.EXPECT().Get(gomock.Any(), gomock.Any()).Return([]byte("<html><body>gateway error</body></html>"), nil)

		_, err := fetcher.Fetch(context.Background(), CID_V0)
		assert.ErrorIs(t, err, metadata.ErrNotJSON)
	})

	t.Run("transport error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockHTTP := mocks.NewMockHTTPClient(ctrl)
		fetcher := metadata.NewFetcher(mockHTTP, adapter.NewJSON(), metadata.Config{IPFSGateway: GATEWAY})
		mockHTTP.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, errors.New("boom"))

		_, err := fetcher.Fetch(context.Background(), CID_V0)
		assert.Error(t, err)
	})

	t.Run("empty uri", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		fetcher := metadata.NewFetcher(mocks.NewMockHTTPClient(ctrl), adapter.NewJSON(), metadata.Config{})
		_, err := fetcher.Fetch(context.Background(), "  ")
		assert.ErrorIs(t, err, metadata.ErrUnsupportedURI)
	})
}
