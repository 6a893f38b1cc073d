package index

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docsindex/internal/adapters/driven/index/elastic"
	"github.com/custodia-labs/docsindex/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/docsindex/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/docsindex/internal/core/domain"
)

func TestCreateSearchIndex(t *testing.T) {
	tests := []struct {
		name     string
		settings *domain.IndexSettings
		wantType any
		wantErr  error
	}{
		{
			name:     "nil settings",
			settings: nil,
			wantErr:  domain.ErrInvalidInput,
		},
		{
			name:     "memory backend",
			settings: &domain.IndexSettings{Backend: domain.BackendMemory},
			wantType: &memory.Index{},
		},
		{
			name: "sqlite backend",
			settings: &domain.IndexSettings{
				Backend: domain.BackendSQLite,
				SQLite:  domain.SQLiteSettings{Dir: t.TempDir()},
			},
			wantType: &sqlite.Store{},
		},
		{
			name: "http backend",
			settings: &domain.IndexSettings{
				Backend: domain.BackendHTTP,
				HTTP:    domain.HTTPSettings{URL: "http://localhost:9200"},
			},
			wantType: &elastic.Client{},
		},
		{
			name:     "http backend without url",
			settings: &domain.IndexSettings{Backend: domain.BackendHTTP},
			wantErr:  domain.ErrInvalidInput,
		},
		{
			name:     "unknown backend",
			settings: &domain.IndexSettings{Backend: "solr"},
			wantErr:  domain.ErrUnsupportedType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx, err := CreateSearchIndex(tt.settings)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			defer idx.Close()
			assert.IsType(t, tt.wantType, idx)
		})
	}
}

func TestCreateAndValidateSearchIndex_Reachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	idx, err := CreateAndValidateSearchIndex(&domain.IndexSettings{
		Backend: domain.BackendHTTP,
		HTTP:    domain.HTTPSettings{URL: srv.URL},
	})
	require.NoError(t, err)
	assert.NoError(t, idx.Close())
}

func TestCreateAndValidateSearchIndex_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := CreateAndValidateSearchIndex(&domain.IndexSettings{
		Backend: domain.BackendHTTP,
		HTTP:    domain.HTTPSettings{URL: srv.URL},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrIndexUnavailable)
}

func TestCreateAndValidateSearchIndex_SQLite(t *testing.T) {
	idx, err := CreateAndValidateSearchIndex(&domain.IndexSettings{
		Backend: domain.BackendSQLite,
		SQLite:  domain.SQLiteSettings{Dir: t.TempDir()},
	})
	require.NoError(t, err)
	assert.NoError(t, idx.Close())
}
