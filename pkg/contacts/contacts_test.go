package contacts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/contacts/pkg/types"
)

func TestOpenRepository(t *testing.T) {
	tests := []struct {
		name    string
		backend string
		wantErr error
	}{
		{name: "memory", backend: types.BackendMemory},
		{name: "sqlite", backend: types.BackendSQLite},
		{name: "empty", backend: "", wantErr: types.ErrBackendEmpty},
		{name: "unknown", backend: "postgres", wantErr: types.ErrBackendUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, closeRepo, err := OpenRepository(tt.backend)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, repo)
				return
			}
			require.NoError(t, err)
			defer func() { require.NoError(t, closeRepo()) }()

			c := &types.Contact{Name: "A", Phone: "1", Email: "a@x"}
			require.NoError(t, repo.Add(c))
			assert.Equal(t, 1, c.ID)

			got, err := repo.List()
			require.NoError(t, err)
			require.Len(t, got, 1)
			assert.Equal(t, *c, *got[0])
		})
	}
}

func TestNewMemoryRepository(t *testing.T) {
	repo := NewMemoryRepository()
	got, err := repo.List()
	require.NoError(t, err)
	assert.Empty(t, got)
}
