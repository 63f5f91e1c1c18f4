// Package repotest holds a conformance suite that every
// types.ContactRepository implementation must pass.
package repotest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/contacts/pkg/types"
)

// Factory returns a fresh, empty repository for a single subtest.
type Factory func(t *testing.T) types.ContactRepository

// Run exercises the repository contract against repositories built by
// newRepo.
func Run(t *testing.T, newRepo Factory) {
	t.Run("ids start at one and increase", func(t *testing.T) {
		repo := newRepo(t)
		for want := 1; want <= 5; want++ {
			c := &types.Contact{Name: "n"}
			require.NoError(t, repo.Add(c))
			assert.Equal(t, want, c.ID)
		}
	})

	t.Run("caller supplied id is ignored", func(t *testing.T) {
		repo := newRepo(t)
		c := &types.Contact{ID: 42, Name: "A"}
		require.NoError(t, repo.Add(c))
		assert.Equal(t, 1, c.ID)
	})

	t.Run("adding the same record twice gives distinct ids", func(t *testing.T) {
		repo := newRepo(t)
		c := &types.Contact{Name: "A", Phone: "1", Email: "a@x"}
		require.NoError(t, repo.Add(c))
		require.NoError(t, repo.Add(c))
		assert.Equal(t, 2, c.ID)

		got := list(t, repo)
		require.Len(t, got, 2)
		assert.Equal(t, 1, got[0].ID)
		assert.Equal(t, 2, got[1].ID)
	})

	t.Run("caller changes after add are not stored", func(t *testing.T) {
		repo := newRepo(t)
		c := &types.Contact{Name: "A"}
		require.NoError(t, repo.Add(c))
		c.ID = 9
		c.Name = "B"

		assert.Equal(t, []types.Contact{{ID: 1, Name: "A"}}, list(t, repo))
	})

	t.Run("ids are not reused after delete", func(t *testing.T) {
		repo := newRepo(t)
		a := &types.Contact{Name: "A"}
		b := &types.Contact{Name: "B"}
		require.NoError(t, repo.Add(a))
		require.NoError(t, repo.Add(b))
		require.NoError(t, repo.Delete(b.ID))

		c := &types.Contact{Name: "C"}
		require.NoError(t, repo.Add(c))
		assert.Equal(t, 3, c.ID)
	})

	t.Run("list preserves insertion order", func(t *testing.T) {
		repo := newRepo(t)
		in := []types.Contact{
			{Name: "A", Phone: "1", Email: "a@x"},
			{Name: "B", Phone: "2", Email: "b@x"},
			{Name: "C", Phone: "3", Email: "c@x"},
		}
		for i := range in {
			c := in[i]
			require.NoError(t, repo.Add(&c))
		}

		got := list(t, repo)
		require.Len(t, got, len(in))
		for i, c := range got {
			want := in[i]
			want.ID = i + 1
			assert.Equal(t, want, c)
		}
	})

	t.Run("empty repository lists nothing", func(t *testing.T) {
		assert.Empty(t, list(t, newRepo(t)))
	})

	t.Run("round trip keeps fields", func(t *testing.T) {
		repo := newRepo(t)
		c := &types.Contact{Name: "", Phone: "", Email: ""}
		require.NoError(t, repo.Add(c))

		got := list(t, repo)
		require.Len(t, got, 1)
		assert.Equal(t, types.Contact{ID: 1}, got[0])
	})

	t.Run("update with matching id", func(t *testing.T) {
		repo := newRepo(t)
		require.NoError(t, repo.Add(&types.Contact{Name: "A", Phone: "1", Email: "a@x"}))
		require.NoError(t, repo.Add(&types.Contact{Name: "B", Phone: "2", Email: "b@x"}))

		require.NoError(t, repo.Update(&types.Contact{ID: 1, Name: "A2", Phone: "11", Email: "a2@x"}))

		got := list(t, repo)
		require.Len(t, got, 2)
		assert.Equal(t, types.Contact{ID: 1, Name: "A2", Phone: "11", Email: "a2@x"}, got[0])
		assert.Equal(t, types.Contact{ID: 2, Name: "B", Phone: "2", Email: "b@x"}, got[1])
	})

	t.Run("update with missing id is a no-op", func(t *testing.T) {
		repo := newRepo(t)
		require.NoError(t, repo.Add(&types.Contact{Name: "A", Phone: "1", Email: "a@x"}))
		before := list(t, repo)

		require.NoError(t, repo.Update(&types.Contact{ID: 99, Name: "X"}))

		assert.Equal(t, before, list(t, repo))
	})

	t.Run("delete with matching id", func(t *testing.T) {
		repo := newRepo(t)
		require.NoError(t, repo.Add(&types.Contact{Name: "A"}))
		require.NoError(t, repo.Add(&types.Contact{Name: "B"}))
		require.NoError(t, repo.Add(&types.Contact{Name: "C"}))

		require.NoError(t, repo.Delete(2))

		got := list(t, repo)
		require.Len(t, got, 2)
		assert.Equal(t, 1, got[0].ID)
		assert.Equal(t, 3, got[1].ID)
	})

	t.Run("delete with missing id is a no-op", func(t *testing.T) {
		repo := newRepo(t)
		require.NoError(t, repo.Add(&types.Contact{Name: "A"}))
		before := list(t, repo)

		require.NoError(t, repo.Delete(99))
		require.NoError(t, repo.Delete(0))

		assert.Equal(t, before, list(t, repo))
	})

	t.Run("end to end scenario", func(t *testing.T) {
		repo := newRepo(t)
		require.NoError(t, repo.Add(&types.Contact{Name: "A", Phone: "1", Email: "a@x"}))
		require.NoError(t, repo.Add(&types.Contact{Name: "B", Phone: "2", Email: "b@x"}))
		assert.Equal(t, []types.Contact{
			{ID: 1, Name: "A", Phone: "1", Email: "a@x"},
			{ID: 2, Name: "B", Phone: "2", Email: "b@x"},
		}, list(t, repo))

		require.NoError(t, repo.Delete(1))
		want := []types.Contact{{ID: 2, Name: "B", Phone: "2", Email: "b@x"}}
		assert.Equal(t, want, list(t, repo))

		require.NoError(t, repo.Delete(1))
		assert.Equal(t, want, list(t, repo))
	})
}

// list snapshots the repository contents by value so later writes cannot
// change what the test compares.
func list(t *testing.T, repo types.ContactRepository) []types.Contact {
	t.Helper()
	got, err := repo.List()
	require.NoError(t, err)
	out := make([]types.Contact, len(got))
	for i, c := range got {
		out[i] = *c
	}
	return out
}
