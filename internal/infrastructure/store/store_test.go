package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead(t *testing.T) {
	t.Run("missing file auto-created for most collections", func(t *testing.T) {
		dir := t.TempDir()
		s, err := New(dir)
		require.NoError(t, err)

		var out []map[string]interface{}
		require.NoError(t, s.Read(CollectionCoupons, &out))
		assert.Empty(t, out)

		data, err := os.ReadFile(filepath.Join(dir, "coupons.json"))
		require.NoError(t, err)
		assert.Equal(t, "[]", string(data))
	})

	t.Run("missing inventory file is not auto-created", func(t *testing.T) {
		dir := t.TempDir()
		s, err := New(dir)
		require.NoError(t, err)

		var out []map[string]interface{}
		require.NoError(t, s.Read(CollectionInventory, &out))
		assert.Empty(t, out)

		_, err = os.Stat(filepath.Join(dir, "inventory.json"))
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("empty file reads as empty collection", func(t *testing.T) {
		dir := t.TempDir()
		s, err := New(dir)
		require.NoError(t, err)

		require.NoError(t, os.WriteFile(filepath.Join(dir, "menu.json"), []byte(""), 0o644))

		var out []map[string]interface{}
		require.NoError(t, s.Read(CollectionMenu, &out))
		assert.Empty(t, out)
	})

	t.Run("corrupt file surfaces persistence error", func(t *testing.T) {
		dir := t.TempDir()
		s, err := New(dir)
		require.NoError(t, err)

		require.NoError(t, os.WriteFile(filepath.Join(dir, "menu.json"), []byte("{not json"), 0o644))

		var out []map[string]interface{}
		err = s.Read(CollectionMenu, &out)
		assert.ErrorIs(t, err, ErrPersistence)
	})
}

func TestWriteRoundTrip(t *testing.T) {
	s, err := New(t.TempDir())
	require.NoError(t, err)

	in := []map[string]interface{}{
		{"id": "a", "name": "Americano"},
		{"id": "b", "name": "Latte"},
	}
	require.NoError(t, s.Write(CollectionMenu, in))

	var out []map[string]interface{}
	require.NoError(t, s.Read(CollectionMenu, &out))
	require.Len(t, out, 2)
	assert.Equal(t, "Americano", out[0]["name"])
}

func TestUpdateSerializesMutations(t *testing.T) {
	s, err := New(t.TempDir())
	require.NoError(t, err)

	// hai writer cùng append; mutex phải giữ cả hai record
	done := make(chan struct{}, 2)
	appendOne := func(id string) {
		_ = s.Update(CollectionOrders, func() error {
			var records []map[string]interface{}
			if err := s.Read(CollectionOrders, &records); err != nil {
				return err
			}
			records = append(records, map[string]interface{}{"id": id})
			return s.Write(CollectionOrders, records)
		})
		done <- struct{}{}
	}

	go appendOne("first")
	go appendOne("second")
	<-done
	<-done

	var records []map[string]interface{}
	require.NoError(t, s.Read(CollectionOrders, &records))
	assert.Len(t, records, 2)
}

func TestUpdateUnknownCollection(t *testing.T) {
	s, err := New(t.TempDir())
	require.NoError(t, err)

	err = s.Update(Collection("bogus"), func() error { return nil })
	assert.ErrorIs(t, err, ErrPersistence)
}
