package dao

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmployeeDAO_CRUD(t *testing.T) {
	d := NewEmployeeDAO(newTestDB(t))
	ctx := context.Background()

	created, err := d.Insert(ctx, Employee{Name: "Ana"})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	found, err := d.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana", found.Name)

	updated, err := d.Update(ctx, Employee{ID: created.ID, Name: "Ana Maria"})
	require.NoError(t, err)
	assert.Equal(t, "Ana Maria", updated.Name)

	all, err := d.FindAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []Employee{{ID: created.ID, Name: "Ana Maria"}}, all)

	deleted, err := d.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, deleted)

	all, err = d.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestEmployeeDAO_NotFound(t *testing.T) {
	d := NewEmployeeDAO(newTestDB(t))
	ctx := context.Background()

	_, err := d.FindByID(ctx, 7)
	assert.ErrorIs(t, err, ErrEmployeeNotFound)

	_, err = d.Update(ctx, Employee{ID: 7, Name: "Ghost"})
	assert.ErrorIs(t, err, ErrEmployeeNotFound)

	_, err = d.Delete(ctx, 7)
	assert.ErrorIs(t, err, ErrEmployeeNotFound)
}
