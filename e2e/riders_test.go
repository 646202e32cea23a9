//go:build e2e && unix

package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListsFirstPage(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartWithAPI(defaultRiders()))
	require.True(t, tf.Ready(), "Should receive ready signal")

	require.True(t, tf.SeePlain("Rider App"), "Should show title")
	require.True(t, tf.SeePlain("Alice"), "Should show first rider")
	require.True(t, tf.SeePlain("Not Active"), "Should show inactive status")
	require.True(t, tf.SeePlain("Page 1"), "Should show page number")
}

func TestNextPage(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartWithAPI(defaultRiders()))
	require.True(t, tf.Ready(), "Should receive ready signal")

	require.NoError(t, tf.NextPage())
	require.True(t, tf.SeePlain("Page 2"), "Should move to page 2")
	require.True(t, tf.SeePlain("Carol"), "Should show page 2 rider")
}

func TestSearchByName(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartWithAPI(defaultRiders()))
	require.True(t, tf.Ready(), "Should receive ready signal")

	require.NoError(t, tf.Search("car"))
	require.True(t, tf.SeePlain("Carol"), "Search should find Carol on any page")
	require.NoError(t, tf.SendKeys(KeyEsc))
}

func TestDeleteRider(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartWithAPI(defaultRiders()))
	require.True(t, tf.Ready(), "Should receive ready signal")
	require.True(t, tf.SeePlain("Alice"))

	require.NoError(t, tf.Delete())
	require.True(t, tf.WaitForStatusMessage("Rider deleted successfully.", 3*time.Second),
		"Should show delete toast")
	assert.Equal(t, []string{"a1"}, tf.api.Deletes())
}
