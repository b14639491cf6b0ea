package container_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/km-arc/microioc/framework/container"
)

func TestDefault_ConcurrentFirstAccess(t *testing.T) {
	const n = 64

	got := make([]*container.IocContainer, n)
	start := make(chan struct{})

	var g errgroup.Group
	for i := range n {
		g.Go(func() error {
			<-start
			got[i] = container.Default()
			return nil
		})
	}
	close(start)
	require.NoError(t, g.Wait())

	for i := range n {
		assert.Same(t, got[0], got[i])
	}
	assert.NotNil(t, got[0])
}

func TestDefault_SharedAcrossCalls(t *testing.T) {
	key := container.Named("default-test.marker")
	t.Cleanup(func() { container.Default().Purge(key) })

	require.NoError(t, container.Default().Register(key, "marker"))
	v, err := container.GetKey[string](container.Default(), key)
	require.NoError(t, err)
	assert.Equal(t, "marker", v)
}

func TestConcurrentRegisterAndGet(t *testing.T) {
	c := container.New()

	var g errgroup.Group
	for i := range 32 {
		g.Go(func() error {
			key := container.Named(string(rune('a' + i)))
			if err := c.Register(key, i); err != nil {
				return err
			}
			_, err := c.Get(key)
			return err
		})
		g.Go(func() error {
			_ = c.Entries()
			return nil
		})
	}
	require.NoError(t, g.Wait())
	assert.Equal(t, 32, c.Len())
}

func TestConcurrentLockdownRace(t *testing.T) {
	c := container.New()

	var g errgroup.Group
	for i := range 32 {
		g.Go(func() error {
			return c.Register(container.Named(string(rune('A'+i))), i)
		})
	}
	g.Go(func() error {
		c.Lockdown()
		return nil
	})
	require.NoError(t, g.Wait())

	frozen := c.Len()
	require.NoError(t, c.Register(container.Named("late"), 1))
	assert.Equal(t, frozen, c.Len())
}
