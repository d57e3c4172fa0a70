package scheduler

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddJob(t *testing.T) {
	s := New(logrus.New())

	require.NoError(t, s.AddJob(context.Background(), "retention", "0 3 * * *", func(context.Context) error { return nil }))
	assert.Equal(t, 1, s.Len())

	assert.Error(t, s.AddJob(context.Background(), "bad", "not a cron", func(context.Context) error { return nil }))
	assert.Equal(t, 1, s.Len())

	s.Start()
	s.Stop()
}
