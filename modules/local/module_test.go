package local

import (
	"context"
	"testing"

	"github.com/specialistvlad/statgrid/internal/config"
	"github.com/specialistvlad/statgrid/internal/registry"
	"github.com/stretchr/testify/require"
)

func TestModule_Register(t *testing.T) {
	r := registry.New()
	(&Module{}).Register(r)

	src, err := r.NewSource(context.Background(), config.SourceSpec{Kind: Kind, Options: config.Options{"root": "/runs"}})

	require.NoError(t, err)
	require.Equal(t, "local:/runs", src.String())
}
