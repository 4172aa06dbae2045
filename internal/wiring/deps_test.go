package wiring_test

import (
	"context"
	"testing"

	"github.com/grindlemire/graft"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rlink/internal/app"
	_ "go.trai.ch/rlink/internal/wiring"
)

// TestGraph_ResolvesComponents ensures the dependency injection graph is
// complete: every node the components depend on is registered and
// constructible. Adapter constructors have no side effects, so resolving the
// full graph is safe in a test.
func TestGraph_ResolvesComponents(t *testing.T) {
	components, _, err := graft.ExecuteFor[*app.Components](context.Background())
	require.NoError(t, err)
	require.NotNil(t, components.App)
	require.NotNil(t, components.Logger)
}
