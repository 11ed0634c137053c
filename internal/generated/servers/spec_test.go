package servers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSwagger(t *testing.T) {
	swagger, err := GetSwagger()
	require.NoError(t, err)

	require.NotNil(t, swagger.Paths.Find("/api/v1/orders"))
	require.NotNil(t, swagger.Paths.Find("/api/v1/orders/{trackingId}"))
	assert.Equal(t, "CreateOrder", swagger.Paths.Find("/api/v1/orders").Post.OperationID)
}
