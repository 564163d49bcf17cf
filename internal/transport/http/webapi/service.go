package webapi

import (
	"context"

	"github.com/gin-gonic/gin"
)

// Service is implemented by every API service in this package. Start
// registers the service routes on the public and gated route groups.
type Service interface {
	Start(ctx context.Context, public, secured *gin.RouterGroup) error
}
