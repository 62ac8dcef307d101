package rpc

import (
	"log/slog"

	middleware "github.com/vmkteam/zenrpc-middleware"
	"github.com/vmkteam/zenrpc/v2"

	"github.com/contentforge/content-service/internal/cms"
)

func New(logger *slog.Logger, manager *cms.Manager) *zenrpc.Server {

	rpcService := NewContentService(manager)
	rpcServer := zenrpc.NewServer(zenrpc.Options{ExposeSMD: true})
	rpcServer.Register("content", rpcService)
	rpcServer.Use(middleware.WithSLog(logger.InfoContext, "content-service", nil))

	return rpcServer
}
