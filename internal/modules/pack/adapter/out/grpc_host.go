package out

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"time"

	hclog "github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-plugin"

	packrpc "tonica/internal/modules/pack/adapter/out/rpc"
	"tonica/internal/modules/pack/domain"
	packout "tonica/internal/modules/pack/port/out"
)

const (
	defaultStartTimeout = 3 * time.Second
	defaultCallTimeout  = 10 * time.Second
)

type GRPCHost struct {
	logger hclog.Logger
}

func NewGRPCHost(logger hclog.Logger) packout.Host {
	if logger == nil {
		logger = hclog.New(&hclog.LoggerOptions{Output: io.Discard, Level: hclog.NoLevel})
	}
	return &GRPCHost{logger: logger}
}

func (h *GRPCHost) CheckLifecycle(ctx context.Context, manifest domain.Manifest) error {
	client, closeFn, err := h.connect(manifest)
	if err != nil {
		return err
	}
	defer closeFn()

	callCtx, cancel := h.callContext(ctx, defaultCallTimeout)
	defer cancel()
	if _, err := client.GetMetadata(callCtx); err != nil {
		return fmt.Errorf("get metadata: %w", err)
	}
	return nil
}

func (h *GRPCHost) GetMetadata(ctx context.Context, manifest domain.Manifest) (domain.Metadata, error) {
	client, closeFn, err := h.connect(manifest)
	if err != nil {
		return domain.Metadata{}, err
	}
	defer closeFn()

	callCtx, cancel := h.callContext(ctx, defaultCallTimeout)
	defer cancel()

	meta, err := client.GetMetadata(callCtx)
	if err != nil {
		return domain.Metadata{}, fmt.Errorf("get metadata: %w", err)
	}
	return domain.Metadata{Name: meta.Name, Version: meta.Version, ItemCount: int(meta.ItemCount)}, nil
}

func (h *GRPCHost) FetchItems(ctx context.Context, manifest domain.Manifest) ([]byte, error) {
	client, closeFn, err := h.connect(manifest)
	if err != nil {
		return nil, err
	}
	defer closeFn()

	callCtx, cancel := h.callContext(ctx, defaultCallTimeout)
	defer cancel()

	response, err := client.FetchItems(callCtx)
	if err != nil {
		if callCtx.Err() == context.DeadlineExceeded {
			return nil, fmt.Errorf("%w: %s", domain.ErrPackTimeout, manifest.Name)
		}
		return nil, fmt.Errorf("fetch items: %w", err)
	}
	h.logger.Debug("fetched pack items", "pack", manifest.Name, "bytes", len(response.ItemsJSON))
	return []byte(response.ItemsJSON), nil
}

func (h *GRPCHost) connect(manifest domain.Manifest) (packrpc.ContentPackClient, func(), error) {
	client := plugin.NewClient(&plugin.ClientConfig{
		HandshakeConfig:  packrpc.HandshakeConfig,
		AllowedProtocols: []plugin.Protocol{plugin.ProtocolGRPC},
		Plugins:          packrpc.PluginMap(nil),
		Cmd:              exec.Command(manifest.Binary),
		Managed:          true,
		StartTimeout:     defaultStartTimeout,
		Logger:           h.logger,
	})
	closeFn := func() { client.Kill() }

	rpcClient, err := client.Client()
	if err != nil {
		closeFn()
		return nil, nil, fmt.Errorf("start pack client: %w", err)
	}
	raw, err := rpcClient.Dispense(packrpc.PluginMapKey)
	if err != nil {
		closeFn()
		return nil, nil, fmt.Errorf("dispense pack: %w", err)
	}
	typed, ok := raw.(packrpc.ContentPackClient)
	if !ok {
		closeFn()
		return nil, nil, fmt.Errorf("pack rpc client type mismatch")
	}
	return typed, closeFn, nil
}

func (h *GRPCHost) callContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if _, ok := parent.Deadline(); ok {
		return context.WithCancel(parent)
	}
	return context.WithTimeout(parent, timeout)
}
