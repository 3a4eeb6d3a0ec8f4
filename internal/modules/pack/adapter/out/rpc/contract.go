package rpc

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hashicorp/go-plugin"
	"google.golang.org/grpc"
	"google.golang.org/grpc/encoding"
)

const (
	PluginMapKey      = "tonica"
	serviceName       = "tonica.pack.v1.ContentPack"
	jsonCodecName     = "json"
	methodGetMetadata = "/" + serviceName + "/GetMetadata"
	methodFetchItems  = "/" + serviceName + "/FetchItems"
)

var HandshakeConfig = plugin.HandshakeConfig{
	ProtocolVersion:  1,
	MagicCookieKey:   "TONICA_PACK",
	MagicCookieValue: "tonica",
}

type jsonCodec struct{}

func (jsonCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

func (jsonCodec) Name() string {
	return jsonCodecName
}

func init() {
	encoding.RegisterCodec(jsonCodec{})
}

type Empty struct{}

type Metadata struct {
	Name      string `json:"name"`
	Version   string `json:"version"`
	ItemCount int32  `json:"item_count"`
}

// FetchItemsResponse carries the raw batch text; the host side runs it
// through the same parse and validate pipeline as any other import.
type FetchItemsResponse struct {
	ItemsJSON string `json:"items_json"`
}

type ContentPackServer interface {
	GetMetadata(ctx context.Context, in *Empty) (*Metadata, error)
	FetchItems(ctx context.Context, in *Empty) (*FetchItemsResponse, error)
}

type ContentPackClient interface {
	GetMetadata(ctx context.Context) (*Metadata, error)
	FetchItems(ctx context.Context) (*FetchItemsResponse, error)
}

type contentPackClient struct {
	conn *grpc.ClientConn
}

func NewContentPackClient(conn *grpc.ClientConn) ContentPackClient {
	return &contentPackClient{conn: conn}
}

func (c *contentPackClient) GetMetadata(ctx context.Context) (*Metadata, error) {
	out := &Metadata{}
	if err := c.conn.Invoke(ctx, methodGetMetadata, &Empty{}, out, grpc.CallContentSubtype(jsonCodecName)); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *contentPackClient) FetchItems(ctx context.Context) (*FetchItemsResponse, error) {
	out := &FetchItemsResponse{}
	if err := c.conn.Invoke(ctx, methodFetchItems, &Empty{}, out, grpc.CallContentSubtype(jsonCodecName)); err != nil {
		return nil, err
	}
	return out, nil
}

func RegisterContentPackServer(server grpc.ServiceRegistrar, impl ContentPackServer) {
	server.RegisterService(&grpc.ServiceDesc{
		ServiceName: serviceName,
		HandlerType: (*ContentPackServer)(nil),
		Methods: []grpc.MethodDesc{
			{
				MethodName: "GetMetadata",
				Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
					in := &Empty{}
					if err := dec(in); err != nil {
						return nil, err
					}
					if interceptor == nil {
						return impl.GetMetadata(ctx, in)
					}
					info := &grpc.UnaryServerInfo{Server: srv, FullMethod: methodGetMetadata}
					handler := func(ctx context.Context, req any) (any, error) {
						empty, ok := req.(*Empty)
						if !ok {
							return nil, fmt.Errorf("invalid request type")
						}
						return impl.GetMetadata(ctx, empty)
					}
					return interceptor(ctx, in, info, handler)
				},
			},
			{
				MethodName: "FetchItems",
				Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
					in := &Empty{}
					if err := dec(in); err != nil {
						return nil, err
					}
					if interceptor == nil {
						return impl.FetchItems(ctx, in)
					}
					info := &grpc.UnaryServerInfo{Server: srv, FullMethod: methodFetchItems}
					handler := func(ctx context.Context, req any) (any, error) {
						empty, ok := req.(*Empty)
						if !ok {
							return nil, fmt.Errorf("invalid request type")
						}
						return impl.FetchItems(ctx, empty)
					}
					return interceptor(ctx, in, info, handler)
				},
			},
		},
		Streams:  []grpc.StreamDesc{},
		Metadata: "schemas/pack-rpc-v1.proto",
	}, impl)
}

type GRPCPlugin struct {
	plugin.NetRPCUnsupportedPlugin
	Impl ContentPackServer
}

func (p *GRPCPlugin) GRPCServer(_ *plugin.GRPCBroker, server *grpc.Server) error {
	RegisterContentPackServer(server, p.Impl)
	return nil
}

func (p *GRPCPlugin) GRPCClient(_ context.Context, _ *plugin.GRPCBroker, conn *grpc.ClientConn) (any, error) {
	return NewContentPackClient(conn), nil
}

func PluginMap(impl ContentPackServer) map[string]plugin.Plugin {
	return map[string]plugin.Plugin{
		PluginMapKey: &GRPCPlugin{Impl: impl},
	}
}
