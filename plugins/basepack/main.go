package main

import (
	"context"
	"encoding/json"

	packrpc "tonica/internal/modules/pack/adapter/out/rpc"

	"github.com/hashicorp/go-plugin"
)

// The built-in starter pack: one track, its lessons, a couple of daily
// missions and a library article.
const itemsJSON = `[
  {"id":"trk-base-0001","type":"track","title":"Fundamentos do Piano","subtitle":"Primeiros passos","order":1,"lessonIds":["les-base-0001","les-base-0002","les-base-0003"]},
  {"id":"les-base-0001","type":"lesson","title":"Postura e posição das mãos","xp":20,"estimatedMinutes":15,"checklist":["Sentar na metade do banco","Punhos relaxados","Dedos curvados"]},
  {"id":"les-base-0002","type":"lesson","title":"Escala de Dó maior","xp":25,"estimatedMinutes":20,"checklist":["Mão direita, 2 oitavas","Mão esquerda, 2 oitavas"]},
  {"id":"les-base-0003","type":"lesson","title":"Acordes de tríade","xp":25,"estimatedMinutes":20},
  {"id":"mis-base-0001","type":"mission","title":"Aquecimento de 5 minutos","xp":5,"repeat":"daily"},
  {"id":"mis-base-0002","type":"mission","title":"Tocar uma música completa","xp":10,"repeat":"daily"},
  {"id":"lib-base-0001","type":"library","title":"Como estudar com metrônomo","readingMinutes":4,"body":"# Metrônomo\n\nComece devagar e aumente o andamento aos poucos.\n\n- Escolha um trecho curto\n- Toque sem erros três vezes\n- Suba 4 bpm"}
]`

type server struct{}

func (s *server) GetMetadata(_ context.Context, _ *packrpc.Empty) (*packrpc.Metadata, error) {
	var items []any
	_ = json.Unmarshal([]byte(itemsJSON), &items)
	return &packrpc.Metadata{
		Name:      "basepack",
		Version:   "1.0.0",
		ItemCount: int32(len(items)),
	}, nil
}

func (s *server) FetchItems(_ context.Context, _ *packrpc.Empty) (*packrpc.FetchItemsResponse, error) {
	return &packrpc.FetchItemsResponse{ItemsJSON: itemsJSON}, nil
}

func main() {
	plugin.Serve(&plugin.ServeConfig{
		HandshakeConfig: packrpc.HandshakeConfig,
		Plugins:         packrpc.PluginMap(&server{}),
		GRPCServer:      plugin.DefaultGRPCServer,
	})
}
