//go:build wireinject

package app

import (
	"net/http"

	"github.com/ThisIsNSH/CueCard/internal/conf"
	"github.com/ThisIsNSH/CueCard/internal/data"
	"github.com/ThisIsNSH/CueCard/internal/web/api"
	"github.com/google/wire"
)

func wireApp(bc *conf.Bootstrap) (http.Handler, func(), error) {
	panic(wire.Build(data.ProviderSet, api.ProviderSet))
}
